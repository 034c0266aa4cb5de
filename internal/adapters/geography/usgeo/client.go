package usgeo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dog-ratings/internal/platform/httpclient"
)

var (
	ErrGeoNotConfigured = errors.New("geography client not configured")
	ErrGeoUpstream      = errors.New("geography upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string

	APIKeyHeader string
	Timeout      time.Duration
}

// Client habla con el servicio externo de geografía (US states).
type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

type stateResponse struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

// CheckState consulta si el código es una abreviatura válida.
// GET /v1/states/{code} => {"code":"NY","valid":true}; 404 => inválido.
func (c *Client) CheckState(ctx context.Context, code string) (bool, error) {
	if !c.IsConfigured() {
		return false, ErrGeoNotConfigured
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return false, nil
	}

	headers := map[string]string{}
	if c.apiKey != "" {
		headers[c.apiKeyHeader] = c.apiKey
	}

	var out stateResponse
	err := c.http.DoJSON(ctx, http.MethodGet, "/v1/states/"+url.PathEscape(code), headers, nil, &out)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrGeoUpstream, err)
	}

	return out.Valid, nil
}
