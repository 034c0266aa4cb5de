package usgeo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatic_ValidStateAbbreviation(t *testing.T) {
	s := NewStatic()
	ctx := context.Background()

	cases := []struct {
		code string
		want bool
	}{
		{"NY", true},
		{"ny", true},
		{" oh ", true},
		{"DC", true},
		{"PR", true},
		{"ZZ", false},
		{"", false},
		{"New York", false},
	}

	for _, tc := range cases {
		got, err := s.ValidStateAbbreviation(ctx, tc.code)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.code, err)
		}
		if got != tc.want {
			t.Fatalf("%q: got %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestClient_CheckState(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Api-Key"); got != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/v1/states/NY":
			_ = json.NewEncoder(w).Encode(map[string]any{"code": "NY", "valid": true})
		case "/v1/states/ZZ":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer ts.Close()

	client, err := NewClient(Config{BaseURL: ts.URL, APIKey: "secret"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ok, err := client.CheckState(context.Background(), "NY")
	if err != nil || !ok {
		t.Fatalf("expected NY valid, got ok=%v err=%v", ok, err)
	}

	// 404 del upstream es "no existe", no un error.
	ok, err = client.CheckState(context.Background(), "ZZ")
	if err != nil || ok {
		t.Fatalf("expected ZZ invalid without error, got ok=%v err=%v", ok, err)
	}

	if _, err := client.CheckState(context.Background(), "XX"); err == nil {
		t.Fatalf("expected upstream error for 500")
	}
}

func TestResolver_FallsBackToStatic(t *testing.T) {
	// Sin cliente configurado, el resolver responde con la tabla local.
	r := NewResolver(nil)

	ok, err := r.ValidStateAbbreviation(context.Background(), "NY")
	if err != nil || !ok {
		t.Fatalf("expected static fallback to accept NY, got ok=%v err=%v", ok, err)
	}

	ok, _ = r.ValidStateAbbreviation(context.Background(), "ZZ")
	if ok {
		t.Fatalf("expected static fallback to reject ZZ")
	}
}
