package people

import (
	"encoding/json"
	"net/http"
	"time"

	"dog-ratings/internal/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/people", func(pr chi.Router) {
		pr.Post("/", createPersonHandler(svc))
		pr.Get("/", listPeopleHandler(svc))
		pr.Get("/{personID}", getPersonHandler(svc))
		pr.Patch("/{personID}", updatePersonHandler(svc))
	})
}

type createPersonRequest struct {
	Name string `json:"name"`
	// RawMessage: puede venir string, número o null; la regla custom decide.
	HometownState json.RawMessage `json:"hometown_state"`
}

type personResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	HometownState *string   `json:"hometown_state"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type validationResponse struct {
	Errors       map[string][]string `json:"errors"`
	FullMessages []string            `json:"full_messages"`
	Count        int                 `json:"count"`
}

func createPersonHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPersonRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:          req.Name,
			HometownState: decodeValue(req.HometownState),
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPersonResponse(p))
	}
}

func listPeopleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]personResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPersonResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPersonHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			http.Error(w, "person not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPersonResponse(p))
	}
}

func updatePersonHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var raw map[string]json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{}
		if v, exists := raw["name"]; exists && string(v) != "null" {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				http.Error(w, "name must be a string", http.StatusBadRequest)
				return
			}
			in.Name = &s
		}
		if v, exists := raw["hometown_state"]; exists {
			in.HometownState = PatchValue{Present: true, Value: decodeValue(v)}
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "personID"), in)
		if err != nil {
			if err == ErrNotFound {
				http.Error(w, "person not found", http.StatusNotFound)
				return
			}
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPersonResponse(p))
	}
}

// decodeValue baja un RawMessage JSON a la unión tipada del engine.
// Booleans u objetos se tratan como null: para las reglas cuentan como
// valor ausente.
func decodeValue(raw json.RawMessage) validation.Value {
	if len(raw) == 0 || string(raw) == "null" {
		return validation.Null
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return validation.String(s)
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return validation.Number(n)
	}

	return validation.Null
}

func toPersonResponse(p Person) personResponse {
	var state *string
	if s, ok := p.HometownState.AsString(); ok {
		state = &s
	}
	return personResponse{
		ID:            p.ID,
		Name:          p.Name,
		HometownState: state,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	if verrs := validation.ErrorsFrom(err); verrs != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Errors:       verrs.Messages(),
			FullMessages: verrs.FullMessages(),
			Count:        verrs.Count(),
		})
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
