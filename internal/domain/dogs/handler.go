package dogs

import (
	"encoding/json"
	"net/http"
	"time"

	"dog-ratings/internal/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Post("/", createDogHandler(svc))
		dr.Get("/", listDogsHandler(svc))
		dr.Get("/{dogID}", getDogHandler(svc))
		dr.Patch("/{dogID}", updateDogHandler(svc))
	})
}

type createDogRequest struct {
	Name    string   `json:"name"`
	License string   `json:"license"`
	OwnerID string   `json:"owner_id"`
	Age     *float64 `json:"age"`
}

type updateDogRequest struct {
	Name    *string `json:"name"`
	License *string `json:"license"`
	OwnerID *string `json:"owner_id"`
}

type dogResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	License   string    `json:"license"`
	OwnerID   string    `json:"owner_id"`
	Age       *float64  `json:"age,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// validationResponse es el cuerpo 422: mensajes crudos por atributo,
// mensajes humanizados y el total (mensajes, no atributos).
type validationResponse struct {
	Errors       map[string][]string `json:"errors"`
	FullMessages []string            `json:"full_messages"`
	Count        int                 `json:"count"`
}

func createDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			License: req.License,
			OwnerID: req.OwnerID,
			Age:     req.Age,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toDogResponse(d))
	}
}

func listDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

func updateDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		// Para soportar "age": null vs "no enviado", decodificamos a map
		// primero y detectamos presencia del campo.
		var raw map[string]json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var req updateDogRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}

		age := PatchNumber{}
		if v, exists := raw["age"]; exists {
			age.Present = true
			if string(v) != "null" {
				var n float64
				if err := json.Unmarshal(v, &n); err != nil {
					http.Error(w, "age must be a number or null", http.StatusBadRequest)
					return
				}
				age.Value = &n
			}
		}

		d, err := svc.Update(r.Context(), chi.URLParam(r, "dogID"), UpdateInput{
			Name:    req.Name,
			License: req.License,
			OwnerID: req.OwnerID,
			Age:     age,
		})
		if err != nil {
			if err == ErrNotFound {
				http.Error(w, "dog not found", http.StatusNotFound)
				return
			}
			writeDomainError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toDogResponse(d))
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:        d.ID,
		Name:      d.Name,
		License:   d.License,
		OwnerID:   d.OwnerID,
		Age:       d.Age,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// writeDomainError traduce errores del service: hallazgos de validación
// => 422 con el colector serializado; cualquier otra cosa => 500.
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

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (dogs/people/ratings) para evitar crear paquetes/helpers compartidos
// demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
