package ratings

import (
	"encoding/json"
	"net/http"
	"time"

	"dog-ratings/internal/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/ratings", createRatingHandler(svc))
	r.Get("/dogs/{dogID}/ratings", listByDogHandler(svc))
	r.Get("/people/{personID}/ratings", listByJudgeHandler(svc))
}

type createRatingRequest struct {
	DogID   string   `json:"dog_id"`
	JudgeID string   `json:"judge_id"`
	Paws    *float64 `json:"paws"`
	Comment string   `json:"comment"`
}

type ratingResponse struct {
	ID        string    `json:"id"`
	DogID     string    `json:"dog_id"`
	JudgeID   string    `json:"judge_id"`
	Paws      *float64  `json:"paws,omitempty"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type validationResponse struct {
	Errors       map[string][]string `json:"errors"`
	FullMessages []string            `json:"full_messages"`
	Count        int                 `json:"count"`
}

func createRatingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRatingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rt, err := svc.Create(r.Context(), CreateInput{
			DogID:   req.DogID,
			JudgeID: req.JudgeID,
			Paws:    req.Paws,
			Comment: req.Comment,
		})
		if err != nil {
			if verrs := validation.ErrorsFrom(err); verrs != nil {
				writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
					Errors:       verrs.Messages(),
					FullMessages: verrs.FullMessages(),
					Count:        verrs.Count(),
				})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toRatingResponse(rt))
	}
}

func listByDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByDog(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeRatingList(w, items)
	}
}

func listByJudgeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByJudge(r.Context(), chi.URLParam(r, "personID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeRatingList(w, items)
	}
}

func writeRatingList(w http.ResponseWriter, items []Rating) {
	out := make([]ratingResponse, 0, len(items))
	for _, rt := range items {
		out = append(out, toRatingResponse(rt))
	}
	writeJSON(w, http.StatusOK, out)
}

func toRatingResponse(r Rating) ratingResponse {
	return ratingResponse{
		ID:        r.ID,
		DogID:     r.DogID,
		JudgeID:   r.JudgeID,
		Paws:      r.Paws,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
