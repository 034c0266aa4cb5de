package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"dog-ratings/internal/domain/ratings"
)

type ratingsRepo struct {
	mu   sync.RWMutex
	byID map[string]ratings.Rating
}

func NewRatingsRepo() ratings.Repository {
	return &ratingsRepo{
		byID: make(map[string]ratings.Rating),
	}
}

func (r *ratingsRepo) Create(ctx context.Context, rt ratings.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rt.ID) == "" {
		return errors.New("rating id required")
	}
	if _, exists := r.byID[rt.ID]; exists {
		return errors.New("rating already exists")
	}
	r.byID[rt.ID] = rt
	return nil
}

func (r *ratingsRepo) GetByID(ctx context.Context, id string) (ratings.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rt, ok := r.byID[id]
	if !ok {
		return ratings.Rating{}, ErrNotFound
	}
	return rt, nil
}

func (r *ratingsRepo) ListByDog(ctx context.Context, dogID string) ([]ratings.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ratings.Rating, 0)
	for _, rt := range r.byID {
		if rt.DogID == dogID {
			out = append(out, rt)
		}
	}
	sortByCreatedAt(out)
	return out, nil
}

func (r *ratingsRepo) ListByJudge(ctx context.Context, judgeID string) ([]ratings.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ratings.Rating, 0)
	for _, rt := range r.byID {
		if rt.JudgeID == judgeID {
			out = append(out, rt)
		}
	}
	sortByCreatedAt(out)
	return out, nil
}

func sortByCreatedAt(out []ratings.Rating) {
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
}
