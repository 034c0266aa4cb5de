package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"dog-ratings/internal/domain/dogs"
)

var (
	ErrNotFound = errors.New("not found")
)

type dogsRepo struct {
	mu   sync.RWMutex
	byID map[string]dogs.Dog
}

func NewDogsRepo() dogs.Repository {
	return &dogsRepo{
		byID: make(map[string]dogs.Dog),
	}
}

func (r *dogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("dog already exists")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *dogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[d.ID]; !exists {
		return ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *dogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return dogs.Dog{}, ErrNotFound
	}
	return d, nil
}

func (r *dogsRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Dog, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *dogsRepo) ExistsWithValue(ctx context.Context, attr, value, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.byID {
		if d.ID == excludeID {
			continue
		}
		switch attr {
		case "name":
			if d.Name == value {
				return true, nil
			}
		case "license":
			if d.License == value {
				return true, nil
			}
		default:
			return false, fmt.Errorf("unknown dog attribute %q", attr)
		}
	}
	return false, nil
}
