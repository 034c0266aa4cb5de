package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"dog-ratings/internal/domain/people"
)

type peopleRepo struct {
	mu   sync.RWMutex
	byID map[string]people.Person
}

func NewPeopleRepo() people.Repository {
	return &peopleRepo{
		byID: make(map[string]people.Person),
	}
}

func (r *peopleRepo) Create(ctx context.Context, p people.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("person id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("person already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *peopleRepo) Update(ctx context.Context, p people.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *peopleRepo) GetByID(ctx context.Context, id string) (people.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return people.Person{}, ErrNotFound
	}
	return p, nil
}

func (r *peopleRepo) List(ctx context.Context) ([]people.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]people.Person, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *peopleRepo) ExistsWithValue(ctx context.Context, attr, value, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.byID {
		if p.ID == excludeID {
			continue
		}
		switch attr {
		case "name":
			if p.Name == value {
				return true, nil
			}
		default:
			return false, fmt.Errorf("unknown person attribute %q", attr)
		}
	}
	return false, nil
}
