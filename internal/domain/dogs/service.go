package dogs

import (
	"context"
	"errors"
	"strings"
	"time"

	"dog-ratings/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name    string
	License string
	OwnerID string
	Age     *float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Dog, error) {
	now := s.now()
	d := Dog{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		License:   strings.TrimSpace(in.License),
		OwnerID:   strings.TrimSpace(in.OwnerID),
		Age:       in.Age,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.validate(ctx, d); err != nil {
		return Dog{}, err
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

// PatchNumber distingue "no enviado" (Present=false) de "enviado null"
// (Present=true, Value=nil) para PATCH real.
type PatchNumber struct {
	Present bool
	Value   *float64
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name    *string
	License *string
	OwnerID *string
	Age     PatchNumber
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Dog, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Dog{}, ErrNotFound
	}

	if in.Name != nil {
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.License != nil {
		current.License = strings.TrimSpace(*in.License)
	}
	if in.OwnerID != nil {
		current.OwnerID = strings.TrimSpace(*in.OwnerID)
	}
	if in.Age.Present {
		current.Age = in.Age.Value
	}
	current.UpdatedAt = s.now()

	if err := s.validate(ctx, current); err != nil {
		return Dog{}, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return Dog{}, err
	}
	return current, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Dog, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Dog, error) {
	return s.repo.List(ctx)
}

// Exists lo consumen otros módulos (ratings) para presencia de asociación.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return false, nil
	}
	return true, nil
}

// Validate corre el rule set sin persistir (útil para probar un payload).
func (s *Service) Validate(ctx context.Context, d Dog) (*validation.Errors, error) {
	return validation.Validate(ctx, d.record(), ruleSet(s.repo))
}

// validate corta el save: si hay hallazgos devuelve el colector como error
// tipado (*validation.Errors) y el storage no se toca.
func (s *Service) validate(ctx context.Context, d Dog) error {
	errs, err := s.Validate(ctx, d)
	if err != nil {
		return err
	}
	if !errs.IsEmpty() {
		return errs
	}
	return nil
}
