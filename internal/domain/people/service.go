package people

import (
	"context"
	"errors"
	"strings"
	"time"

	"dog-ratings/internal/ports/geography"
	"dog-ratings/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("not found")
)

type Service struct {
	repo Repository
	geo  geography.StateValidator
	now  func() time.Time
}

func NewService(repo Repository, geo geography.StateValidator) *Service {
	return &Service{
		repo: repo,
		geo:  geo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name          string
	HometownState validation.Value
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Person, error) {
	now := s.now()
	p := Person{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(in.Name),
		HometownState: in.HometownState,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.validate(ctx, p); err != nil {
		return Person{}, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Person{}, err
	}
	return p, nil
}

// PatchValue distingue "no enviado" de "enviado" para PATCH real.
type PatchValue struct {
	Present bool
	Value   validation.Value
}

type UpdateInput struct {
	Name          *string
	HometownState PatchValue
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Person, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Person{}, ErrNotFound
	}

	if in.Name != nil {
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.HometownState.Present {
		current.HometownState = in.HometownState.Value
	}
	current.UpdatedAt = s.now()

	if err := s.validate(ctx, current); err != nil {
		return Person{}, err
	}
	if err := s.repo.Update(ctx, current); err != nil {
		return Person{}, err
	}
	return current, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Person, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Person, error) {
	return s.repo.List(ctx)
}

// Exists lo consumen otros módulos (ratings) para presencia de asociación.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (s *Service) Validate(ctx context.Context, p Person) (*validation.Errors, error) {
	return validation.Validate(ctx, p.record(), ruleSet(s.repo, s.geo))
}

func (s *Service) validate(ctx context.Context, p Person) error {
	errs, err := s.Validate(ctx, p)
	if err != nil {
		return err
	}
	if !errs.IsEmpty() {
		return errs
	}
	return nil
}
