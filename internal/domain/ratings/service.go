package ratings

import (
	"context"
	"strings"
	"time"

	"dog-ratings/internal/validation"

	"github.com/google/uuid"
)

type Service struct {
	repo        Repository
	dogExists   RefLookup
	judgeExists RefLookup
	now         func() time.Time
}

// NewService recibe los lookups de dogs/people como funciones para no
// acoplar este módulo a los otros services.
func NewService(repo Repository, dogExists, judgeExists RefLookup) *Service {
	return &Service{
		repo:        repo,
		dogExists:   dogExists,
		judgeExists: judgeExists,
		now:         time.Now,
	}
}

type CreateInput struct {
	DogID   string
	JudgeID string
	Paws    *float64
	Comment string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Rating, error) {
	r := Rating{
		ID:        uuid.NewString(),
		DogID:     strings.TrimSpace(in.DogID),
		JudgeID:   strings.TrimSpace(in.JudgeID),
		Paws:      in.Paws,
		Comment:   strings.TrimSpace(in.Comment),
		CreatedAt: s.now(),
	}

	if err := s.validate(ctx, r); err != nil {
		return Rating{}, err
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return Rating{}, err
	}
	return r, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Rating, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByDog(ctx context.Context, dogID string) ([]Rating, error) {
	return s.repo.ListByDog(ctx, dogID)
}

func (s *Service) ListByJudge(ctx context.Context, judgeID string) ([]Rating, error) {
	return s.repo.ListByJudge(ctx, judgeID)
}

func (s *Service) Validate(ctx context.Context, r Rating) (*validation.Errors, error) {
	return validation.Validate(ctx, r.record(), ruleSet(s.dogExists, s.judgeExists))
}

func (s *Service) validate(ctx context.Context, r Rating) error {
	errs, err := s.Validate(ctx, r)
	if err != nil {
		return err
	}
	if !errs.IsEmpty() {
		return errs
	}
	return nil
}
