package people

import (
	"context"
	"errors"
	"testing"

	"dog-ratings/internal/validation"
)

// -------------------------
// Test repo + geo fakes
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Person
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Person{}}
}

func (r *testRepo) Create(ctx context.Context, p Person) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Person) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Person, error) {
	p, ok := r.byID[id]
	if !ok {
		return Person{}, errRepoNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context) ([]Person, error) {
	out := make([]Person, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) ExistsWithValue(ctx context.Context, attr, value, excludeID string) (bool, error) {
	for _, p := range r.byID {
		if p.ID != excludeID && attr == "name" && p.Name == value {
			return true, nil
		}
	}
	return false, nil
}

// testGeo registra las consultas para verificar el short-circuit.
type testGeo struct {
	valid map[string]bool
	calls int
}

func (g *testGeo) ValidStateAbbreviation(_ context.Context, code string) (bool, error) {
	g.calls++
	return g.valid[code], nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_ValidPerson(t *testing.T) {
	repo := newTestRepo()
	geo := &testGeo{valid: map[string]bool{"NY": true}}
	svc := NewService(repo, geo)

	p, err := svc.Create(context.Background(), CreateInput{
		Name:          "Josh",
		HometownState: validation.String("NY"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, ok := repo.byID[p.ID]; !ok {
		t.Fatalf("expected person persisted")
	}
	if geo.calls != 1 {
		t.Fatalf("expected one geography lookup, got %d", geo.calls)
	}
}

func TestService_Create_InvalidStateAbbreviation(t *testing.T) {
	repo := newTestRepo()
	geo := &testGeo{valid: map[string]bool{"NY": true}}
	svc := NewService(repo, geo)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:          "Josh",
		HometownState: validation.String("ZZ"),
	})
	verrs := validation.ErrorsFrom(err)
	if verrs == nil {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if got := verrs.On("hometown_state"); len(got) != 1 || got[0] != "is not a valid state abbreviation" {
		t.Fatalf("expected state abbreviation error, got %v", verrs.Messages())
	}
}

// Un hometown_state numérico agrega exactamente un error y corta ahí:
// la regla no consulta geografía ni revienta indexando un no-string.
func TestService_Create_NonStringStateShortCircuits(t *testing.T) {
	repo := newTestRepo()
	geo := &testGeo{valid: map[string]bool{"NY": true}}
	svc := NewService(repo, geo)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:          "Josh",
		HometownState: validation.Number(33),
	})
	verrs := validation.ErrorsFrom(err)
	if verrs == nil {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if got := verrs.On("hometown_state"); len(got) != 1 || got[0] != "must be a string" {
		t.Fatalf("expected single type error, got %v", verrs.Messages())
	}
	if geo.calls != 0 {
		t.Fatalf("geography must not be consulted after a type error, calls=%d", geo.calls)
	}
}

func TestService_Create_BlankState(t *testing.T) {
	repo := newTestRepo()
	geo := &testGeo{}
	svc := NewService(repo, geo)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:          "Josh",
		HometownState: validation.Null,
	})
	verrs := validation.ErrorsFrom(err)
	if verrs == nil || len(verrs.On("hometown_state")) != 1 {
		t.Fatalf("expected blank error on hometown_state, got %v", err)
	}
	if geo.calls != 0 {
		t.Fatalf("geography must not be consulted for blank values")
	}
}

func TestService_Create_DuplicateName(t *testing.T) {
	repo := newTestRepo()
	geo := &testGeo{valid: map[string]bool{"NY": true}}
	svc := NewService(repo, geo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Name: "Josh", HometownState: validation.String("NY")}); err != nil {
		t.Fatalf("first person should save: %v", err)
	}

	_, err := svc.Create(ctx, CreateInput{Name: "Josh", HometownState: validation.String("NY")})
	verrs := validation.ErrorsFrom(err)
	if verrs == nil {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if got := verrs.On("name"); len(got) != 1 || got[0] != validation.MsgTaken {
		t.Fatalf("expected uniqueness error on name, got %v", verrs.Messages())
	}
}

func TestService_Create_GeoUpstreamErrorIsNotAFinding(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, geoError{})

	_, err := svc.Create(context.Background(), CreateInput{
		Name:          "Josh",
		HometownState: validation.String("NY"),
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if validation.ErrorsFrom(err) != nil {
		t.Fatalf("upstream failure must not surface as validation errors")
	}
}

type geoError struct{}

func (geoError) ValidStateAbbreviation(context.Context, string) (bool, error) {
	return false, errors.New("geo down")
}
