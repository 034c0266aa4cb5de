package validation

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"testing"
)

func TestPresence(t *testing.T) {
	rule := Presence("name")

	cases := []struct {
		name  string
		value Value
		blank bool
	}{
		{"null", Null, true},
		{"empty string", String(""), true},
		{"whitespace", String("   "), true},
		{"value", String("Toot"), false},
		{"zero number", Number(0), false},
	}

	for _, tc := range cases {
		rec := NewRecord("id-1").Set("name", tc.value)
		errs, err := Validate(context.Background(), rec, []Rule{rule})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got := !errs.IsEmpty(); got != tc.blank {
			t.Fatalf("%s: presence failure = %v, want %v", tc.name, got, tc.blank)
		}
	}
}

func TestFormat(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z]{2}-\d{6}$`)
	rule := Format("license", re)

	valid := NewRecord("id-1").Set("license", String("OH-123456"))
	errs, _ := Validate(context.Background(), valid, []Rule{rule})
	if !errs.IsEmpty() {
		t.Fatalf("matching value should produce zero errors, got %v", errs.Messages())
	}

	invalid := NewRecord("id-2").Set("license", String("oh-12"))
	errs, _ = Validate(context.Background(), invalid, []Rule{rule})
	if errs.Count() != 1 || errs.On("license")[0] != MsgInvalid {
		t.Fatalf("non-matching value should produce exactly one format error, got %v", errs.Messages())
	}

	// Null no matchea un patrón anclado: también es un hallazgo.
	nullRec := NewRecord("id-3").Set("license", Null)
	errs, _ = Validate(context.Background(), nullRec, []Rule{rule})
	if errs.Count() != 1 {
		t.Fatalf("null should fail an anchored format, got %v", errs.Messages())
	}
}

func TestUnique(t *testing.T) {
	store := map[string]string{"dog-1": "OH-123456"}
	exists := func(_ context.Context, _ string, v Value, excludeID string) (bool, error) {
		for id, lic := range store {
			if id != excludeID && lic == v.Raw() {
				return true, nil
			}
		}
		return false, nil
	}

	rule := Unique("license", exists)

	dup := NewRecord("dog-2").Set("license", String("OH-123456"))
	errs, _ := Validate(context.Background(), dup, []Rule{rule})
	if errs.Count() != 1 || errs.On("license")[0] != MsgTaken {
		t.Fatalf("expected exactly one uniqueness error, got %v", errs.Messages())
	}

	// El mismo registro no colisiona consigo mismo.
	self := NewRecord("dog-1").Set("license", String("OH-123456"))
	errs, _ = Validate(context.Background(), self, []Rule{rule})
	if !errs.IsEmpty() {
		t.Fatalf("record should not collide with itself, got %v", errs.Messages())
	}

	fresh := NewRecord("dog-3").Set("license", String("OH-999999"))
	errs, _ = Validate(context.Background(), fresh, []Rule{rule})
	if !errs.IsEmpty() {
		t.Fatalf("unused value should be unique, got %v", errs.Messages())
	}
}

func TestUnique_InfraErrorPropagates(t *testing.T) {
	boom := errors.New("store down")
	rule := Unique("license", func(context.Context, string, Value, string) (bool, error) {
		return false, boom
	})

	_, err := Validate(context.Background(), NewRecord("d").Set("license", String("x")), []Rule{rule})
	if !errors.Is(err, boom) {
		t.Fatalf("expected infra error to propagate, got %v", err)
	}
}

func TestNumericality_AllowBlank(t *testing.T) {
	rule := Numericality("paws", GreaterOrEqual(0), AllowBlank())

	cases := []struct {
		name  string
		value Value
		want  int
	}{
		{"null skipped", Null, 0},
		{"empty string skipped", String(""), 0},
		{"negative", Number(-1), 1},
		{"zero", Number(0), 0},
		{"positive", Number(4), 0},
		{"numeric string", String("3.5"), 0},
		{"non numeric string", String("many"), 1},
	}

	for _, tc := range cases {
		rec := NewRecord("r-1").Set("paws", tc.value)
		errs, err := Validate(context.Background(), rec, []Rule{rule})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if errs.Count() != tc.want {
			t.Fatalf("%s: expected %d errors, got %v", tc.name, tc.want, errs.Messages())
		}
	}
}

func TestNumericality_Messages(t *testing.T) {
	rule := Numericality("age", GreaterOrEqual(0))

	rec := NewRecord("d-1").Set("age", Number(-3))
	errs, _ := Validate(context.Background(), rec, []Rule{rule})
	if got := errs.On("age")[0]; got != "must be greater than or equal to 0" {
		t.Fatalf("unexpected bound message: %q", got)
	}

	rec = NewRecord("d-2").Set("age", String("old"))
	errs, _ = Validate(context.Background(), rec, []Rule{rule})
	if got := errs.On("age")[0]; got != MsgNotANumber {
		t.Fatalf("unexpected non-number message: %q", got)
	}

	// Sin AllowBlank, null también es "is not a number".
	rec = NewRecord("d-3").Set("age", Null)
	errs, _ = Validate(context.Background(), rec, []Rule{rule})
	if errs.Count() != 1 {
		t.Fatalf("blank without AllowBlank should fail, got %v", errs.Messages())
	}
}

func TestValidate_AllRulesRunAndAccumulate(t *testing.T) {
	// Un mismo atributo junta presence + format + unique en una sola corrida.
	re := regexp.MustCompile(`^[A-Z]{2}-\d{6}$`)
	rules := []Rule{
		Presence("license"),
		Format("license", re),
		Unique("license", func(context.Context, string, Value, string) (bool, error) {
			return true, nil
		}),
	}

	rec := NewRecord("d-1").Set("license", Null)
	errs, err := Validate(context.Background(), rec, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{MsgBlank, MsgInvalid, MsgTaken}
	if got := errs.On("license"); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected all three rules to run in order, got %v", got)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	rec := NewRecord("d-1").Set("name", Null)
	rules := []Rule{Presence("name")}

	for i := 0; i < 3; i++ {
		errs, err := Validate(context.Background(), rec, rules)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if errs.Count() != 1 {
			t.Fatalf("run %d: expected fresh collector with 1 error, got %d", i, errs.Count())
		}
	}
}

func TestValidate_CustomRuleCanAddSeveral(t *testing.T) {
	custom := func(_ context.Context, _ *Record, errs *Errors) error {
		errs.Add("name", "is too silly")
		errs.Add("comment", "is too long")
		return nil
	}

	errs, _ := Validate(context.Background(), NewRecord("r-1"), []Rule{custom, Presence("name")})
	if errs.Count() != 3 {
		t.Fatalf("expected custom findings plus presence, got %v", errs.Messages())
	}
}

func TestValidate_PanicInRuleIsContained(t *testing.T) {
	panicky := func(_ context.Context, rec *Record, _ *Errors) error {
		v, _ := rec.Get("code")
		s, _ := v.AsString()
		_ = s[3] // index out of range con un valor corto
		return nil
	}

	rec := NewRecord("p-1").Set("code", String("x")).Set("name", Null)
	errs, err := Validate(context.Background(), rec, []Rule{panicky, Presence("name")})
	if err != nil {
		t.Fatalf("panic must not surface as error: %v", err)
	}

	if got := errs.On("base"); len(got) != 1 || got[0] != "validation could not be completed" {
		t.Fatalf("expected contained panic on base, got %v", errs.Messages())
	}
	// La regla siguiente corre igual.
	if len(errs.On("name")) != 1 {
		t.Fatalf("rules after a panic should still run, got %v", errs.Messages())
	}
}
