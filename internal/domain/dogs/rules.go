package dogs

import (
	"context"
	"regexp"

	"dog-ratings/internal/validation"
)

// Licencia municipal: dos letras de estado, guión, seis dígitos (OH-123456).
var licensePattern = regexp.MustCompile(`^[A-Z]{2}-\d{6}$`)

// ruleSet es la lista declarativa de reglas de Dog, en orden. Todas corren
// siempre: un license malformado y repetido junta blank + invalid + taken.
func ruleSet(repo Repository) []validation.Rule {
	return []validation.Rule{
		validation.Presence("name"),
		validation.Presence("license"),
		validation.Format("license", licensePattern),
		validation.Unique("license", existsWith(repo)),
		validation.Presence("owner_id"),
		validation.Numericality("age", validation.GreaterOrEqual(0), validation.AllowBlank()),
	}
}

func existsWith(repo Repository) validation.ExistsFunc {
	return func(ctx context.Context, attr string, v validation.Value, excludeID string) (bool, error) {
		return repo.ExistsWithValue(ctx, attr, v.Raw(), excludeID)
	}
}
