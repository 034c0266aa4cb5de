package people

import (
	"context"

	"dog-ratings/internal/ports/geography"
	"dog-ratings/internal/validation"
)

func ruleSet(repo Repository, geo geography.StateValidator) []validation.Rule {
	return []validation.Rule{
		validation.Presence("name"),
		validation.Unique("name", existsWith(repo)),
		hometownStateRule(geo),
	}
}

func existsWith(repo Repository) validation.ExistsFunc {
	return func(ctx context.Context, attr string, v validation.Value, excludeID string) (bool, error) {
		return repo.ExistsWithValue(ctx, attr, v.Raw(), excludeID)
	}
}

// hometownStateRule es la regla custom: valida la abreviatura contra el port
// de geografía. Si el valor existe pero no es string, agrega el error y
// retorna ahí mismo: no se consulta geografía con un tipo inválido, y el
// resto de las reglas del set no se ven afectadas.
func hometownStateRule(geo geography.StateValidator) validation.Rule {
	return func(ctx context.Context, rec *validation.Record, errs *validation.Errors) error {
		v, _ := rec.Get("hometown_state")

		if v.IsBlank() {
			errs.Add("hometown_state", validation.MsgBlank)
			return nil
		}

		code, ok := v.AsString()
		if !ok {
			errs.Add("hometown_state", "must be a string")
			return nil
		}

		valid, err := geo.ValidStateAbbreviation(ctx, code)
		if err != nil {
			return err
		}
		if !valid {
			errs.Add("hometown_state", "is not a valid state abbreviation")
		}
		return nil
	}
}
