package ratings

import (
	"context"

	"dog-ratings/internal/validation"
)

// RefLookup responde si la entidad referida existe (lo proveen dogs/people).
type RefLookup func(ctx context.Context, id string) (bool, error)

func ruleSet(dogExists, judgeExists RefLookup) []validation.Rule {
	return []validation.Rule{
		refPresenceRule("dog_id", dogExists),
		refPresenceRule("judge_id", judgeExists),
		validation.Numericality("paws", validation.GreaterOrEqual(0), validation.AllowBlank()),
	}
}

// refPresenceRule es presence para referencias: id en blanco y referencia
// colgante cuentan igual como "can't be blank".
func refPresenceRule(attr string, exists RefLookup) validation.Rule {
	return func(ctx context.Context, rec *validation.Record, errs *validation.Errors) error {
		v, _ := rec.Get(attr)
		if v.IsBlank() {
			errs.Add(attr, validation.MsgBlank)
			return nil
		}

		id, ok := v.AsString()
		if !ok {
			errs.Add(attr, validation.MsgBlank)
			return nil
		}

		found, err := exists(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			errs.Add(attr, validation.MsgBlank)
		}
		return nil
	}
}
