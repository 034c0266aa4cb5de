package validation

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// Mensajes estándar, estilo ActiveRecord.
const (
	MsgBlank      = "can't be blank"
	MsgTaken      = "has already been taken"
	MsgInvalid    = "is invalid"
	MsgNotANumber = "is not a number"
)

// Rule es una regla de validación: función pura del estado actual del
// record que agrega cero o más hallazgos al colector. El error de retorno
// es una falla de infraestructura (repo o servicio externo caído), nunca
// un hallazgo de validación.
type Rule func(ctx context.Context, rec *Record, errs *Errors) error

// Presence falla si el atributo es null, string vacío o solo espacios.
func Presence(attr string) Rule {
	return func(_ context.Context, rec *Record, errs *Errors) error {
		v, _ := rec.Get(attr)
		if v.IsBlank() {
			errs.Add(attr, MsgBlank)
		}
		return nil
	}
}

// Format falla si la forma string del valor no matchea el patrón.
// Corre también sobre null (Raw() == "" no matchea patrones anclados).
func Format(attr string, re *regexp.Regexp) Rule {
	return func(_ context.Context, rec *Record, errs *Errors) error {
		v, _ := rec.Get(attr)
		if !re.MatchString(v.Raw()) {
			errs.Add(attr, MsgInvalid)
		}
		return nil
	}
}

// ExistsFunc es la capability inyectada para uniqueness: responde si otro
// registro persistido (distinto de excludeID) tiene el mismo valor.
type ExistsFunc func(ctx context.Context, attr string, v Value, excludeID string) (bool, error)

// Unique falla si ya existe otro registro con el mismo valor. Corre también
// sobre valores en blanco: dos registros sin licencia colisionan igual.
// Es best-effort frente a escrituras concurrentes; la constraint del store
// es el respaldo real.
func Unique(attr string, exists ExistsFunc) Rule {
	return func(ctx context.Context, rec *Record, errs *Errors) error {
		v, _ := rec.Get(attr)
		taken, err := exists(ctx, attr, v, rec.ID())
		if err != nil {
			return err
		}
		if taken {
			errs.Add(attr, MsgTaken)
		}
		return nil
	}
}

type numericality struct {
	allowBlank bool
	hasMin     bool
	min        float64
}

type NumericalityOption func(*numericality)

// GreaterOrEqual exige valor numérico >= bound.
func GreaterOrEqual(bound float64) NumericalityOption {
	return func(n *numericality) {
		n.hasMin = true
		n.min = bound
	}
}

// AllowBlank saltea el chequeo completo cuando el valor es null o vacío.
func AllowBlank() NumericalityOption {
	return func(n *numericality) {
		n.allowBlank = true
	}
}

// Numericality falla si el atributo no es un número o no cumple el
// comparador configurado.
func Numericality(attr string, opts ...NumericalityOption) Rule {
	var cfg numericality
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(_ context.Context, rec *Record, errs *Errors) error {
		v, _ := rec.Get(attr)

		if v.IsBlank() {
			if cfg.allowBlank {
				return nil
			}
			errs.Add(attr, MsgNotANumber)
			return nil
		}

		n, ok := v.AsNumber()
		if !ok {
			// Un string numérico cuenta como número (igual que ActiveRecord).
			s, _ := v.AsString()
			parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				errs.Add(attr, MsgNotANumber)
				return nil
			}
			n = parsed
		}

		if cfg.hasMin && n < cfg.min {
			errs.Add(attr, "must be greater than or equal to "+strconv.FormatFloat(cfg.min, 'f', -1, 64))
		}
		return nil
	}
}
