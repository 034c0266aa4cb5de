package validation

import "context"

// Validate corre todas las reglas en orden de declaración sobre un colector
// fresco y lo devuelve. No corta en el primer hallazgo: el record es válido
// solo si el colector queda vacío después de correr todo. No muta el record,
// así que repetir la corrida es idempotente.
func Validate(ctx context.Context, rec *Record, rules []Rule) (*Errors, error) {
	errs := NewErrors()
	for _, rule := range rules {
		if err := runRule(ctx, rec, errs, rule); err != nil {
			return nil, err
		}
	}
	return errs, nil
}

// runRule contiene el panic de una regla (típicamente un bug en una regla
// custom) y lo registra como hallazgo sobre "base" en vez de propagarlo.
// El resto de las reglas sigue corriendo.
func runRule(ctx context.Context, rec *Record, errs *Errors, rule Rule) (err error) {
	defer func() {
		if r := recover(); r != nil {
			errs.Add("base", "validation could not be completed")
		}
	}()
	return rule(ctx, rec, errs)
}
