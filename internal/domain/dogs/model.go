package dogs

import (
	"time"

	"dog-ratings/internal/validation"
)

// Dog representa un perro registrado con su licencia municipal.
type Dog struct {
	ID      string
	Name    string
	License string
	OwnerID string // referencia a people.Person

	// Age en años; opcional (nil = desconocida).
	Age *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// record arma la bolsa de atributos que ven las reglas de validación.
// String vacío y null cuentan igual para presence.
func (d Dog) record() *validation.Record {
	return validation.NewRecord(d.ID).
		Set("name", validation.String(d.Name)).
		Set("license", validation.String(d.License)).
		Set("owner_id", validation.String(d.OwnerID)).
		Set("age", validation.NumberPtr(d.Age))
}
