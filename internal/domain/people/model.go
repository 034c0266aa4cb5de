package people

import (
	"time"

	"dog-ratings/internal/validation"
)

// Person representa a una persona que califica perros.
type Person struct {
	ID   string
	Name string

	// HometownState queda como Value (string | number | null) hasta validar:
	// el payload puede traer cualquier cosa y la regla custom es la que
	// decide qué hacer con una variante equivocada.
	HometownState validation.Value

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Person) record() *validation.Record {
	return validation.NewRecord(p.ID).
		Set("name", validation.String(p.Name)).
		Set("hometown_state", p.HometownState)
}
