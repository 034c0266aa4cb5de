package ratings

import (
	"time"

	"dog-ratings/internal/validation"
)

// Rating es la calificación que una persona (judge) le da a un perro.
type Rating struct {
	ID      string
	DogID   string
	JudgeID string // referencia a people.Person

	// Paws es el puntaje; opcional (nil = sin puntaje, solo comentario).
	Paws    *float64
	Comment string

	CreatedAt time.Time
}

func (r Rating) record() *validation.Record {
	return validation.NewRecord(r.ID).
		Set("dog_id", validation.String(r.DogID)).
		Set("judge_id", validation.String(r.JudgeID)).
		Set("paws", validation.NumberPtr(r.Paws)).
		Set("comment", validation.String(r.Comment))
}
