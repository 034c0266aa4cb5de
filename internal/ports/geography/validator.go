package geography

import "context"

// StateValidator responde si un código es una abreviatura válida de estado
// de EE.UU. El dataset real vive detrás del adapter (tabla local o servicio
// externo); para el dominio es una función opaca.
type StateValidator interface {
	ValidStateAbbreviation(ctx context.Context, code string) (bool, error)
}
