package dogs

import "context"

type Repository interface {
	Create(ctx context.Context, d Dog) error
	Update(ctx context.Context, d Dog) error
	GetByID(ctx context.Context, id string) (Dog, error)
	List(ctx context.Context) ([]Dog, error)

	// ExistsWithValue responde si otro registro (id != excludeID) tiene el
	// mismo valor en el atributo. Lo consume la regla de uniqueness.
	ExistsWithValue(ctx context.Context, attr, value, excludeID string) (bool, error)
}
