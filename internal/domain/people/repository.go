package people

import "context"

type Repository interface {
	Create(ctx context.Context, p Person) error
	Update(ctx context.Context, p Person) error
	GetByID(ctx context.Context, id string) (Person, error)
	List(ctx context.Context) ([]Person, error)

	// ExistsWithValue responde si otra persona (id != excludeID) tiene el
	// mismo valor en el atributo.
	ExistsWithValue(ctx context.Context, attr, value, excludeID string) (bool, error)
}
