package ratings

import "context"

type Repository interface {
	Create(ctx context.Context, r Rating) error
	GetByID(ctx context.Context, id string) (Rating, error)
	ListByDog(ctx context.Context, dogID string) ([]Rating, error)
	ListByJudge(ctx context.Context, judgeID string) ([]Rating, error)
}
