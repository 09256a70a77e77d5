package category

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Category, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (Category, error)
	Update(ctx context.Context, input UpdateInput) (Category, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, input ReorderInput) error
}
