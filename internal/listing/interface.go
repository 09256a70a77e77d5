package listing

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Listing, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (Listing, error)
	Update(ctx context.Context, input UpdateInput) (Listing, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, input ReorderInput) error
	Export(ctx context.Context, input ListInput) (ExportOutput, error)
}
