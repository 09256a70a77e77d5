package coupon

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Coupon, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (Coupon, error)
	Update(ctx context.Context, input UpdateInput) (Coupon, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, input ReorderInput) error
	Export(ctx context.Context) (ExportOutput, error)
}
