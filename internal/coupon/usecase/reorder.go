package usecase

import (
	"context"
	"fmt"

	"business-admin/internal/coupon"
	repo "business-admin/internal/coupon/repository"
	"business-admin/pkg/ordering"
)

func (uc *implUseCase) Reorder(ctx context.Context, input coupon.ReorderInput) error {
	tenantID, err := tenant(ctx)
	if err != nil {
		return err
	}

	ids, err := uc.repo.ListCouponIDs(ctx, repo.ListCouponsOptions{BusinessID: tenantID, Active: input.Active})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reorder ListCouponIDs: %v", err)
		return err
	}
	if err := ordering.Validate(input.Positions, ids); err != nil {
		return fmt.Errorf("%w: %w", coupon.ErrInvalidOrder, err)
	}

	if err := uc.repo.ReorderCoupons(ctx, tenantID, input.Positions); err != nil {
		uc.l.Errorf(ctx, "uc.Reorder ReorderCoupons: %v", err)
		return err
	}
	uc.invalidate(ctx, tenantID)
	return nil
}
