package usecase

import (
	"context"

	"business-admin/internal/coupon"
	repo "business-admin/internal/coupon/repository"
)

// List returns the tenant's coupons in display order. Only the unfiltered list is cached.
func (uc *implUseCase) List(ctx context.Context, input coupon.ListInput) (coupon.ListOutput, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return coupon.ListOutput{}, err
	}

	cacheable := input.ID == "" && input.Active == nil
	if cacheable {
		if items, ok := uc.cachedList(ctx, tenantID); ok {
			return coupon.ListOutput{Coupons: items}, nil
		}
	}

	items, err := uc.repo.ListCoupons(ctx, repo.ListCouponsOptions{
		BusinessID: tenantID,
		ID:         input.ID,
		Active:     input.Active,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCoupons: %v", err)
		return coupon.ListOutput{}, err
	}

	if cacheable {
		uc.storeList(ctx, tenantID, items)
	}
	return coupon.ListOutput{Coupons: items}, nil
}
