package usecase

import (
	"context"
	"errors"

	"business-admin/internal/coupon"
	repo "business-admin/internal/coupon/repository"
)

// Create validates the coupon, checks the code is free and appends it to the list.
func (uc *implUseCase) Create(ctx context.Context, input coupon.CreateInput) (coupon.Coupon, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return coupon.Coupon{}, err
	}

	draft := coupon.Coupon{
		BusinessID:    tenantID,
		Code:          normalizeCode(input.Code),
		DiscountType:  input.DiscountType,
		DiscountValue: input.DiscountValue,
		MinOrderValue: input.MinOrderValue,
		MaxUses:       input.MaxUses,
		ValidFrom:     input.ValidFrom,
		ValidTo:       input.ValidTo,
		IsActive:      pick(input.IsActive, true),
	}
	if err := validate(draft); err != nil {
		return coupon.Coupon{}, err
	}

	existing, err := uc.repo.GetOneCoupon(ctx, repo.GetOneCouponOptions{BusinessID: tenantID, Code: draft.Code})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneCoupon: %v", err)
		return coupon.Coupon{}, err
	}
	if existing.ID != "" {
		return coupon.Coupon{}, coupon.ErrDuplicateCode
	}

	c, err := uc.repo.CreateCoupon(ctx, repo.CreateCouponOptions{
		ID:            uc.newID(),
		BusinessID:    tenantID,
		Code:          draft.Code,
		DiscountType:  draft.DiscountType,
		DiscountValue: draft.DiscountValue,
		MinOrderValue: draft.MinOrderValue,
		MaxUses:       draft.MaxUses,
		ValidFrom:     draft.ValidFrom,
		ValidTo:       draft.ValidTo,
		IsActive:      draft.IsActive,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return coupon.Coupon{}, coupon.ErrDuplicateCode
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCoupon: %v", err)
		return coupon.Coupon{}, err
	}

	uc.invalidate(ctx, tenantID)
	return c, nil
}
