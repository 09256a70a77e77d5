package usecase

import (
	"context"
	"errors"

	"business-admin/internal/coupon"
	repo "business-admin/internal/coupon/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, id string) (coupon.Coupon, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return coupon.Coupon{}, err
	}
	c, err := uc.repo.GetOneCoupon(ctx, repo.GetOneCouponOptions{BusinessID: tenantID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneCoupon: %v", err)
		return coupon.Coupon{}, err
	}
	if c.ID == "" {
		return coupon.Coupon{}, coupon.ErrCouponNotFound
	}
	return c, nil
}

// Update merges the patch, re-validates the whole coupon and checks a changed code is free.
func (uc *implUseCase) Update(ctx context.Context, input coupon.UpdateInput) (coupon.Coupon, error) {
	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return coupon.Coupon{}, err
	}

	merged := existing
	if input.Code != nil {
		merged.Code = normalizeCode(*input.Code)
	}
	merged.DiscountType = pick(input.DiscountType, existing.DiscountType)
	merged.DiscountValue = pick(input.DiscountValue, existing.DiscountValue)
	merged.MinOrderValue = pick(input.MinOrderValue, existing.MinOrderValue)
	merged.MaxUses = pick(input.MaxUses, existing.MaxUses)
	merged.ValidFrom = pickPtr(input.ValidFrom, existing.ValidFrom)
	merged.ValidTo = pickPtr(input.ValidTo, existing.ValidTo)
	merged.SortOrder = pick(input.SortOrder, existing.SortOrder)
	merged.IsActive = pick(input.IsActive, existing.IsActive)
	if err := validate(merged); err != nil {
		return coupon.Coupon{}, err
	}

	if merged.Code != existing.Code {
		clash, err := uc.repo.GetOneCoupon(ctx, repo.GetOneCouponOptions{BusinessID: existing.BusinessID, Code: merged.Code})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneCoupon: %v", err)
			return coupon.Coupon{}, err
		}
		if clash.ID != "" && clash.ID != existing.ID {
			return coupon.Coupon{}, coupon.ErrDuplicateCode
		}
	}

	c, err := uc.repo.UpdateCoupon(ctx, repo.UpdateCouponOptions{
		BusinessID:    existing.BusinessID,
		ID:            existing.ID,
		Code:          merged.Code,
		DiscountType:  merged.DiscountType,
		DiscountValue: merged.DiscountValue,
		MinOrderValue: merged.MinOrderValue,
		MaxUses:       merged.MaxUses,
		ValidFrom:     merged.ValidFrom,
		ValidTo:       merged.ValidTo,
		SortOrder:     merged.SortOrder,
		IsActive:      merged.IsActive,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return coupon.Coupon{}, coupon.ErrDuplicateCode
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateCoupon: %v", err)
		return coupon.Coupon{}, err
	}
	if c.ID == "" {
		return coupon.Coupon{}, coupon.ErrCouponNotFound
	}

	uc.invalidate(ctx, existing.BusinessID)
	return c, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.Detail(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteCoupon(ctx, existing.BusinessID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteCoupon: %v", err)
		return err
	}
	uc.invalidate(ctx, existing.BusinessID)
	return nil
}
