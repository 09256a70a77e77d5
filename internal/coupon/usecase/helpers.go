package usecase

import (
	"context"
	"errors"
	"strings"

	"business-admin/internal/coupon"
	"business-admin/internal/model"
	"business-admin/pkg/cache"
	"business-admin/pkg/scope"
)

func tenant(ctx context.Context) (string, error) {
	sc, ok := scope.FromContext(ctx)
	if !ok {
		return "", scope.ErrNoTenant
	}
	return sc.TenantID, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// validate checks the business rules of a fully merged coupon.
func validate(c coupon.Coupon) error {
	if c.Code == "" {
		return coupon.ErrCodeRequired
	}
	switch c.DiscountType {
	case coupon.DiscountPercentage:
		if c.DiscountValue > 100 {
			return coupon.ErrPercentageTooHigh
		}
	case coupon.DiscountFixed:
	default:
		return coupon.ErrInvalidDiscountType
	}
	if c.DiscountValue <= 0 {
		return coupon.ErrInvalidDiscountValue
	}
	if c.MinOrderValue < 0 || c.MaxUses < 0 {
		return coupon.ErrNegativeLimit
	}
	if c.ValidFrom != nil && c.ValidTo != nil && c.ValidTo.Before(*c.ValidFrom) {
		return coupon.ErrInvalidValidity
	}
	return nil
}

func (uc *implUseCase) cachedList(ctx context.Context, tenantID string) ([]coupon.Coupon, bool) {
	var out []coupon.Coupon
	err := uc.cache.GetJSON(ctx, cache.ListKey(model.CollectionCoupons, tenantID), &out)
	if err == nil {
		return out, true
	}
	if !errors.Is(err, cache.ErrMiss) {
		uc.l.Warnf(ctx, "uc.List cache get: %v", err)
	}
	return nil, false
}

func (uc *implUseCase) storeList(ctx context.Context, tenantID string, items []coupon.Coupon) {
	if err := uc.cache.SetJSON(ctx, cache.ListKey(model.CollectionCoupons, tenantID), items); err != nil {
		uc.l.Warnf(ctx, "uc.List cache set: %v", err)
	}
}

func (uc *implUseCase) invalidate(ctx context.Context, tenantID string) {
	if err := uc.cache.Delete(ctx, cache.ListKey(model.CollectionCoupons, tenantID)); err != nil {
		uc.l.Warnf(ctx, "uc.invalidate: %v", err)
	}
}

func pick[T any](v *T, fallback T) T {
	if v != nil {
		return *v
	}
	return fallback
}

func pickPtr[T any](v *T, fallback *T) *T {
	if v != nil {
		return v
	}
	return fallback
}
