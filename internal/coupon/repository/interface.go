package repository

import (
	"context"

	"business-admin/internal/coupon"
	"business-admin/pkg/ordering"
)

type Repository interface {
	CreateCoupon(ctx context.Context, opt CreateCouponOptions) (coupon.Coupon, error)
	// GetOneCoupon returns a zero Coupon when nothing matches.
	GetOneCoupon(ctx context.Context, opt GetOneCouponOptions) (coupon.Coupon, error)
	ListCoupons(ctx context.Context, opt ListCouponsOptions) ([]coupon.Coupon, error)
	// ListCouponIDs returns the ids matching opt in display order.
	ListCouponIDs(ctx context.Context, opt ListCouponsOptions) ([]string, error)
	UpdateCoupon(ctx context.Context, opt UpdateCouponOptions) (coupon.Coupon, error)
	DeleteCoupon(ctx context.Context, businessID, id string) error
	ReorderCoupons(ctx context.Context, businessID string, positions []ordering.Position) error
}
