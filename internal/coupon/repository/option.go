package repository

import "time"

type CreateCouponOptions struct {
	ID            string
	BusinessID    string
	Code          string
	DiscountType  string
	DiscountValue float64
	MinOrderValue float64
	MaxUses       int
	ValidFrom     *time.Time
	ValidTo       *time.Time
	IsActive      bool
}

// GetOneCouponOptions matches by ID or by Code within a business. Both may be set.
type GetOneCouponOptions struct {
	BusinessID string
	ID         string
	Code       string
}

type ListCouponsOptions struct {
	BusinessID string
	ID         string
	Active     *bool
}

type UpdateCouponOptions struct {
	BusinessID    string
	ID            string
	Code          string
	DiscountType  string
	DiscountValue float64
	MinOrderValue float64
	MaxUses       int
	ValidFrom     *time.Time
	ValidTo       *time.Time
	SortOrder     int
	IsActive      bool
}
