package coupon

import (
	"time"

	"business-admin/pkg/ordering"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Coupon is a discount code of one business. Code is stored upper-cased and is
// unique per business.
type Coupon struct {
	ID            string     `json:"id"`
	BusinessID    string     `json:"business_id"`
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue float64    `json:"discount_value"`
	MinOrderValue float64    `json:"min_order_value"`
	MaxUses       int        `json:"max_uses"`
	ValidFrom     *time.Time `json:"valid_from,omitempty"`
	ValidTo       *time.Time `json:"valid_to,omitempty"`
	SortOrder     int        `json:"sort_order"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// --- UseCase Inputs ---

type CreateInput struct {
	Code          string
	DiscountType  string
	DiscountValue float64
	MinOrderValue float64
	MaxUses       int
	ValidFrom     *time.Time
	ValidTo       *time.Time
	IsActive      *bool
}

type ListInput struct {
	ID     string
	Active *bool
}

// UpdateInput is a partial update; nil fields keep their stored value.
type UpdateInput struct {
	ID            string
	Code          *string
	DiscountType  *string
	DiscountValue *float64
	MinOrderValue *float64
	MaxUses       *int
	ValidFrom     *time.Time
	ValidTo       *time.Time
	SortOrder     *int
	IsActive      *bool
}

// ReorderInput scopes the ordering to the items matching Active, or to all items when nil.
type ReorderInput struct {
	Active    *bool
	Positions []ordering.Position
}

// --- UseCase Outputs ---

type ListOutput struct {
	Coupons []Coupon
}

type ExportOutput struct {
	FileName string
	Content  []byte
}
