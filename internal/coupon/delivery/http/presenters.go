package http

import (
	"time"

	"business-admin/internal/coupon"
	"business-admin/pkg/ordering"
)

// --- Request DTOs ---

type createReq struct {
	Code          string     `json:"code"            binding:"required,max=64"`
	DiscountType  string     `json:"discount_type"   binding:"required,oneof=percentage fixed"`
	DiscountValue float64    `json:"discount_value"  binding:"gt=0"`
	MinOrderValue float64    `json:"min_order_value" binding:"gte=0"`
	MaxUses       int        `json:"max_uses"        binding:"gte=0"`
	ValidFrom     *time.Time `json:"valid_from"`
	ValidTo       *time.Time `json:"valid_to"`
	IsActive      *bool      `json:"is_active"`
}

func (r createReq) toInput() coupon.CreateInput {
	return coupon.CreateInput{
		Code:          r.Code,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		MinOrderValue: r.MinOrderValue,
		MaxUses:       r.MaxUses,
		ValidFrom:     r.ValidFrom,
		ValidTo:       r.ValidTo,
		IsActive:      r.IsActive,
	}
}

type listReq struct {
	ID     string `form:"id"`
	Active *bool  `form:"active"`
}

func (r listReq) toInput() coupon.ListInput {
	return coupon.ListInput{ID: r.ID, Active: r.Active}
}

type updateReq struct {
	ID            string     `json:"-"`
	Code          *string    `json:"code"            binding:"omitempty,max=64"`
	DiscountType  *string    `json:"discount_type"   binding:"omitempty,oneof=percentage fixed"`
	DiscountValue *float64   `json:"discount_value"  binding:"omitempty,gt=0"`
	MinOrderValue *float64   `json:"min_order_value" binding:"omitempty,gte=0"`
	MaxUses       *int       `json:"max_uses"        binding:"omitempty,gte=0"`
	ValidFrom     *time.Time `json:"valid_from"`
	ValidTo       *time.Time `json:"valid_to"`
	SortOrder     *int       `json:"sort_order"      binding:"omitempty,gte=0"`
	IsActive      *bool      `json:"is_active"`
}

func (r updateReq) toInput() coupon.UpdateInput {
	return coupon.UpdateInput{
		ID:            r.ID,
		Code:          r.Code,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		MinOrderValue: r.MinOrderValue,
		MaxUses:       r.MaxUses,
		ValidFrom:     r.ValidFrom,
		ValidTo:       r.ValidTo,
		SortOrder:     r.SortOrder,
		IsActive:      r.IsActive,
	}
}

// reorderScope is read from the query string. It narrows the set the items must cover.
type reorderScope struct {
	Active *bool `form:"active"`
}

type reorderReq struct {
	Active *bool               `json:"-"`
	Items  []ordering.Position `json:"items" binding:"required,min=1"`
}

func (r reorderReq) toInput() coupon.ReorderInput {
	return coupon.ReorderInput{Active: r.Active, Positions: r.Items}
}

// --- Response DTOs ---

type couponResp struct {
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

func newCouponResp(c coupon.Coupon) couponResp {
	return couponResp{
		ID:            c.ID,
		BusinessID:    c.BusinessID,
		Code:          c.Code,
		DiscountType:  c.DiscountType,
		DiscountValue: c.DiscountValue,
		MinOrderValue: c.MinOrderValue,
		MaxUses:       c.MaxUses,
		ValidFrom:     c.ValidFrom,
		ValidTo:       c.ValidTo,
		SortOrder:     c.SortOrder,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (h *handler) newListResp(out coupon.ListOutput) []couponResp {
	items := make([]couponResp, len(out.Coupons))
	for i, c := range out.Coupons {
		items[i] = newCouponResp(c)
	}
	return items
}
