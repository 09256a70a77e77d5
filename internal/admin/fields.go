package admin

import "time"

// CategoryFields are the editable attributes of a category.
type CategoryFields struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// CouponFields are the editable attributes of a coupon.
type CouponFields struct {
	Code          string     `json:"code" validate:"required"`
	DiscountType  string     `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue float64    `json:"discount_value" validate:"gt=0"`
	MinOrderValue float64    `json:"min_order_value" validate:"gte=0"`
	MaxUses       int        `json:"max_uses" validate:"gte=0"`
	ValidFrom     *time.Time `json:"valid_from,omitempty"`
	ValidTo       *time.Time `json:"valid_to,omitempty"`
}

// RoomTypeFields are the editable attributes of a room type.
type RoomTypeFields struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price" validate:"gt=0"`
	Capacity    int     `json:"capacity" validate:"gt=0"`
	ImageURL    string  `json:"image_url"`
}

// RoomFields are the editable attributes of a room.
type RoomFields struct {
	RoomTypeID string `json:"room_type_id" validate:"required"`
	Number     string `json:"number" validate:"required"`
	Floor      int    `json:"floor"`
	Status     string `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
}

// ListingFields are the editable attributes of a listing.
type ListingFields struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gt=0"`
	ListingType string  `json:"listing_type" validate:"required,oneof=sale rent"`
	City        string  `json:"city"`
	Address     string  `json:"address"`
	ImageURL    string  `json:"image_url"`
}
