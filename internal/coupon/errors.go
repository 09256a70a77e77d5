package coupon

import "errors"

var (
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrCodeRequired         = errors.New("coupon code is required")
	ErrDuplicateCode        = errors.New("coupon code already exists")
	ErrInvalidDiscountType  = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountValue = errors.New("discount value must be positive")
	ErrPercentageTooHigh    = errors.New("percentage discount cannot exceed 100")
	ErrNegativeLimit        = errors.New("min order value and max uses cannot be negative")
	ErrInvalidValidity      = errors.New("valid_to must not be before valid_from")
	ErrInvalidOrder         = errors.New("invalid coupon order")
)
