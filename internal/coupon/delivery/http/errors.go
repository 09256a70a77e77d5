package http

import (
	"errors"
	"net/http"
	"strings"

	"business-admin/internal/coupon"
	pkgErrors "business-admin/pkg/errors"
	"business-admin/pkg/scope"
)

var validationErrors = map[error]string{
	coupon.ErrCodeRequired:         "code is required",
	coupon.ErrInvalidDiscountType:  "discount_type must be percentage or fixed",
	coupon.ErrInvalidDiscountValue: "discount_value must be greater than 0",
	coupon.ErrPercentageTooHigh:    "discount_value must be at most 100 for percentage coupons",
	coupon.ErrNegativeLimit:        "min_order_value and max_uses must not be negative",
	coupon.ErrInvalidValidity:      "valid_to must not be before valid_from",
}

func (h *handler) mapError(err error) error {
	for target, detail := range validationErrors {
		if errors.Is(err, target) {
			return pkgErrors.NewHTTPError(http.StatusBadRequest, "Validation failed", detail)
		}
	}
	switch {
	case errors.Is(err, coupon.ErrCouponNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Coupon not found")
	case errors.Is(err, coupon.ErrDuplicateCode):
		return pkgErrors.NewHTTPError(http.StatusConflict, "Coupon code already exists")
	case errors.Is(err, coupon.ErrInvalidOrder):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid order", strings.TrimPrefix(err.Error(), coupon.ErrInvalidOrder.Error()+": "))
	case errors.Is(err, scope.ErrNoTenant):
		return pkgErrors.ErrMissingTenant
	default:
		return pkgErrors.ErrInternalServerError
	}
}
