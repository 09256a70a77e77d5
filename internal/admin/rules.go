package admin

import (
	"business-admin/pkg/form"
)

func couponDiscountCap(f CouponFields) error {
	if f.DiscountType == "percentage" && f.DiscountValue > 100 {
		return form.Invalid("discount_value", "discount_value cannot exceed 100 for percentage coupons")
	}
	return nil
}

func couponValidity(f CouponFields) error {
	if f.ValidFrom != nil && f.ValidTo != nil && f.ValidTo.Before(*f.ValidFrom) {
		return form.Invalid("valid_to", "valid_to must not be before valid_from")
	}
	return nil
}
