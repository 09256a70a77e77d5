package http

import (
	"errors"
	"net/http"
	"strings"

	"business-admin/internal/listing"
	pkgErrors "business-admin/pkg/errors"
	"business-admin/pkg/scope"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, listing.ErrListingNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Listing not found")
	case errors.Is(err, listing.ErrTitleRequired),
		errors.Is(err, listing.ErrInvalidPrice),
		errors.Is(err, listing.ErrInvalidListingType):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Validation failed", err.Error())
	case errors.Is(err, listing.ErrInvalidOrder):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid order", strings.TrimPrefix(err.Error(), listing.ErrInvalidOrder.Error()+": "))
	case errors.Is(err, scope.ErrNoTenant):
		return pkgErrors.ErrMissingTenant
	default:
		return pkgErrors.ErrInternalServerError
	}
}
