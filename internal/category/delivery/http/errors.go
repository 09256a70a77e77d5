package http

import (
	"errors"
	"net/http"
	"strings"

	"business-admin/internal/category"
	pkgErrors "business-admin/pkg/errors"
	"business-admin/pkg/scope"
)

// mapError translates use-case errors into HTTP errors. Anything unknown is a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Category not found")
	case errors.Is(err, category.ErrNameRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Validation failed", "name is required")
	case errors.Is(err, category.ErrInvalidOrder):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid order", strings.TrimPrefix(err.Error(), category.ErrInvalidOrder.Error()+": "))
	case errors.Is(err, scope.ErrNoTenant):
		return pkgErrors.ErrMissingTenant
	default:
		return pkgErrors.ErrInternalServerError
	}
}
