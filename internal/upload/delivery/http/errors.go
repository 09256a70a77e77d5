package http

import (
	"errors"
	"net/http"

	"business-admin/internal/upload"
	pkgErrors "business-admin/pkg/errors"
)

var errFileRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request", "file is required")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, upload.ErrFileTooLarge):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "File too large")
	case errors.Is(err, upload.ErrExtensionNotAllowed):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "File type not allowed")
	case errors.Is(err, upload.ErrEmptyFile):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "File is empty")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
