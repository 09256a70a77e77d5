package http

import (
	"errors"
	"net/http"
	"strings"

	"business-admin/internal/room"
	pkgErrors "business-admin/pkg/errors"
	"business-admin/pkg/scope"
)

var validationErrors = []error{
	room.ErrNameRequired,
	room.ErrInvalidBasePrice,
	room.ErrInvalidCapacity,
	room.ErrRoomTypeRequired,
	room.ErrUnknownRoomType,
	room.ErrNumberRequired,
	room.ErrInvalidStatus,
}

func (h *handler) mapError(err error) error {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return pkgErrors.NewHTTPError(http.StatusBadRequest, "Validation failed", target.Error())
		}
	}
	switch {
	case errors.Is(err, room.ErrRoomTypeNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Room type not found")
	case errors.Is(err, room.ErrRoomNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Room not found")
	case errors.Is(err, room.ErrRoomTypeInUse):
		return pkgErrors.NewHTTPError(http.StatusConflict, "Room type still has rooms")
	case errors.Is(err, room.ErrDuplicateNumber):
		return pkgErrors.NewHTTPError(http.StatusConflict, "Room number already exists")
	case errors.Is(err, room.ErrInvalidOrder):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid order", strings.TrimPrefix(err.Error(), room.ErrInvalidOrder.Error()+": "))
	case errors.Is(err, scope.ErrNoTenant):
		return pkgErrors.ErrMissingTenant
	default:
		return pkgErrors.ErrInternalServerError
	}
}
