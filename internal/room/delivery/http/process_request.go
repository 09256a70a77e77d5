package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "business-admin/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(400, "id is required")

// bindJSON binds the body into req and reports gin validation failures as a 400.
func bindJSON[T any](c *gin.Context) (T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	return req, nil
}

func bindQuery[T any](c *gin.Context) (T, error) {
	var req T
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	return req, nil
}

func (h *handler) processID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errIDRequired
	}
	return id, nil
}

func (h *handler) processUpdateRoomTypeReq(c *gin.Context) (updateRoomTypeReq, error) {
	req, err := bindJSON[updateRoomTypeReq](c)
	if err != nil {
		return req, err
	}
	req.ID, err = h.processID(c)
	return req, err
}

func (h *handler) processUpdateRoomReq(c *gin.Context) (updateRoomReq, error) {
	req, err := bindJSON[updateRoomReq](c)
	if err != nil {
		return req, err
	}
	req.ID, err = h.processID(c)
	return req, err
}

func (h *handler) processReorderReq(c *gin.Context) (reorderReq, error) {
	scope, err := bindQuery[reorderScope](c)
	if err != nil {
		return reorderReq{}, err
	}
	req, err := bindJSON[reorderReq](c)
	if err != nil {
		return req, err
	}
	req.Scope = scope
	return req, nil
}
