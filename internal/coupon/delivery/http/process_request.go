package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "business-admin/pkg/errors"
)

var errIDRequired = pkgErrors.NewHTTPError(400, "id is required")

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	req.ID = strings.TrimSpace(c.Param("id"))
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

func (h *handler) processReorderReq(c *gin.Context) (reorderReq, error) {
	var req reorderReq
	var q reorderScope
	if err := c.ShouldBindQuery(&q); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBindingError(err)
	}
	req.Active = q.Active
	return req, nil
}

func (h *handler) processID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errIDRequired
	}
	return id, nil
}
