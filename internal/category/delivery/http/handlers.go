package http

import (
	"github.com/gin-gonic/gin"

	"business-admin/pkg/response"
)

// Create godoc
// @Summary     Create a category
// @Description Appends a category at the end of the business's list.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string    true "Business ID"
// @Param       body          body   createReq true "Category"
// @Success     201 {object} response.Resp{data=categoryResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "category.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newCategoryResp(out))
}

// List godoc
// @Summary     List categories
// @Description Returns the business's categories ordered by sort_order.
// @Tags        Categories
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true  "Business ID"
// @Param       id            query  string false "Only this id"
// @Param       active        query  bool   false "Filter by active flag"
// @Success     200 {object} response.Resp{data=[]categoryResp}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/categories [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "category.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a category
// @Tags        Categories
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true "Business ID"
// @Param       id            path   string true "Category ID"
// @Success     200 {object} response.Resp{data=categoryResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/categories/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "category.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCategoryResp(out))
}

// Update godoc
// @Summary     Update a category
// @Description Partial update. Absent fields keep their value.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string    true "Business ID"
// @Param       id            path   string    true "Category ID"
// @Param       body          body   updateReq true "Fields to change"
// @Success     200 {object} response.Resp{data=categoryResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/categories/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "category.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCategoryResp(out))
}

// Delete godoc
// @Summary     Delete a category
// @Tags        Categories
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true "Business ID"
// @Param       id            path   string true "Category ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/categories/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "category.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Reorder godoc
// @Summary     Reorder categories
// @Description Replaces the whole order in one transaction. Items must list every category once with positions 0..n-1.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string     true "Business ID"
// @Param       body          body   reorderReq true "New order"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/categories/reorder [PUT]
func (h *handler) Reorder(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReorderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Reorder(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "category.http.Reorder: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
