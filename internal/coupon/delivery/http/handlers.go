package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"business-admin/pkg/response"
	"business-admin/pkg/spreadsheet"
)

// Create godoc
// @Summary     Create a coupon
// @Description Appends a coupon at the end of the list. The code is upper-cased and must be unique within the business.
// @Tags        Coupons
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string    true "Business ID"
// @Param       body          body   createReq true "Coupon"
// @Success     201 {object} response.Resp{data=couponResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/coupons [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "coupon.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newCouponResp(out))
}

// List godoc
// @Summary     List coupons
// @Description Returns the business's coupons ordered by sort_order.
// @Tags        Coupons
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true  "Business ID"
// @Param       id            query  string false "Only this id"
// @Param       active        query  bool   false "Filter by active flag"
// @Success     200 {object} response.Resp{data=[]couponResp}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/coupons [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "coupon.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a coupon
// @Tags        Coupons
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true "Business ID"
// @Param       id            path   string true "Coupon ID"
// @Success     200 {object} response.Resp{data=couponResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/coupons/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "coupon.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCouponResp(out))
}

// Update godoc
// @Summary     Update a coupon
// @Description Partial update. Absent fields keep their value.
// @Tags        Coupons
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string    true "Business ID"
// @Param       id            path   string    true "Coupon ID"
// @Param       body          body   updateReq true "Fields to change"
// @Success     200 {object} response.Resp{data=couponResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/coupons/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "coupon.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCouponResp(out))
}

// Delete godoc
// @Summary     Delete a coupon
// @Tags        Coupons
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true "Business ID"
// @Param       id            path   string true "Coupon ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/coupons/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "coupon.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Reorder godoc
// @Summary     Reorder coupons
// @Description Replaces the whole order in one transaction. Items must list every coupon once with positions 0..n-1.
// @Tags        Coupons
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string     true "Business ID"
// @Param       body          body   reorderReq true "New order"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/coupons/reorder [PUT]
func (h *handler) Reorder(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReorderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Reorder(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "coupon.http.Reorder: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Export godoc
// @Summary     Export coupons
// @Description Downloads every coupon of the business as an xlsx workbook, in display order.
// @Tags        Coupons
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Param       X-Business-ID header string true "Business ID"
// @Success     200 {file} binary
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/coupons/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Export(ctx)
	if err != nil {
		h.l.Errorf(ctx, "coupon.http.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, out.FileName))
	c.Data(http.StatusOK, spreadsheet.ContentType, out.Content)
}
