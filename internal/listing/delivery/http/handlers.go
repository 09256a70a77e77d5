package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"business-admin/pkg/response"
	"business-admin/pkg/spreadsheet"
)

// Create godoc
// @Summary     Create a listing
// @Description Appends a listing at the end of the business's list.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string    true "Business ID"
// @Param       body          body   createReq true "Listing"
// @Success     201 {object} response.Resp{data=listingResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "listing.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newListingResp(out))
}

// List godoc
// @Summary     List listings
// @Description Returns the business's listings ordered by sort_order.
// @Tags        Listings
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true  "Business ID"
// @Param       id            query  string false "Only this id"
// @Param       listing_type  query  string false "sale or rent"
// @Param       city          query  string false "City, case-insensitive"
// @Param       active        query  bool   false "Filter by active flag"
// @Success     200 {object} response.Resp{data=[]listingResp}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "listing.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a listing
// @Tags        Listings
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true "Business ID"
// @Param       id            path   string true "Listing ID"
// @Success     200 {object} response.Resp{data=listingResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/listings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "listing.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListingResp(out))
}

// Update godoc
// @Summary     Update a listing
// @Description Partial update. Absent fields keep their value.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string    true "Business ID"
// @Param       id            path   string    true "Listing ID"
// @Param       body          body   updateReq true "Fields to change"
// @Success     200 {object} response.Resp{data=listingResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/listings/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "listing.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListingResp(out))
}

// Delete godoc
// @Summary     Delete a listing
// @Tags        Listings
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true "Business ID"
// @Param       id            path   string true "Listing ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/listings/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "listing.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Reorder godoc
// @Summary     Reorder listings
// @Description Replaces the whole order in one transaction. Items must list every listing once with positions 0..n-1.
// @Tags        Listings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string     true "Business ID"
// @Param       body          body   reorderReq true "New order"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/listings/reorder [PUT]
func (h *handler) Reorder(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReorderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Reorder(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "listing.http.Reorder: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Export godoc
// @Summary     Export listings
// @Description Downloads the listings matching the filters as an xlsx workbook, in display order.
// @Tags        Listings
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Param       X-Business-ID header string true  "Business ID"
// @Param       listing_type  query  string false "sale or rent"
// @Param       city          query  string false "City, case-insensitive"
// @Param       active        query  bool   false "Filter by active flag"
// @Success     200 {file} binary
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/listings/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Export(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "listing.http.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, out.FileName))
	c.Data(http.StatusOK, spreadsheet.ContentType, out.Content)
}
