package http

import (
	"github.com/gin-gonic/gin"

	"business-admin/internal/room"
	"business-admin/pkg/response"
)

// CreateRoomType godoc
// @Summary     Create a room type
// @Tags        Room Types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string            true "Business ID"
// @Param       body          body   createRoomTypeReq true "Room type"
// @Success     201 {object} response.Resp{data=roomTypeResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/room-types [POST]
func (h *handler) CreateRoomType(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindJSON[createRoomTypeReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.CreateRoomType(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "room.http.CreateRoomType: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newRoomTypeResp(out))
}

// ListRoomTypes godoc
// @Summary     List room types
// @Tags        Room Types
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true  "Business ID"
// @Param       id            query  string false "Only this id"
// @Param       active        query  bool   false "Filter by active flag"
// @Success     200 {object} response.Resp{data=[]roomTypeResp}
// @Router      /api/v1/room-types [GET]
func (h *handler) ListRoomTypes(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindQuery[listRoomTypesReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ListRoomTypes(ctx, room.ListRoomTypesInput{ID: req.ID, Active: req.Active})
	if err != nil {
		h.l.Errorf(ctx, "room.http.ListRoomTypes: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	items := make([]roomTypeResp, len(out.RoomTypes))
	for i, rt := range out.RoomTypes {
		items[i] = newRoomTypeResp(rt)
	}
	response.OK(c, items)
}

// DetailRoomType godoc
// @Summary     Get a room type
// @Tags        Room Types
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true "Business ID"
// @Param       id            path   string true "Room type ID"
// @Success     200 {object} response.Resp{data=roomTypeResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/room-types/{id} [GET]
func (h *handler) DetailRoomType(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.DetailRoomType(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "room.http.DetailRoomType: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRoomTypeResp(out))
}

// UpdateRoomType godoc
// @Summary     Update a room type
// @Tags        Room Types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string            true "Business ID"
// @Param       id            path   string            true "Room type ID"
// @Param       body          body   updateRoomTypeReq true "Fields to change"
// @Success     200 {object} response.Resp{data=roomTypeResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/room-types/{id} [PUT]
func (h *handler) UpdateRoomType(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateRoomTypeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.UpdateRoomType(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "room.http.UpdateRoomType: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRoomTypeResp(out))
}

// DeleteRoomType godoc
// @Summary     Delete a room type
// @Description Rejected with 409 while rooms still use the type.
// @Tags        Room Types
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true "Business ID"
// @Param       id            path   string true "Room type ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/room-types/{id} [DELETE]
func (h *handler) DeleteRoomType(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteRoomType(ctx, id); err != nil {
		h.l.Errorf(ctx, "room.http.DeleteRoomType: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ReorderRoomTypes godoc
// @Summary     Reorder room types
// @Tags        Room Types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string     true  "Business ID"
// @Param       active        query  bool       false "Order only the room types with this active flag"
// @Param       body          body   reorderReq true  "New order"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/room-types/reorder [PUT]
func (h *handler) ReorderRoomTypes(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReorderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	in := room.ReorderRoomTypesInput{Active: req.Scope.Active, Positions: req.Items}
	if err := h.uc.ReorderRoomTypes(ctx, in); err != nil {
		h.l.Errorf(ctx, "room.http.ReorderRoomTypes: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
