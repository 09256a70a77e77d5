package http

import (
	"github.com/gin-gonic/gin"

	"business-admin/internal/room"
	"business-admin/pkg/response"
)

// CreateRoom godoc
// @Summary     Create a room
// @Description The room type must belong to the same business. Status defaults to available.
// @Tags        Rooms
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string        true "Business ID"
// @Param       body          body   createRoomReq true "Room"
// @Success     201 {object} response.Resp{data=roomResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/rooms [POST]
func (h *handler) CreateRoom(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindJSON[createRoomReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.CreateRoom(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "room.http.CreateRoom: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newRoomResp(out))
}

// ListRooms godoc
// @Summary     List rooms
// @Tags        Rooms
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true  "Business ID"
// @Param       id            query  string false "Only this id"
// @Param       room_type_id  query  string false "Only rooms of this type"
// @Param       active        query  bool   false "Filter by active flag"
// @Success     200 {object} response.Resp{data=[]roomResp}
// @Router      /api/v1/rooms [GET]
func (h *handler) ListRooms(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindQuery[listRoomsReq](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ListRooms(ctx, room.ListRoomsInput{ID: req.ID, RoomTypeID: req.RoomTypeID, Active: req.Active})
	if err != nil {
		h.l.Errorf(ctx, "room.http.ListRooms: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	items := make([]roomResp, len(out.Rooms))
	for i, rm := range out.Rooms {
		items[i] = newRoomResp(rm)
	}
	response.OK(c, items)
}

// DetailRoom godoc
// @Summary     Get a room
// @Tags        Rooms
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true "Business ID"
// @Param       id            path   string true "Room ID"
// @Success     200 {object} response.Resp{data=roomResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/rooms/{id} [GET]
func (h *handler) DetailRoom(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.DetailRoom(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "room.http.DetailRoom: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRoomResp(out))
}

// UpdateRoom godoc
// @Summary     Update a room
// @Tags        Rooms
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string        true "Business ID"
// @Param       id            path   string        true "Room ID"
// @Param       body          body   updateRoomReq true "Fields to change"
// @Success     200 {object} response.Resp{data=roomResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict"
// @Router      /api/v1/rooms/{id} [PUT]
func (h *handler) UpdateRoom(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateRoomReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.UpdateRoom(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "room.http.UpdateRoom: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRoomResp(out))
}

// DeleteRoom godoc
// @Summary     Delete a room
// @Tags        Rooms
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string true "Business ID"
// @Param       id            path   string true "Room ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/rooms/{id} [DELETE]
func (h *handler) DeleteRoom(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteRoom(ctx, id); err != nil {
		h.l.Errorf(ctx, "room.http.DeleteRoom: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ReorderRooms godoc
// @Summary     Reorder rooms
// @Description Items must cover exactly the rooms matching room_type_id and active.
// @Tags        Rooms
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header string     true  "Business ID"
// @Param       room_type_id  query  string     false "Order only the rooms of this type"
// @Param       active        query  bool       false "Order only the rooms with this active flag"
// @Param       body          body   reorderReq true  "New order"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/rooms/reorder [PUT]
func (h *handler) ReorderRooms(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReorderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	in := room.ReorderRoomsInput{RoomTypeID: req.Scope.RoomTypeID, Active: req.Scope.Active, Positions: req.Items}
	if err := h.uc.ReorderRooms(ctx, in); err != nil {
		h.l.Errorf(ctx, "room.http.ReorderRooms: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
