package http

import (
	"time"

	"business-admin/internal/room"
	"business-admin/pkg/ordering"
)

// --- Room type DTOs ---

type createRoomTypeReq struct {
	Name        string  `json:"name"        binding:"required,max=255"`
	Description string  `json:"description" binding:"max=2000"`
	BasePrice   float64 `json:"base_price"  binding:"gt=0"`
	Capacity    int     `json:"capacity"    binding:"gt=0"`
	ImageURL    string  `json:"image_url"   binding:"max=1024"`
	IsActive    *bool   `json:"is_active"`
}

func (r createRoomTypeReq) toInput() room.CreateRoomTypeInput {
	return room.CreateRoomTypeInput{
		Name:        r.Name,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		Capacity:    r.Capacity,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
	}
}

type listRoomTypesReq struct {
	ID     string `form:"id"`
	Active *bool  `form:"active"`
}

type updateRoomTypeReq struct {
	ID          string   `json:"-"`
	Name        *string  `json:"name"        binding:"omitempty,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	BasePrice   *float64 `json:"base_price"  binding:"omitempty,gt=0"`
	Capacity    *int     `json:"capacity"    binding:"omitempty,gt=0"`
	ImageURL    *string  `json:"image_url"   binding:"omitempty,max=1024"`
	SortOrder   *int     `json:"sort_order"  binding:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
}

func (r updateRoomTypeReq) toInput() room.UpdateRoomTypeInput {
	return room.UpdateRoomTypeInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		Capacity:    r.Capacity,
		ImageURL:    r.ImageURL,
		SortOrder:   r.SortOrder,
		IsActive:    r.IsActive,
	}
}

type roomTypeResp struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BasePrice   float64   `json:"base_price"`
	Capacity    int       `json:"capacity"`
	ImageURL    string    `json:"image_url"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newRoomTypeResp(rt room.RoomType) roomTypeResp {
	return roomTypeResp{
		ID:          rt.ID,
		BusinessID:  rt.BusinessID,
		Name:        rt.Name,
		Description: rt.Description,
		BasePrice:   rt.BasePrice,
		Capacity:    rt.Capacity,
		ImageURL:    rt.ImageURL,
		SortOrder:   rt.SortOrder,
		IsActive:    rt.IsActive,
		CreatedAt:   rt.CreatedAt,
		UpdatedAt:   rt.UpdatedAt,
	}
}

// --- Room DTOs ---

type createRoomReq struct {
	RoomTypeID string `json:"room_type_id" binding:"required"`
	Number     string `json:"number"       binding:"required,max=32"`
	Floor      int    `json:"floor"`
	Status     string `json:"status"       binding:"omitempty,oneof=available occupied maintenance"`
	IsActive   *bool  `json:"is_active"`
}

func (r createRoomReq) toInput() room.CreateRoomInput {
	return room.CreateRoomInput{
		RoomTypeID: r.RoomTypeID,
		Number:     r.Number,
		Floor:      r.Floor,
		Status:     r.Status,
		IsActive:   r.IsActive,
	}
}

type listRoomsReq struct {
	ID         string `form:"id"`
	RoomTypeID string `form:"room_type_id"`
	Active     *bool  `form:"active"`
}

type updateRoomReq struct {
	ID         string  `json:"-"`
	RoomTypeID *string `json:"room_type_id"`
	Number     *string `json:"number"     binding:"omitempty,max=32"`
	Floor      *int    `json:"floor"`
	Status     *string `json:"status"     binding:"omitempty,oneof=available occupied maintenance"`
	SortOrder  *int    `json:"sort_order" binding:"omitempty,gte=0"`
	IsActive   *bool   `json:"is_active"`
}

func (r updateRoomReq) toInput() room.UpdateRoomInput {
	return room.UpdateRoomInput{
		ID:         r.ID,
		RoomTypeID: r.RoomTypeID,
		Number:     r.Number,
		Floor:      r.Floor,
		Status:     r.Status,
		SortOrder:  r.SortOrder,
		IsActive:   r.IsActive,
	}
}

type roomResp struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	RoomTypeID string    `json:"room_type_id"`
	Number     string    `json:"number"`
	Floor      int       `json:"floor"`
	Status     string    `json:"status"`
	SortOrder  int       `json:"sort_order"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newRoomResp(rm room.Room) roomResp {
	return roomResp{
		ID:         rm.ID,
		BusinessID: rm.BusinessID,
		RoomTypeID: rm.RoomTypeID,
		Number:     rm.Number,
		Floor:      rm.Floor,
		Status:     rm.Status,
		SortOrder:  rm.SortOrder,
		IsActive:   rm.IsActive,
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

// --- Reorder ---

// reorderScope is read from the query string. It narrows the set the items must cover.
type reorderScope struct {
	RoomTypeID string `form:"room_type_id"`
	Active     *bool  `form:"active"`
}

type reorderReq struct {
	Scope reorderScope        `json:"-"`
	Items []ordering.Position `json:"items" binding:"required,min=1"`
}
