package room

import (
	"time"

	"business-admin/pkg/ordering"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

// RoomType groups rooms sharing a price and capacity.
type RoomType struct {
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

// Room is a physical room. Number is unique within a business.
type Room struct {
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

// --- UseCase Inputs ---

type CreateRoomTypeInput struct {
	Name        string
	Description string
	BasePrice   float64
	Capacity    int
	ImageURL    string
	IsActive    *bool
}

type ListRoomTypesInput struct {
	ID     string
	Active *bool
}

type UpdateRoomTypeInput struct {
	ID          string
	Name        *string
	Description *string
	BasePrice   *float64
	Capacity    *int
	ImageURL    *string
	SortOrder   *int
	IsActive    *bool
}

type ReorderRoomTypesInput struct {
	Active    *bool
	Positions []ordering.Position
}

type CreateRoomInput struct {
	RoomTypeID string
	Number     string
	Floor      int
	Status     string
	IsActive   *bool
}

type ListRoomsInput struct {
	ID         string
	RoomTypeID string
	Active     *bool
}

type UpdateRoomInput struct {
	ID         string
	RoomTypeID *string
	Number     *string
	Floor      *int
	Status     *string
	SortOrder  *int
	IsActive   *bool
}

// ReorderRoomsInput orders the rooms matching RoomTypeID and Active. Empty filters mean all rooms.
type ReorderRoomsInput struct {
	RoomTypeID string
	Active     *bool
	Positions  []ordering.Position
}

// --- UseCase Outputs ---

type ListRoomTypesOutput struct {
	RoomTypes []RoomType
}

type ListRoomsOutput struct {
	Rooms []Room
}
