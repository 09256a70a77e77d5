package repository

import (
	"context"

	"business-admin/internal/room"
	"business-admin/pkg/ordering"
)

// Repository is the storage of both room types and rooms.
type Repository interface {
	RoomTypeRepository
	RoomRepository
}

type RoomTypeRepository interface {
	CreateRoomType(ctx context.Context, opt CreateRoomTypeOptions) (room.RoomType, error)
	// GetOneRoomType returns a zero RoomType when nothing matches.
	GetOneRoomType(ctx context.Context, opt GetOneRoomTypeOptions) (room.RoomType, error)
	ListRoomTypes(ctx context.Context, opt ListRoomTypesOptions) ([]room.RoomType, error)
	ListRoomTypeIDs(ctx context.Context, opt ListRoomTypesOptions) ([]string, error)
	UpdateRoomType(ctx context.Context, opt UpdateRoomTypeOptions) (room.RoomType, error)
	DeleteRoomType(ctx context.Context, businessID, id string) error
	ReorderRoomTypes(ctx context.Context, businessID string, positions []ordering.Position) error
}

type RoomRepository interface {
	CreateRoom(ctx context.Context, opt CreateRoomOptions) (room.Room, error)
	// GetOneRoom returns a zero Room when nothing matches.
	GetOneRoom(ctx context.Context, opt GetOneRoomOptions) (room.Room, error)
	ListRooms(ctx context.Context, opt ListRoomsOptions) ([]room.Room, error)
	ListRoomIDs(ctx context.Context, opt ListRoomsOptions) ([]string, error)
	CountRooms(ctx context.Context, businessID, roomTypeID string) (int, error)
	UpdateRoom(ctx context.Context, opt UpdateRoomOptions) (room.Room, error)
	DeleteRoom(ctx context.Context, businessID, id string) error
	ReorderRooms(ctx context.Context, businessID string, positions []ordering.Position) error
}
