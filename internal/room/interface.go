package room

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	CreateRoomType(ctx context.Context, input CreateRoomTypeInput) (RoomType, error)
	ListRoomTypes(ctx context.Context, input ListRoomTypesInput) (ListRoomTypesOutput, error)
	DetailRoomType(ctx context.Context, id string) (RoomType, error)
	UpdateRoomType(ctx context.Context, input UpdateRoomTypeInput) (RoomType, error)
	// DeleteRoomType fails with ErrRoomTypeInUse while rooms reference it.
	DeleteRoomType(ctx context.Context, id string) error
	ReorderRoomTypes(ctx context.Context, input ReorderRoomTypesInput) error

	CreateRoom(ctx context.Context, input CreateRoomInput) (Room, error)
	ListRooms(ctx context.Context, input ListRoomsInput) (ListRoomsOutput, error)
	DetailRoom(ctx context.Context, id string) (Room, error)
	UpdateRoom(ctx context.Context, input UpdateRoomInput) (Room, error)
	DeleteRoom(ctx context.Context, id string) error
	ReorderRooms(ctx context.Context, input ReorderRoomsInput) error
}
