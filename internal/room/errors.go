package room

import "errors"

var (
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrNameRequired     = errors.New("room type name is required")
	ErrInvalidBasePrice = errors.New("base price must be positive")
	ErrInvalidCapacity  = errors.New("capacity must be positive")
	ErrRoomTypeInUse    = errors.New("room type still has rooms")
	ErrRoomTypeRequired = errors.New("room type is required")
	ErrUnknownRoomType  = errors.New("room type does not exist")
	ErrNumberRequired   = errors.New("room number is required")
	ErrDuplicateNumber  = errors.New("room number already exists")
	ErrInvalidStatus    = errors.New("status must be available, occupied or maintenance")
	ErrInvalidOrder     = errors.New("invalid order")
)
