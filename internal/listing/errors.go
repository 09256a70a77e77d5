package listing

import "errors"

var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrTitleRequired      = errors.New("listing title is required")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrInvalidListingType = errors.New("listing type must be sale or rent")
	ErrInvalidOrder       = errors.New("invalid listing order")
)
