package collection

import "errors"

var (
	ErrNotFound = errors.New("item not found")
	ErrDeclined = errors.New("action declined by user")
	ErrClosed   = errors.New("collection closed")
	ErrPending  = errors.New("item is still being created")
)
