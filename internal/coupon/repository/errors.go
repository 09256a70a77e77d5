package repository

import "errors"

var (
	ErrFailedToInsert  = errors.New("failed to insert record")
	ErrFailedToGet     = errors.New("failed to get record")
	ErrFailedToList    = errors.New("failed to list records")
	ErrFailedToUpdate  = errors.New("failed to update record")
	ErrFailedToDelete  = errors.New("failed to delete record")
	ErrFailedToReorder = errors.New("failed to reorder records")
	// ErrDuplicate is returned when the unique (business_id, code) index rejects a write.
	ErrDuplicate = errors.New("duplicate record")
)
