package repository

import "errors"

var (
	ErrFailedToInsert  = errors.New("failed to insert record")
	ErrFailedToGet     = errors.New("failed to get record")
	ErrFailedToList    = errors.New("failed to list records")
	ErrFailedToUpdate  = errors.New("failed to update record")
	ErrFailedToDelete  = errors.New("failed to delete record")
	ErrFailedToReorder = errors.New("failed to reorder records")
	ErrFailedToCount   = errors.New("failed to count records")
	// ErrDuplicate is returned when the unique (business_id, number) index rejects a room write.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenced is returned when a foreign key blocks the write: a missing room type on
	// insert, or rooms still pointing at a room type being deleted.
	ErrReferenced = errors.New("referenced record")
)
