package repository

import (
	"context"
	"io"
)

// Storage keeps uploaded files by name.
type Storage interface {
	// Save writes at most limit bytes of r under name. It returns ErrTooLarge, leaving nothing
	// behind, when r holds more.
	Save(ctx context.Context, name string, r io.Reader, limit int64) (int64, error)
	Delete(ctx context.Context, name string) error
}
