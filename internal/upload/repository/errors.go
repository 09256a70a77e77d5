package repository

import "errors"

var (
	ErrTooLarge      = errors.New("content exceeds limit")
	ErrInvalidName   = errors.New("invalid file name")
	ErrFailedToWrite = errors.New("failed to write file")
)
