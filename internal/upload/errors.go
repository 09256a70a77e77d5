package upload

import "errors"

var (
	ErrEmptyFile           = errors.New("file is empty")
	ErrFileTooLarge        = errors.New("file is too large")
	ErrExtensionNotAllowed = errors.New("file extension is not allowed")
)
