package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrNameRequired     = errors.New("category name is required")
	ErrInvalidOrder     = errors.New("invalid category order")
)
