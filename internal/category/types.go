package category

import (
	"time"

	"business-admin/pkg/ordering"
)

// Category groups a business's catalogue entries.
type Category struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// --- UseCase Inputs ---

type CreateInput struct {
	Name        string
	Description string
	ImageURL    string
	IsActive    *bool
}

type ListInput struct {
	ID     string
	Active *bool
}

// UpdateInput is a partial update; nil fields keep their stored value.
type UpdateInput struct {
	ID          string
	Name        *string
	Description *string
	ImageURL    *string
	SortOrder   *int
	IsActive    *bool
}

// ReorderInput scopes the ordering to the items matching Active, or to all items when nil.
type ReorderInput struct {
	Active    *bool
	Positions []ordering.Position
}

// --- UseCase Outputs ---

type ListOutput struct {
	Categories []Category
}
