package repository

import (
	"context"

	"business-admin/internal/category"
	"business-admin/pkg/ordering"
)

// Repository is the data store of the category domain.
type Repository interface {
	CreateCategory(ctx context.Context, opt CreateCategoryOptions) (category.Category, error)
	// GetOneCategory returns a zero Category when nothing matches.
	GetOneCategory(ctx context.Context, opt GetOneCategoryOptions) (category.Category, error)
	ListCategories(ctx context.Context, opt ListCategoriesOptions) ([]category.Category, error)
	// ListCategoryIDs returns the ids matching opt in display order.
	ListCategoryIDs(ctx context.Context, opt ListCategoriesOptions) ([]string, error)
	UpdateCategory(ctx context.Context, opt UpdateCategoryOptions) (category.Category, error)
	DeleteCategory(ctx context.Context, businessID, id string) error
	ReorderCategories(ctx context.Context, businessID string, positions []ordering.Position) error
}
