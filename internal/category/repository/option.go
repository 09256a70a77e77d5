package repository

// CreateCategoryOptions holds the columns of a new row. sort_order is assigned by the store.
type CreateCategoryOptions struct {
	ID          string
	BusinessID  string
	Name        string
	Description string
	ImageURL    string
	IsActive    bool
}

type GetOneCategoryOptions struct {
	BusinessID string
	ID         string
}

type ListCategoriesOptions struct {
	BusinessID string
	ID         string
	Active     *bool
}

// UpdateCategoryOptions carries the full row after the use case merged the patch.
type UpdateCategoryOptions struct {
	BusinessID  string
	ID          string
	Name        string
	Description string
	ImageURL    string
	SortOrder   int
	IsActive    bool
}
