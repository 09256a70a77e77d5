package repository

type CreateListingOptions struct {
	ID          string
	BusinessID  string
	Title       string
	Description string
	Price       float64
	ListingType string
	City        string
	Address     string
	ImageURL    string
	IsActive    bool
}

type GetOneListingOptions struct {
	BusinessID string
	ID         string
}

// ListListingsOptions filters by exact match. City is compared case-insensitively.
type ListListingsOptions struct {
	BusinessID  string
	ID          string
	ListingType string
	City        string
	Active      *bool
}

type UpdateListingOptions struct {
	BusinessID  string
	ID          string
	Title       string
	Description string
	Price       float64
	ListingType string
	City        string
	Address     string
	ImageURL    string
	SortOrder   int
	IsActive    bool
}
