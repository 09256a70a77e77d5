package listing

import (
	"time"

	"business-admin/pkg/ordering"
)

const (
	TypeSale = "sale"
	TypeRent = "rent"
)

// Listing is a property offered for sale or rent by an agency.
type Listing struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"business_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ListingType string    `json:"listing_type"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	ImageURL    string    `json:"image_url"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateInput struct {
	Title       string
	Description string
	Price       float64
	ListingType string
	City        string
	Address     string
	ImageURL    string
	IsActive    *bool
}

type ListInput struct {
	ID          string
	ListingType string
	City        string
	Active      *bool
}

type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Price       *float64
	ListingType *string
	City        *string
	Address     *string
	ImageURL    *string
	SortOrder   *int
	IsActive    *bool
}

type ReorderInput struct {
	Active    *bool
	Positions []ordering.Position
}

type ListOutput struct {
	Listings []Listing
}

type ExportOutput struct {
	FileName string
	Content  []byte
}
