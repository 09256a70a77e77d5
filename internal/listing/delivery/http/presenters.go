package http

import (
	"time"

	"business-admin/internal/listing"
	"business-admin/pkg/ordering"
)

// --- Request DTOs ---

type createReq struct {
	Title       string  `json:"title"        binding:"required,max=255"`
	Description string  `json:"description"  binding:"max=5000"`
	Price       float64 `json:"price"        binding:"gt=0"`
	ListingType string  `json:"listing_type" binding:"required,oneof=sale rent"`
	City        string  `json:"city"         binding:"max=128"`
	Address     string  `json:"address"      binding:"max=512"`
	ImageURL    string  `json:"image_url"    binding:"max=1024"`
	IsActive    *bool   `json:"is_active"`
}

func (r createReq) toInput() listing.CreateInput {
	return listing.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		ListingType: r.ListingType,
		City:        r.City,
		Address:     r.Address,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
	}
}

type listReq struct {
	ID          string `form:"id"`
	ListingType string `form:"listing_type" binding:"omitempty,oneof=sale rent"`
	City        string `form:"city"`
	Active      *bool  `form:"active"`
}

func (r listReq) toInput() listing.ListInput {
	return listing.ListInput{ID: r.ID, ListingType: r.ListingType, City: r.City, Active: r.Active}
}

type updateReq struct {
	ID          string   `json:"-"`
	Title       *string  `json:"title"        binding:"omitempty,max=255"`
	Description *string  `json:"description"  binding:"omitempty,max=5000"`
	Price       *float64 `json:"price"        binding:"omitempty,gt=0"`
	ListingType *string  `json:"listing_type" binding:"omitempty,oneof=sale rent"`
	City        *string  `json:"city"         binding:"omitempty,max=128"`
	Address     *string  `json:"address"      binding:"omitempty,max=512"`
	ImageURL    *string  `json:"image_url"    binding:"omitempty,max=1024"`
	SortOrder   *int     `json:"sort_order"   binding:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
}

func (r updateReq) toInput() listing.UpdateInput {
	return listing.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		ListingType: r.ListingType,
		City:        r.City,
		Address:     r.Address,
		ImageURL:    r.ImageURL,
		SortOrder:   r.SortOrder,
		IsActive:    r.IsActive,
	}
}

type reorderScope struct {
	Active *bool `form:"active"`
}

type reorderReq struct {
	Active *bool               `json:"-"`
	Items  []ordering.Position `json:"items" binding:"required,min=1"`
}

func (r reorderReq) toInput() listing.ReorderInput {
	return listing.ReorderInput{Active: r.Active, Positions: r.Items}
}

// --- Response DTOs ---

type listingResp struct {
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

func newListingResp(l listing.Listing) listingResp {
	return listingResp{
		ID:          l.ID,
		BusinessID:  l.BusinessID,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		ListingType: l.ListingType,
		City:        l.City,
		Address:     l.Address,
		ImageURL:    l.ImageURL,
		SortOrder:   l.SortOrder,
		IsActive:    l.IsActive,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func (h *handler) newListResp(out listing.ListOutput) []listingResp {
	items := make([]listingResp, len(out.Listings))
	for i, l := range out.Listings {
		items[i] = newListingResp(l)
	}
	return items
}
