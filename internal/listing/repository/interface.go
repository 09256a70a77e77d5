package repository

import (
	"context"

	"business-admin/internal/listing"
	"business-admin/pkg/ordering"
)

type Repository interface {
	CreateListing(ctx context.Context, opt CreateListingOptions) (listing.Listing, error)
	// GetOneListing returns a zero Listing when nothing matches.
	GetOneListing(ctx context.Context, opt GetOneListingOptions) (listing.Listing, error)
	ListListings(ctx context.Context, opt ListListingsOptions) ([]listing.Listing, error)
	ListListingIDs(ctx context.Context, opt ListListingsOptions) ([]string, error)
	UpdateListing(ctx context.Context, opt UpdateListingOptions) (listing.Listing, error)
	DeleteListing(ctx context.Context, businessID, id string) error
	ReorderListings(ctx context.Context, businessID string, positions []ordering.Position) error
}
