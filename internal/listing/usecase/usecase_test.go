package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"business-admin/internal/listing"
	repo "business-admin/internal/listing/repository"
	"business-admin/pkg/log"
	"business-admin/pkg/ordering"
	"business-admin/pkg/scope"
)

type fakeRepo struct {
	rows      []listing.Listing
	lastList  repo.ListListingsOptions
	reordered []ordering.Position
}

func (f *fakeRepo) CreateListing(ctx context.Context, opt repo.CreateListingOptions) (listing.Listing, error) {
	l := listing.Listing{ID: opt.ID, BusinessID: opt.BusinessID, Title: opt.Title, Price: opt.Price,
		ListingType: opt.ListingType, City: opt.City, IsActive: opt.IsActive, SortOrder: len(f.rows)}
	f.rows = append(f.rows, l)
	return l, nil
}

func (f *fakeRepo) GetOneListing(ctx context.Context, opt repo.GetOneListingOptions) (listing.Listing, error) {
	for _, l := range f.rows {
		if l.BusinessID == opt.BusinessID && l.ID == opt.ID {
			return l, nil
		}
	}
	return listing.Listing{}, nil
}

func (f *fakeRepo) ListListings(ctx context.Context, opt repo.ListListingsOptions) ([]listing.Listing, error) {
	f.lastList = opt
	out := []listing.Listing{}
	for _, l := range f.rows {
		if l.BusinessID == opt.BusinessID && (opt.ListingType == "" || l.ListingType == opt.ListingType) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListListingIDs(ctx context.Context, opt repo.ListListingsOptions) ([]string, error) {
	var ids []string
	for _, l := range f.rows {
		if l.BusinessID == opt.BusinessID && (opt.Active == nil || l.IsActive == *opt.Active) {
			ids = append(ids, l.ID)
		}
	}
	return ids, nil
}

func (f *fakeRepo) UpdateListing(ctx context.Context, opt repo.UpdateListingOptions) (listing.Listing, error) {
	for i, l := range f.rows {
		if l.ID == opt.ID {
			l.Title, l.Price, l.ListingType, l.City, l.IsActive = opt.Title, opt.Price, opt.ListingType, opt.City, opt.IsActive
			f.rows[i] = l
			return l, nil
		}
	}
	return listing.Listing{}, nil
}

func (f *fakeRepo) DeleteListing(ctx context.Context, businessID, id string) error { return nil }

func (f *fakeRepo) ReorderListings(ctx context.Context, businessID string, positions []ordering.Position) error {
	f.reordered = positions
	return nil
}

func tenantCtx(id string) context.Context {
	return scope.SetToContext(context.Background(), scope.Scope{TenantID: id})
}

func newTestUseCase(r repo.Repository) *implUseCase {
	uc := New(r, nil, log.NewNop())
	uc.newID = func() string { return "new" }
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return uc
}

func TestCreateValidation(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})
	ctx := tenantCtx("biz-1")

	_, err := uc.Create(ctx, listing.CreateInput{Title: " ", Price: 1, ListingType: listing.TypeSale})
	assert.ErrorIs(t, err, listing.ErrTitleRequired)

	_, err = uc.Create(ctx, listing.CreateInput{Title: "Flat", ListingType: listing.TypeSale})
	assert.ErrorIs(t, err, listing.ErrInvalidPrice)

	_, err = uc.Create(ctx, listing.CreateInput{Title: "Flat", Price: 1, ListingType: "lease"})
	assert.ErrorIs(t, err, listing.ErrInvalidListingType)

	l, err := uc.Create(ctx, listing.CreateInput{Title: "Flat", Price: 900, ListingType: listing.TypeRent, City: " Hanoi "})
	require.NoError(t, err)
	assert.Equal(t, "Hanoi", l.City)
	assert.True(t, l.IsActive)
}

func TestUpdateRejectsInvalidMerge(t *testing.T) {
	r := &fakeRepo{rows: []listing.Listing{{ID: "a", BusinessID: "biz-1", Title: "Flat", Price: 900, ListingType: listing.TypeRent}}}
	uc := newTestUseCase(r)

	zero := 0.0
	_, err := uc.Update(tenantCtx("biz-1"), listing.UpdateInput{ID: "a", Price: &zero})
	assert.ErrorIs(t, err, listing.ErrInvalidPrice)

	sale := listing.TypeSale
	l, err := uc.Update(tenantCtx("biz-1"), listing.UpdateInput{ID: "a", ListingType: &sale})
	require.NoError(t, err)
	assert.Equal(t, listing.TypeSale, l.ListingType)
	assert.Equal(t, "Flat", l.Title)

	_, err = uc.Update(tenantCtx("biz-2"), listing.UpdateInput{ID: "a", ListingType: &sale})
	assert.ErrorIs(t, err, listing.ErrListingNotFound)
}

func TestReorderMustBeComplete(t *testing.T) {
	r := &fakeRepo{rows: []listing.Listing{{ID: "a", BusinessID: "biz-1"}, {ID: "b", BusinessID: "biz-1"}}}
	uc := newTestUseCase(r)

	err := uc.Reorder(tenantCtx("biz-1"), listing.ReorderInput{Positions: []ordering.Position{{ID: "a", SortOrder: 0}, {ID: "a", SortOrder: 1}}})
	assert.ErrorIs(t, err, listing.ErrInvalidOrder)
	assert.Nil(t, r.reordered)
}

func TestExportFiltersAndRenders(t *testing.T) {
	r := &fakeRepo{rows: []listing.Listing{
		{ID: "a", BusinessID: "biz-1", Title: "Flat", Price: 900, ListingType: listing.TypeRent, City: "Hanoi"},
		{ID: "b", BusinessID: "biz-1", Title: "House", Price: 250000, ListingType: listing.TypeSale, SortOrder: 1},
	}}
	uc := newTestUseCase(r)

	out, err := uc.Export(tenantCtx("biz-1"), listing.ListInput{ListingType: listing.TypeSale})
	require.NoError(t, err)
	assert.Equal(t, "listings-20260301.xlsx", out.FileName)
	assert.Equal(t, listing.TypeSale, r.lastList.ListingType)

	f, err := excelize.OpenReader(bytes.NewReader(out.Content))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Listings")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "House", rows[1][1])
	assert.Equal(t, "2", rows[1][0])
}
