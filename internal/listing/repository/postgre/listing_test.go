package postgre

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "business-admin/internal/listing/repository"
	"business-admin/pkg/log"
)

var columns = []string{"id", "business_id", "title", "description", "price", "listing_type", "city", "address",
	"image_url", "sort_order", "is_active", "created_at", "updated_at"}

func newMock(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &implRepository{db: db, l: log.NewNop()}, mock
}

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}
	active := false

	query, args := r.buildListQuery("id", repo.ListListingsOptions{BusinessID: "biz-1", ListingType: "rent", City: "Hanoi", Active: &active})

	assert.Equal(t, "SELECT id FROM listings WHERE business_id = $1 AND listing_type = $2 AND LOWER(city) = LOWER($3) AND is_active = $4 ORDER BY sort_order ASC, created_at ASC", query)
	assert.Equal(t, []any{"biz-1", "rent", "Hanoi", false}, args)
}

func TestCreateListingAppends(t *testing.T) {
	r, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`(SELECT COALESCE(MAX(sort_order), -1) + 1 FROM listings WHERE business_id = $2)`)).
		WithArgs("l1", "biz-1", "Flat", "", 1200.0, "rent", "Hanoi", "", "", true).
		WillReturnRows(sqlmock.NewRows(columns).AddRow("l1", "biz-1", "Flat", "", 1200.0, "rent", "Hanoi", "", "", 4, true, now, now))

	l, err := r.CreateListing(context.Background(), repo.CreateListingOptions{
		ID: "l1", BusinessID: "biz-1", Title: "Flat", Price: 1200, ListingType: "rent", City: "Hanoi", IsActive: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 4, l.SortOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOneListingMissing(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectQuery(`FROM listings WHERE business_id = \$1 AND id = \$2`).WillReturnRows(sqlmock.NewRows(columns))

	l, err := r.GetOneListing(context.Background(), repo.GetOneListingOptions{BusinessID: "biz-1", ID: "x"})

	require.NoError(t, err)
	assert.Empty(t, l.ID)
}
