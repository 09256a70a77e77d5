package postgre

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "business-admin/internal/category/repository"
	"business-admin/pkg/log"
	"business-admin/pkg/ordering"
)

var columns = []string{"id", "business_id", "name", "description", "image_url", "sort_order", "is_active", "created_at", "updated_at"}

func newMock(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &implRepository{db: db, l: log.NewNop()}, mock
}

func TestCreateCategoryAppends(t *testing.T) {
	r, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(MAX(sort_order), -1) + 1 FROM categories WHERE business_id = $2`)).
		WithArgs("cat-1", "biz-1", "Drinks", "", "", true).
		WillReturnRows(sqlmock.NewRows(columns).AddRow("cat-1", "biz-1", "Drinks", "", "", 3, true, now, now))

	c, err := r.CreateCategory(context.Background(), repo.CreateCategoryOptions{
		ID: "cat-1", BusinessID: "biz-1", Name: "Drinks", IsActive: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, c.SortOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCategoriesFilters(t *testing.T) {
	r, mock := newMock(t)
	now := time.Now()
	active := true

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE business_id = $1 AND id = $2 AND is_active = $3 ORDER BY sort_order ASC, created_at ASC`)).
		WithArgs("biz-1", "cat-1", true).
		WillReturnRows(sqlmock.NewRows(columns).AddRow("cat-1", "biz-1", "Drinks", "", "", 0, true, now, now))

	out, err := r.ListCategories(context.Background(), repo.ListCategoriesOptions{BusinessID: "biz-1", ID: "cat-1", Active: &active})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Drinks", out[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCategoriesEmptyIsNotNil(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectQuery(`SELECT`).WithArgs("biz-1").WillReturnRows(sqlmock.NewRows(columns))

	out, err := r.ListCategories(context.Background(), repo.ListCategoriesOptions{BusinessID: "biz-1"})

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestGetOneCategoryNotFound(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectQuery(`SELECT`).WithArgs("biz-1", "missing").WillReturnRows(sqlmock.NewRows(columns))

	c, err := r.GetOneCategory(context.Background(), repo.GetOneCategoryOptions{BusinessID: "biz-1", ID: "missing"})

	require.NoError(t, err)
	assert.Empty(t, c.ID)
}

func TestUpdateCategoryDriverError(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectQuery(`UPDATE categories`).WillReturnError(errors.New("conn reset"))

	_, err := r.UpdateCategory(context.Background(), repo.UpdateCategoryOptions{BusinessID: "biz-1", ID: "cat-1", Name: "X"})

	assert.ErrorIs(t, err, repo.ErrFailedToUpdate)
}

func TestReorderCategoriesSingleTransaction(t *testing.T) {
	r, mock := newMock(t)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`UPDATE categories SET sort_order`)
	prep.ExpectExec().WithArgs(0, "c", "biz-1").WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(1, "a", "biz-1").WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(2, "b", "biz-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := r.ReorderCategories(context.Background(), "biz-1", ordering.Positions([]string{"c", "a", "b"}))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReorderCategoriesRollsBack(t *testing.T) {
	r, mock := newMock(t)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`UPDATE categories SET sort_order`)
	prep.ExpectExec().WithArgs(0, "c", "biz-1").WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	err := r.ReorderCategories(context.Background(), "biz-1", ordering.Positions([]string{"c"}))

	assert.ErrorIs(t, err, repo.ErrFailedToReorder)
	assert.NoError(t, mock.ExpectationsWereMet())
}
