package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-admin/pkg/ordering"
	"business-admin/pkg/postgres"
)

func TestWithTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE categories`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = postgres.WithTx(context.Background(), db, func(tx *sql.Tx) error {
			_, execErr := tx.Exec(`UPDATE categories SET sort_order = 0`)
			return execErr
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err = postgres.WithTx(context.Background(), db, func(tx *sql.Tx) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateSortOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`UPDATE coupons SET sort_order = \$1`)
	prep.ExpectExec().WithArgs(0, "c", "biz-1").WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(1, "a", "biz-1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = postgres.WithTx(context.Background(), db, func(tx *sql.Tx) error {
		return postgres.UpdateSortOrders(context.Background(), tx, "coupons", "biz-1", []ordering.Position{
			{ID: "c", SortOrder: 0}, {ID: "a", SortOrder: 1},
		})
	})

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConstraintViolations(t *testing.T) {
	assert.True(t, postgres.IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, postgres.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.True(t, postgres.IsForeignKeyViolation(fmt.Errorf("wrapped: %w", &pq.Error{Code: "23503"})))
	assert.False(t, postgres.IsForeignKeyViolation(errors.New("plain")))
}
