package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"business-admin/pkg/ordering"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a unique constraint failure.
func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// IsForeignKeyViolation reports whether err is a foreign key constraint failure.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

// UpdateSortOrders writes every position of one tenant's collection inside tx.
// table is always a constant from the calling repository.
func UpdateSortOrders(ctx context.Context, tx *sql.Tx, table, tenantID string, positions []ordering.Position) error {
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`UPDATE %s SET sort_order = $1, updated_at = NOW() WHERE id = $2 AND business_id = $3`, table))
	if err != nil {
		return fmt.Errorf("prepare reorder: %w", err)
	}
	defer stmt.Close()

	for _, p := range positions {
		res, err := stmt.ExecContext(ctx, p.SortOrder, p.ID, tenantID)
		if err != nil {
			return fmt.Errorf("reorder %s: %w", p.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("reorder %s: %w", p.ID, sql.ErrNoRows)
		}
	}
	return nil
}
