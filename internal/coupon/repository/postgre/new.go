package postgre

import (
	"database/sql"
	"fmt"

	"business-admin/internal/coupon/repository"
	"business-admin/pkg/log"
)

const table = "coupons"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for the coupon domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("coupon/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("coupon/repository/postgre.%s", method)
}
