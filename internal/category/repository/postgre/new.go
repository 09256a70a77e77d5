package postgre

import (
	"database/sql"
	"fmt"

	"business-admin/internal/category/repository"
	"business-admin/pkg/log"
)

const table = "categories"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for the category domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("category/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("category/repository/postgre.%s", method)
}
