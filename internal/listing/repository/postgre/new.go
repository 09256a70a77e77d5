package postgre

import (
	"database/sql"
	"fmt"

	"business-admin/internal/listing/repository"
	"business-admin/pkg/log"
)

const table = "listings"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("listing/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("listing/repository/postgre.%s", method)
}
