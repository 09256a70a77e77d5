package postgre

import (
	"database/sql"
	"fmt"

	"business-admin/internal/room/repository"
	"business-admin/pkg/log"
)

const (
	roomTypesTable = "room_types"
	roomsTable     = "rooms"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for room types and rooms.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("room/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("room/repository/postgre.%s", method)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanIDs(rows *sql.Rows) ([]string, error) {
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
