package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"business-admin/internal/room"
	repo "business-admin/internal/room/repository"
	"business-admin/pkg/ordering"
	"business-admin/pkg/postgres"
)

func scanRoom(s scanner) (room.Room, error) {
	var rm room.Room
	err := s.Scan(&rm.ID, &rm.BusinessID, &rm.RoomTypeID, &rm.Number, &rm.Floor, &rm.Status,
		&rm.SortOrder, &rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt)
	return rm, err
}

// writeErr maps constraint failures of a room insert or update.
func writeErr(err error) error {
	switch {
	case postgres.IsUniqueViolation(err):
		return repo.ErrDuplicate
	case postgres.IsForeignKeyViolation(err):
		return repo.ErrReferenced
	}
	return nil
}

func (r *implRepository) CreateRoom(ctx context.Context, opt repo.CreateRoomOptions) (room.Room, error) {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (id, business_id, room_type_id, number, floor, status, sort_order, is_active,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6,
			(SELECT COALESCE(MAX(sort_order), -1) + 1 FROM %[1]s WHERE business_id = $2),
			$7, NOW(), NOW())
		RETURNING %[2]s`, roomsTable, roomColumns)

	rm, err := scanRoom(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.BusinessID, opt.RoomTypeID, opt.Number, opt.Floor, opt.Status, opt.IsActive))
	if err != nil {
		if mapped := writeErr(err); mapped != nil {
			return room.Room{}, mapped
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRoom"), err)
		return room.Room{}, repo.ErrFailedToInsert
	}
	return rm, nil
}

func (r *implRepository) GetOneRoom(ctx context.Context, opt repo.GetOneRoomOptions) (room.Room, error) {
	query, args := r.buildGetOneRoomQuery(opt)
	rm, err := scanRoom(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return room.Room{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRoom"), err)
		return room.Room{}, repo.ErrFailedToGet
	}
	return rm, nil
}

func (r *implRepository) ListRooms(ctx context.Context, opt repo.ListRoomsOptions) ([]room.Room, error) {
	query, args := r.buildListRoomsQuery(roomColumns, opt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRooms"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := []room.Room{}
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRooms"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRooms"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) ListRoomIDs(ctx context.Context, opt repo.ListRoomsOptions) ([]string, error) {
	query, args := r.buildListRoomsQuery("id", opt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRoomIDs"), err)
		return nil, repo.ErrFailedToList
	}
	ids, err := scanIDs(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRoomIDs"), err)
		return nil, repo.ErrFailedToList
	}
	return ids, nil
}

func (r *implRepository) CountRooms(ctx context.Context, businessID, roomTypeID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE business_id = $1 AND room_type_id = $2`, roomsTable),
		businessID, roomTypeID).Scan(&n)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountRooms"), err)
		return 0, repo.ErrFailedToCount
	}
	return n, nil
}

func (r *implRepository) UpdateRoom(ctx context.Context, opt repo.UpdateRoomOptions) (room.Room, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET room_type_id = $1, number = $2, floor = $3, status = $4, sort_order = $5, is_active = $6,
			updated_at = NOW()
		WHERE business_id = $7 AND id = $8
		RETURNING %s`, roomsTable, roomColumns)

	rm, err := scanRoom(r.db.QueryRowContext(ctx, query,
		opt.RoomTypeID, opt.Number, opt.Floor, opt.Status, opt.SortOrder, opt.IsActive, opt.BusinessID, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return room.Room{}, nil
	}
	if err != nil {
		if mapped := writeErr(err); mapped != nil {
			return room.Room{}, mapped
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRoom"), err)
		return room.Room{}, repo.ErrFailedToUpdate
	}
	return rm, nil
}

func (r *implRepository) DeleteRoom(ctx context.Context, businessID, id string) error {
	_, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE business_id = $1 AND id = $2`, roomsTable), businessID, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteRoom"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) ReorderRooms(ctx context.Context, businessID string, positions []ordering.Position) error {
	err := postgres.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		return postgres.UpdateSortOrders(ctx, tx, roomsTable, businessID, positions)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReorderRooms"), err)
		return repo.ErrFailedToReorder
	}
	return nil
}
