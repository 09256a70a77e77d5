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

func scanRoomType(s scanner) (room.RoomType, error) {
	var rt room.RoomType
	err := s.Scan(&rt.ID, &rt.BusinessID, &rt.Name, &rt.Description, &rt.BasePrice, &rt.Capacity, &rt.ImageURL,
		&rt.SortOrder, &rt.IsActive, &rt.CreatedAt, &rt.UpdatedAt)
	return rt, err
}

func (r *implRepository) CreateRoomType(ctx context.Context, opt repo.CreateRoomTypeOptions) (room.RoomType, error) {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (id, business_id, name, description, base_price, capacity, image_url, sort_order, is_active,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
			(SELECT COALESCE(MAX(sort_order), -1) + 1 FROM %[1]s WHERE business_id = $2),
			$8, NOW(), NOW())
		RETURNING %[2]s`, roomTypesTable, roomTypeColumns)

	rt, err := scanRoomType(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.BusinessID, opt.Name, opt.Description, opt.BasePrice, opt.Capacity, opt.ImageURL, opt.IsActive))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRoomType"), err)
		return room.RoomType{}, repo.ErrFailedToInsert
	}
	return rt, nil
}

func (r *implRepository) GetOneRoomType(ctx context.Context, opt repo.GetOneRoomTypeOptions) (room.RoomType, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE business_id = $1 AND id = $2 LIMIT 1", roomTypeColumns, roomTypesTable)
	rt, err := scanRoomType(r.db.QueryRowContext(ctx, query, opt.BusinessID, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return room.RoomType{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRoomType"), err)
		return room.RoomType{}, repo.ErrFailedToGet
	}
	return rt, nil
}

func (r *implRepository) ListRoomTypes(ctx context.Context, opt repo.ListRoomTypesOptions) ([]room.RoomType, error) {
	query, args := r.buildListRoomTypesQuery(roomTypeColumns, opt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRoomTypes"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := []room.RoomType{}
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRoomTypes"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRoomTypes"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) ListRoomTypeIDs(ctx context.Context, opt repo.ListRoomTypesOptions) ([]string, error) {
	query, args := r.buildListRoomTypesQuery("id", opt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRoomTypeIDs"), err)
		return nil, repo.ErrFailedToList
	}
	ids, err := scanIDs(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRoomTypeIDs"), err)
		return nil, repo.ErrFailedToList
	}
	return ids, nil
}

func (r *implRepository) UpdateRoomType(ctx context.Context, opt repo.UpdateRoomTypeOptions) (room.RoomType, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, base_price = $3, capacity = $4, image_url = $5, sort_order = $6,
			is_active = $7, updated_at = NOW()
		WHERE business_id = $8 AND id = $9
		RETURNING %s`, roomTypesTable, roomTypeColumns)

	rt, err := scanRoomType(r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Description, opt.BasePrice, opt.Capacity, opt.ImageURL, opt.SortOrder, opt.IsActive,
		opt.BusinessID, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return room.RoomType{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRoomType"), err)
		return room.RoomType{}, repo.ErrFailedToUpdate
	}
	return rt, nil
}

// DeleteRoomType relies on the rooms foreign key to refuse deleting a type that is still used.
func (r *implRepository) DeleteRoomType(ctx context.Context, businessID, id string) error {
	_, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE business_id = $1 AND id = $2`, roomTypesTable), businessID, id)
	if postgres.IsForeignKeyViolation(err) {
		return repo.ErrReferenced
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteRoomType"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) ReorderRoomTypes(ctx context.Context, businessID string, positions []ordering.Position) error {
	err := postgres.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		return postgres.UpdateSortOrders(ctx, tx, roomTypesTable, businessID, positions)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReorderRoomTypes"), err)
		return repo.ErrFailedToReorder
	}
	return nil
}
