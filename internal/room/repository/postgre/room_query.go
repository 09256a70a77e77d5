package postgre

import (
	"fmt"
	"strings"

	repo "business-admin/internal/room/repository"
)

const (
	roomTypeColumns = `id, business_id, name, description, base_price, capacity, image_url, sort_order, is_active,
	created_at, updated_at`
	roomColumns = `id, business_id, room_type_id, number, floor, status, sort_order, is_active, created_at, updated_at`
)

// where accumulates "col = $n" conditions with their args.
type where struct {
	conds []string
	args  []any
}

func (w *where) eq(column string, value any) {
	w.args = append(w.args, value)
	w.conds = append(w.conds, fmt.Sprintf("%s = $%d", column, len(w.args)))
}

func (w *where) String() string {
	return strings.Join(w.conds, " AND ")
}

func (r *implRepository) buildListRoomTypesQuery(columns string, opt repo.ListRoomTypesOptions) (string, []any) {
	w := &where{}
	w.eq("business_id", opt.BusinessID)
	if opt.ID != "" {
		w.eq("id", opt.ID)
	}
	if opt.Active != nil {
		w.eq("is_active", *opt.Active)
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY sort_order ASC, created_at ASC", columns, roomTypesTable, w), w.args
}

func (r *implRepository) buildGetOneRoomQuery(opt repo.GetOneRoomOptions) (string, []any) {
	w := &where{}
	w.eq("business_id", opt.BusinessID)
	if opt.ID != "" {
		w.eq("id", opt.ID)
	}
	if opt.Number != "" {
		w.eq("number", opt.Number)
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s LIMIT 1", roomColumns, roomsTable, w), w.args
}

func (r *implRepository) buildListRoomsQuery(columns string, opt repo.ListRoomsOptions) (string, []any) {
	w := &where{}
	w.eq("business_id", opt.BusinessID)
	if opt.ID != "" {
		w.eq("id", opt.ID)
	}
	if opt.RoomTypeID != "" {
		w.eq("room_type_id", opt.RoomTypeID)
	}
	if opt.Active != nil {
		w.eq("is_active", *opt.Active)
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY sort_order ASC, created_at ASC", columns, roomsTable, w), w.args
}
