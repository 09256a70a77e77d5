package postgre

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "business-admin/internal/room/repository"
	"business-admin/pkg/log"
	"business-admin/pkg/ordering"
)

var roomCols = []string{"id", "business_id", "room_type_id", "number", "floor", "status", "sort_order", "is_active",
	"created_at", "updated_at"}

func newMock(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &implRepository{db: db, l: log.NewNop()}, mock
}

func TestListRoomsByRoomType(t *testing.T) {
	r, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM rooms WHERE business_id = $1 AND room_type_id = $2 ORDER BY sort_order ASC, created_at ASC`)).
		WithArgs("biz-1", "rt-1").
		WillReturnRows(sqlmock.NewRows(roomCols).
			AddRow("r1", "biz-1", "rt-1", "101", 1, "available", 0, true, now, now).
			AddRow("r2", "biz-1", "rt-1", "102", 1, "maintenance", 1, true, now, now))

	rooms, err := r.ListRooms(context.Background(), repo.ListRoomsOptions{BusinessID: "biz-1", RoomTypeID: "rt-1"})

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "maintenance", rooms[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRoomConstraintErrors(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"23505", repo.ErrDuplicate},
		{"23503", repo.ErrReferenced},
		{"42P01", repo.ErrFailedToInsert},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			r, mock := newMock(t)
			mock.ExpectQuery(`INSERT INTO rooms`).WillReturnError(&pq.Error{Code: pq.ErrorCode(tt.code)})

			_, err := r.CreateRoom(context.Background(), repo.CreateRoomOptions{ID: "r1", BusinessID: "biz-1", Number: "101"})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDeleteRoomTypeReferenced(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectExec(`DELETE FROM room_types`).WithArgs("biz-1", "rt-1").
		WillReturnError(&pq.Error{Code: "23503"})

	err := r.DeleteRoomType(context.Background(), "biz-1", "rt-1")

	assert.ErrorIs(t, err, repo.ErrReferenced)
}

func TestCountRooms(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM rooms WHERE business_id = $1 AND room_type_id = $2`)).
		WithArgs("biz-1", "rt-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := r.CountRooms(context.Background(), "biz-1", "rt-1")

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestListRoomTypeIDsActiveOnly(t *testing.T) {
	r, mock := newMock(t)
	active := true
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM room_types WHERE business_id = $1 AND is_active = $2`)).
		WithArgs("biz-1", true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("b").AddRow("a"))

	ids, err := r.ListRoomTypeIDs(context.Background(), repo.ListRoomTypesOptions{BusinessID: "biz-1", Active: &active})

	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids)
}

func TestReorderRoomsRollsBack(t *testing.T) {
	r, mock := newMock(t)
	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`UPDATE rooms SET sort_order`)
	prep.ExpectExec().WithArgs(0, "r2", "biz-1").WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(1, "r1", "biz-1").WillReturnError(errors.New("conn reset"))
	mock.ExpectRollback()

	err := r.ReorderRooms(context.Background(), "biz-1", ordering.Positions([]string{"r2", "r1"}))

	assert.ErrorIs(t, err, repo.ErrFailedToReorder)
	assert.NoError(t, mock.ExpectationsWereMet())
}
