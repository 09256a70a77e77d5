package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"business-admin/internal/coupon"
	repo "business-admin/internal/coupon/repository"
	"business-admin/pkg/ordering"
	"business-admin/pkg/postgres"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanCoupon(s scanner) (coupon.Coupon, error) {
	var (
		c        coupon.Coupon
		from, to sql.NullTime
	)
	err := s.Scan(&c.ID, &c.BusinessID, &c.Code, &c.DiscountType, &c.DiscountValue, &c.MinOrderValue,
		&c.MaxUses, &from, &to, &c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	c.ValidFrom = nullTime(from)
	c.ValidTo = nullTime(to)
	return c, err
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// CreateCoupon inserts a row at the end of the tenant's order.
func (r *implRepository) CreateCoupon(ctx context.Context, opt repo.CreateCouponOptions) (coupon.Coupon, error) {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (id, business_id, code, discount_type, discount_value, min_order_value, max_uses,
			valid_from, valid_to, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
			(SELECT COALESCE(MAX(sort_order), -1) + 1 FROM %[1]s WHERE business_id = $2),
			$10, NOW(), NOW())
		RETURNING %[2]s`, table, selectColumns)

	c, err := scanCoupon(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.BusinessID, opt.Code, opt.DiscountType, opt.DiscountValue, opt.MinOrderValue, opt.MaxUses,
		opt.ValidFrom, opt.ValidTo, opt.IsActive))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return coupon.Coupon{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCoupon"), err)
		return coupon.Coupon{}, repo.ErrFailedToInsert
	}
	return c, nil
}

func (r *implRepository) GetOneCoupon(ctx context.Context, opt repo.GetOneCouponOptions) (coupon.Coupon, error) {
	query, args := r.buildGetOneQuery(opt)
	c, err := scanCoupon(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return coupon.Coupon{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCoupon"), err)
		return coupon.Coupon{}, repo.ErrFailedToGet
	}
	return c, nil
}

func (r *implRepository) ListCoupons(ctx context.Context, opt repo.ListCouponsOptions) ([]coupon.Coupon, error) {
	query, args := r.buildListQuery(selectColumns, opt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCoupons"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := []coupon.Coupon{}
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCoupons"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListCoupons"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) ListCouponIDs(ctx context.Context, opt repo.ListCouponsOptions) ([]string, error) {
	query, args := r.buildListQuery("id", opt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCouponIDs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, repo.ErrFailedToList
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *implRepository) UpdateCoupon(ctx context.Context, opt repo.UpdateCouponOptions) (coupon.Coupon, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET code = $1, discount_type = $2, discount_value = $3, min_order_value = $4, max_uses = $5,
			valid_from = $6, valid_to = $7, sort_order = $8, is_active = $9, updated_at = NOW()
		WHERE business_id = $10 AND id = $11
		RETURNING %s`, table, selectColumns)

	c, err := scanCoupon(r.db.QueryRowContext(ctx, query,
		opt.Code, opt.DiscountType, opt.DiscountValue, opt.MinOrderValue, opt.MaxUses,
		opt.ValidFrom, opt.ValidTo, opt.SortOrder, opt.IsActive, opt.BusinessID, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return coupon.Coupon{}, nil
	}
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return coupon.Coupon{}, repo.ErrDuplicate
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCoupon"), err)
		return coupon.Coupon{}, repo.ErrFailedToUpdate
	}
	return c, nil
}

func (r *implRepository) DeleteCoupon(ctx context.Context, businessID, id string) error {
	_, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE business_id = $1 AND id = $2`, table), businessID, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCoupon"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) ReorderCoupons(ctx context.Context, businessID string, positions []ordering.Position) error {
	err := postgres.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		return postgres.UpdateSortOrders(ctx, tx, table, businessID, positions)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReorderCoupons"), err)
		return repo.ErrFailedToReorder
	}
	return nil
}
