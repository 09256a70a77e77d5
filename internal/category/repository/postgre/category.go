package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"business-admin/internal/category"
	repo "business-admin/internal/category/repository"
	"business-admin/pkg/ordering"
	"business-admin/pkg/postgres"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (category.Category, error) {
	var c category.Category
	err := s.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Description, &c.ImageURL,
		&c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// CreateCategory inserts a row at the end of the tenant's order.
func (r *implRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (category.Category, error) {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (id, business_id, name, description, image_url, sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COALESCE(MAX(sort_order), -1) + 1 FROM %[1]s WHERE business_id = $2),
			$6, NOW(), NOW())
		RETURNING %[2]s`, table, selectColumns)

	c, err := scanCategory(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.BusinessID, opt.Name, opt.Description, opt.ImageURL, opt.IsActive))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		return category.Category{}, repo.ErrFailedToInsert
	}
	return c, nil
}

func (r *implRepository) GetOneCategory(ctx context.Context, opt repo.GetOneCategoryOptions) (category.Category, error) {
	query, args := r.buildGetOneQuery(opt)
	c, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return category.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCategory"), err)
		return category.Category{}, repo.ErrFailedToGet
	}
	return c, nil
}

func (r *implRepository) ListCategories(ctx context.Context, opt repo.ListCategoriesOptions) ([]category.Category, error) {
	query, args := r.buildListQuery(selectColumns, opt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := []category.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCategories"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListCategories"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) ListCategoryIDs(ctx context.Context, opt repo.ListCategoriesOptions) ([]string, error) {
	query, args := r.buildListQuery("id", opt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategoryIDs"), err)
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

// UpdateCategory returns a zero Category when the row does not exist.
func (r *implRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (category.Category, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, image_url = $3, sort_order = $4, is_active = $5, updated_at = NOW()
		WHERE business_id = $6 AND id = $7
		RETURNING %s`, table, selectColumns)

	c, err := scanCategory(r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Description, opt.ImageURL, opt.SortOrder, opt.IsActive, opt.BusinessID, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return category.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCategory"), err)
		return category.Category{}, repo.ErrFailedToUpdate
	}
	return c, nil
}

func (r *implRepository) DeleteCategory(ctx context.Context, businessID, id string) error {
	_, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE business_id = $1 AND id = $2`, table), businessID, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCategory"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ReorderCategories applies the whole ordering in one transaction.
func (r *implRepository) ReorderCategories(ctx context.Context, businessID string, positions []ordering.Position) error {
	err := postgres.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		return postgres.UpdateSortOrders(ctx, tx, table, businessID, positions)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReorderCategories"), err)
		return repo.ErrFailedToReorder
	}
	return nil
}
