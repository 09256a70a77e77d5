package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"business-admin/internal/listing"
	repo "business-admin/internal/listing/repository"
	"business-admin/pkg/ordering"
	"business-admin/pkg/postgres"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanListing(s scanner) (listing.Listing, error) {
	var l listing.Listing
	err := s.Scan(&l.ID, &l.BusinessID, &l.Title, &l.Description, &l.Price, &l.ListingType, &l.City, &l.Address,
		&l.ImageURL, &l.SortOrder, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (r *implRepository) CreateListing(ctx context.Context, opt repo.CreateListingOptions) (listing.Listing, error) {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (id, business_id, title, description, price, listing_type, city, address, image_url,
			sort_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
			(SELECT COALESCE(MAX(sort_order), -1) + 1 FROM %[1]s WHERE business_id = $2),
			$10, NOW(), NOW())
		RETURNING %[2]s`, table, selectColumns)

	l, err := scanListing(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.BusinessID, opt.Title, opt.Description, opt.Price, opt.ListingType, opt.City, opt.Address,
		opt.ImageURL, opt.IsActive))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateListing"), err)
		return listing.Listing{}, repo.ErrFailedToInsert
	}
	return l, nil
}

func (r *implRepository) GetOneListing(ctx context.Context, opt repo.GetOneListingOptions) (listing.Listing, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE business_id = $1 AND id = $2 LIMIT 1", selectColumns, table)
	l, err := scanListing(r.db.QueryRowContext(ctx, query, opt.BusinessID, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return listing.Listing{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneListing"), err)
		return listing.Listing{}, repo.ErrFailedToGet
	}
	return l, nil
}

func (r *implRepository) ListListings(ctx context.Context, opt repo.ListListingsOptions) ([]listing.Listing, error) {
	query, args := r.buildListQuery(selectColumns, opt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListListings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := []listing.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListListings"), err)
			return nil, repo.ErrFailedToList
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListListings"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}

func (r *implRepository) ListListingIDs(ctx context.Context, opt repo.ListListingsOptions) ([]string, error) {
	query, args := r.buildListQuery("id", opt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListListingIDs"), err)
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

func (r *implRepository) UpdateListing(ctx context.Context, opt repo.UpdateListingOptions) (listing.Listing, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, description = $2, price = $3, listing_type = $4, city = $5, address = $6, image_url = $7,
			sort_order = $8, is_active = $9, updated_at = NOW()
		WHERE business_id = $10 AND id = $11
		RETURNING %s`, table, selectColumns)

	l, err := scanListing(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.Price, opt.ListingType, opt.City, opt.Address, opt.ImageURL,
		opt.SortOrder, opt.IsActive, opt.BusinessID, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return listing.Listing{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateListing"), err)
		return listing.Listing{}, repo.ErrFailedToUpdate
	}
	return l, nil
}

func (r *implRepository) DeleteListing(ctx context.Context, businessID, id string) error {
	_, err := r.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE business_id = $1 AND id = $2`, table), businessID, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteListing"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) ReorderListings(ctx context.Context, businessID string, positions []ordering.Position) error {
	err := postgres.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		return postgres.UpdateSortOrders(ctx, tx, table, businessID, positions)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReorderListings"), err)
		return repo.ErrFailedToReorder
	}
	return nil
}
