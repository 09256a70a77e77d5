package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"business-admin/internal/listing"
	repo "business-admin/internal/listing/repository"
	"business-admin/internal/model"
	"business-admin/pkg/cache"
	"business-admin/pkg/ordering"
	"business-admin/pkg/scope"
)

func tenant(ctx context.Context) (string, error) {
	sc, ok := scope.FromContext(ctx)
	if !ok {
		return "", scope.ErrNoTenant
	}
	return sc.TenantID, nil
}

func validate(l listing.Listing) error {
	switch {
	case l.Title == "":
		return listing.ErrTitleRequired
	case l.Price <= 0:
		return listing.ErrInvalidPrice
	case l.ListingType != listing.TypeSale && l.ListingType != listing.TypeRent:
		return listing.ErrInvalidListingType
	}
	return nil
}

func pick[T any](v *T, fallback T) T {
	if v != nil {
		return *v
	}
	return fallback
}

func (uc *implUseCase) invalidate(ctx context.Context, tenantID string) {
	if err := uc.cache.Delete(ctx, cache.ListKey(model.CollectionListings, tenantID)); err != nil {
		uc.l.Warnf(ctx, "uc.invalidate: %v", err)
	}
}

func (uc *implUseCase) Create(ctx context.Context, input listing.CreateInput) (listing.Listing, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return listing.Listing{}, err
	}

	draft := listing.Listing{
		Title:       strings.TrimSpace(input.Title),
		Price:       input.Price,
		ListingType: input.ListingType,
	}
	if err := validate(draft); err != nil {
		return listing.Listing{}, err
	}

	l, err := uc.repo.CreateListing(ctx, repo.CreateListingOptions{
		ID:          uc.newID(),
		BusinessID:  tenantID,
		Title:       draft.Title,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		ListingType: input.ListingType,
		City:        strings.TrimSpace(input.City),
		Address:     strings.TrimSpace(input.Address),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		IsActive:    pick(input.IsActive, true),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateListing: %v", err)
		return listing.Listing{}, err
	}

	uc.invalidate(ctx, tenantID)
	return l, nil
}

// List caches only the unfiltered list.
func (uc *implUseCase) List(ctx context.Context, input listing.ListInput) (listing.ListOutput, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return listing.ListOutput{}, err
	}

	key := cache.ListKey(model.CollectionListings, tenantID)
	cacheable := input == listing.ListInput{}
	if cacheable {
		var items []listing.Listing
		err := uc.cache.GetJSON(ctx, key, &items)
		if err == nil {
			return listing.ListOutput{Listings: items}, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			uc.l.Warnf(ctx, "uc.List cache get: %v", err)
		}
	}

	items, err := uc.repo.ListListings(ctx, uc.listOptions(tenantID, input))
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListListings: %v", err)
		return listing.ListOutput{}, err
	}

	if cacheable {
		if err := uc.cache.SetJSON(ctx, key, items); err != nil {
			uc.l.Warnf(ctx, "uc.List cache set: %v", err)
		}
	}
	return listing.ListOutput{Listings: items}, nil
}

func (uc *implUseCase) listOptions(tenantID string, input listing.ListInput) repo.ListListingsOptions {
	return repo.ListListingsOptions{
		BusinessID:  tenantID,
		ID:          input.ID,
		ListingType: input.ListingType,
		City:        strings.TrimSpace(input.City),
		Active:      input.Active,
	}
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (listing.Listing, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return listing.Listing{}, err
	}
	l, err := uc.repo.GetOneListing(ctx, repo.GetOneListingOptions{BusinessID: tenantID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneListing: %v", err)
		return listing.Listing{}, err
	}
	if l.ID == "" {
		return listing.Listing{}, listing.ErrListingNotFound
	}
	return l, nil
}

func (uc *implUseCase) Update(ctx context.Context, input listing.UpdateInput) (listing.Listing, error) {
	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return listing.Listing{}, err
	}

	merged := existing
	merged.Title = strings.TrimSpace(pick(input.Title, existing.Title))
	merged.Description = pick(input.Description, existing.Description)
	merged.Price = pick(input.Price, existing.Price)
	merged.ListingType = pick(input.ListingType, existing.ListingType)
	merged.City = strings.TrimSpace(pick(input.City, existing.City))
	merged.Address = pick(input.Address, existing.Address)
	merged.ImageURL = pick(input.ImageURL, existing.ImageURL)
	merged.SortOrder = pick(input.SortOrder, existing.SortOrder)
	merged.IsActive = pick(input.IsActive, existing.IsActive)
	if err := validate(merged); err != nil {
		return listing.Listing{}, err
	}

	l, err := uc.repo.UpdateListing(ctx, repo.UpdateListingOptions{
		BusinessID:  existing.BusinessID,
		ID:          existing.ID,
		Title:       merged.Title,
		Description: merged.Description,
		Price:       merged.Price,
		ListingType: merged.ListingType,
		City:        merged.City,
		Address:     merged.Address,
		ImageURL:    merged.ImageURL,
		SortOrder:   merged.SortOrder,
		IsActive:    merged.IsActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateListing: %v", err)
		return listing.Listing{}, err
	}
	if l.ID == "" {
		return listing.Listing{}, listing.ErrListingNotFound
	}

	uc.invalidate(ctx, existing.BusinessID)
	return l, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.Detail(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteListing(ctx, existing.BusinessID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteListing: %v", err)
		return err
	}
	uc.invalidate(ctx, existing.BusinessID)
	return nil
}

func (uc *implUseCase) Reorder(ctx context.Context, input listing.ReorderInput) error {
	tenantID, err := tenant(ctx)
	if err != nil {
		return err
	}

	ids, err := uc.repo.ListListingIDs(ctx, repo.ListListingsOptions{BusinessID: tenantID, Active: input.Active})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reorder ListListingIDs: %v", err)
		return err
	}
	if err := ordering.Validate(input.Positions, ids); err != nil {
		return fmt.Errorf("%w: %w", listing.ErrInvalidOrder, err)
	}

	if err := uc.repo.ReorderListings(ctx, tenantID, input.Positions); err != nil {
		uc.l.Errorf(ctx, "uc.Reorder ReorderListings: %v", err)
		return err
	}
	uc.invalidate(ctx, tenantID)
	return nil
}
