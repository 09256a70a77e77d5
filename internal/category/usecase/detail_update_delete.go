package usecase

import (
	"context"
	"strings"

	"business-admin/internal/category"
	repo "business-admin/internal/category/repository"
)

// Detail returns ErrCategoryNotFound when the id is unknown to the tenant.
func (uc *implUseCase) Detail(ctx context.Context, id string) (category.Category, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return category.Category{}, err
	}
	c, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{BusinessID: tenantID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneCategory: %v", err)
		return category.Category{}, err
	}
	if c.ID == "" {
		return category.Category{}, category.ErrCategoryNotFound
	}
	return c, nil
}

// Update merges the provided fields into the stored category.
func (uc *implUseCase) Update(ctx context.Context, input category.UpdateInput) (category.Category, error) {
	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return category.Category{}, err
	}

	name := strings.TrimSpace(pick(input.Name, existing.Name))
	if name == "" {
		return category.Category{}, category.ErrNameRequired
	}

	c, err := uc.repo.UpdateCategory(ctx, repo.UpdateCategoryOptions{
		BusinessID:  existing.BusinessID,
		ID:          existing.ID,
		Name:        name,
		Description: pick(input.Description, existing.Description),
		ImageURL:    pick(input.ImageURL, existing.ImageURL),
		SortOrder:   pick(input.SortOrder, existing.SortOrder),
		IsActive:    pick(input.IsActive, existing.IsActive),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateCategory: %v", err)
		return category.Category{}, err
	}
	if c.ID == "" {
		return category.Category{}, category.ErrCategoryNotFound
	}

	uc.invalidate(ctx, existing.BusinessID)
	return c, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.Detail(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteCategory(ctx, existing.BusinessID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteCategory: %v", err)
		return err
	}
	uc.invalidate(ctx, existing.BusinessID)
	return nil
}
