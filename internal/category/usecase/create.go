package usecase

import (
	"context"
	"strings"

	"business-admin/internal/category"
	repo "business-admin/internal/category/repository"
)

// Create appends a new category to the end of the tenant's list.
func (uc *implUseCase) Create(ctx context.Context, input category.CreateInput) (category.Category, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return category.Category{}, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return category.Category{}, category.ErrNameRequired
	}

	c, err := uc.repo.CreateCategory(ctx, repo.CreateCategoryOptions{
		ID:          uc.newID(),
		BusinessID:  tenantID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		IsActive:    pick(input.IsActive, true),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCategory: %v", err)
		return category.Category{}, err
	}

	uc.invalidate(ctx, tenantID)
	return c, nil
}
