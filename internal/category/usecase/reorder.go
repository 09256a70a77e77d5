package usecase

import (
	"context"
	"fmt"

	"business-admin/internal/category"
	repo "business-admin/internal/category/repository"
	"business-admin/pkg/ordering"
)

// Reorder applies a complete, dense ordering of the tenant's categories atomically.
func (uc *implUseCase) Reorder(ctx context.Context, input category.ReorderInput) error {
	tenantID, err := tenant(ctx)
	if err != nil {
		return err
	}

	ids, err := uc.repo.ListCategoryIDs(ctx, repo.ListCategoriesOptions{BusinessID: tenantID, Active: input.Active})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reorder ListCategoryIDs: %v", err)
		return err
	}
	if err := ordering.Validate(input.Positions, ids); err != nil {
		return fmt.Errorf("%w: %w", category.ErrInvalidOrder, err)
	}

	if err := uc.repo.ReorderCategories(ctx, tenantID, input.Positions); err != nil {
		uc.l.Errorf(ctx, "uc.Reorder ReorderCategories: %v", err)
		return err
	}
	uc.invalidate(ctx, tenantID)
	return nil
}
