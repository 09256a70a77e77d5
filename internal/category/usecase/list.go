package usecase

import (
	"context"

	"business-admin/internal/category"
	repo "business-admin/internal/category/repository"
)

// List returns the tenant's categories in display order. Only the unfiltered list is cached.
func (uc *implUseCase) List(ctx context.Context, input category.ListInput) (category.ListOutput, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return category.ListOutput{}, err
	}

	cacheable := input.ID == "" && input.Active == nil
	if cacheable {
		if items, ok := uc.cachedList(ctx, tenantID); ok {
			return category.ListOutput{Categories: items}, nil
		}
	}

	items, err := uc.repo.ListCategories(ctx, repo.ListCategoriesOptions{
		BusinessID: tenantID,
		ID:         input.ID,
		Active:     input.Active,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCategories: %v", err)
		return category.ListOutput{}, err
	}

	if cacheable {
		uc.storeList(ctx, tenantID, items)
	}
	return category.ListOutput{Categories: items}, nil
}
