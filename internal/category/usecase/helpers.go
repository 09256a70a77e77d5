package usecase

import (
	"context"
	"errors"

	"business-admin/internal/category"
	"business-admin/internal/model"
	"business-admin/pkg/cache"
	"business-admin/pkg/scope"
)

func tenant(ctx context.Context) (string, error) {
	sc, ok := scope.FromContext(ctx)
	if !ok {
		return "", scope.ErrNoTenant
	}
	return sc.TenantID, nil
}

func (uc *implUseCase) cachedList(ctx context.Context, tenantID string) ([]category.Category, bool) {
	var out []category.Category
	err := uc.cache.GetJSON(ctx, cache.ListKey(model.CollectionCategories, tenantID), &out)
	if err == nil {
		return out, true
	}
	if !errors.Is(err, cache.ErrMiss) {
		uc.l.Warnf(ctx, "uc.List cache get: %v", err)
	}
	return nil, false
}

func (uc *implUseCase) storeList(ctx context.Context, tenantID string, items []category.Category) {
	if err := uc.cache.SetJSON(ctx, cache.ListKey(model.CollectionCategories, tenantID), items); err != nil {
		uc.l.Warnf(ctx, "uc.List cache set: %v", err)
	}
}

// invalidate drops the cached list after any mutation. Failures only cost a stale read until TTL.
func (uc *implUseCase) invalidate(ctx context.Context, tenantID string) {
	if err := uc.cache.Delete(ctx, cache.ListKey(model.CollectionCategories, tenantID)); err != nil {
		uc.l.Warnf(ctx, "uc.invalidate: %v", err)
	}
}

func pick[T any](v *T, fallback T) T {
	if v != nil {
		return *v
	}
	return fallback
}
