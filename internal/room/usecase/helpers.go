package usecase

import (
	"context"
	"errors"

	"business-admin/internal/room"
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

func validStatus(s string) bool {
	switch s {
	case room.StatusAvailable, room.StatusOccupied, room.StatusMaintenance:
		return true
	}
	return false
}

// cached reads the unfiltered list of collection into dst.
func (uc *implUseCase) cached(ctx context.Context, collection, tenantID string, dst any) bool {
	err := uc.cache.GetJSON(ctx, cache.ListKey(collection, tenantID), dst)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrMiss) {
		uc.l.Warnf(ctx, "uc.cached %s: %v", collection, err)
	}
	return false
}

func (uc *implUseCase) store(ctx context.Context, collection, tenantID string, items any) {
	if err := uc.cache.SetJSON(ctx, cache.ListKey(collection, tenantID), items); err != nil {
		uc.l.Warnf(ctx, "uc.store %s: %v", collection, err)
	}
}

func (uc *implUseCase) invalidate(ctx context.Context, collection, tenantID string) {
	if err := uc.cache.Delete(ctx, cache.ListKey(collection, tenantID)); err != nil {
		uc.l.Warnf(ctx, "uc.invalidate %s: %v", collection, err)
	}
}

func pick[T any](v *T, fallback T) T {
	if v != nil {
		return *v
	}
	return fallback
}
