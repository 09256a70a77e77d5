package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"business-admin/internal/model"
	"business-admin/internal/room"
	repo "business-admin/internal/room/repository"
	"business-admin/pkg/ordering"
)

func validateRoomType(rt room.RoomType) error {
	switch {
	case rt.Name == "":
		return room.ErrNameRequired
	case rt.BasePrice <= 0:
		return room.ErrInvalidBasePrice
	case rt.Capacity <= 0:
		return room.ErrInvalidCapacity
	}
	return nil
}

func (uc *implUseCase) CreateRoomType(ctx context.Context, input room.CreateRoomTypeInput) (room.RoomType, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return room.RoomType{}, err
	}

	draft := room.RoomType{
		Name:      strings.TrimSpace(input.Name),
		BasePrice: input.BasePrice,
		Capacity:  input.Capacity,
	}
	if err := validateRoomType(draft); err != nil {
		return room.RoomType{}, err
	}

	rt, err := uc.repo.CreateRoomType(ctx, repo.CreateRoomTypeOptions{
		ID:          uc.newID(),
		BusinessID:  tenantID,
		Name:        draft.Name,
		Description: strings.TrimSpace(input.Description),
		BasePrice:   input.BasePrice,
		Capacity:    input.Capacity,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		IsActive:    pick(input.IsActive, true),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateRoomType: %v", err)
		return room.RoomType{}, err
	}

	uc.invalidate(ctx, model.CollectionRoomTypes, tenantID)
	return rt, nil
}

func (uc *implUseCase) ListRoomTypes(ctx context.Context, input room.ListRoomTypesInput) (room.ListRoomTypesOutput, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return room.ListRoomTypesOutput{}, err
	}

	cacheable := input.ID == "" && input.Active == nil
	if cacheable {
		var items []room.RoomType
		if uc.cached(ctx, model.CollectionRoomTypes, tenantID, &items) {
			return room.ListRoomTypesOutput{RoomTypes: items}, nil
		}
	}

	items, err := uc.repo.ListRoomTypes(ctx, repo.ListRoomTypesOptions{BusinessID: tenantID, ID: input.ID, Active: input.Active})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRoomTypes: %v", err)
		return room.ListRoomTypesOutput{}, err
	}
	if cacheable {
		uc.store(ctx, model.CollectionRoomTypes, tenantID, items)
	}
	return room.ListRoomTypesOutput{RoomTypes: items}, nil
}

func (uc *implUseCase) DetailRoomType(ctx context.Context, id string) (room.RoomType, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return room.RoomType{}, err
	}
	rt, err := uc.repo.GetOneRoomType(ctx, repo.GetOneRoomTypeOptions{BusinessID: tenantID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailRoomType: %v", err)
		return room.RoomType{}, err
	}
	if rt.ID == "" {
		return room.RoomType{}, room.ErrRoomTypeNotFound
	}
	return rt, nil
}

func (uc *implUseCase) UpdateRoomType(ctx context.Context, input room.UpdateRoomTypeInput) (room.RoomType, error) {
	existing, err := uc.DetailRoomType(ctx, input.ID)
	if err != nil {
		return room.RoomType{}, err
	}

	merged := existing
	merged.Name = strings.TrimSpace(pick(input.Name, existing.Name))
	merged.Description = pick(input.Description, existing.Description)
	merged.BasePrice = pick(input.BasePrice, existing.BasePrice)
	merged.Capacity = pick(input.Capacity, existing.Capacity)
	merged.ImageURL = pick(input.ImageURL, existing.ImageURL)
	merged.SortOrder = pick(input.SortOrder, existing.SortOrder)
	merged.IsActive = pick(input.IsActive, existing.IsActive)
	if err := validateRoomType(merged); err != nil {
		return room.RoomType{}, err
	}

	rt, err := uc.repo.UpdateRoomType(ctx, repo.UpdateRoomTypeOptions{
		BusinessID:  existing.BusinessID,
		ID:          existing.ID,
		Name:        merged.Name,
		Description: merged.Description,
		BasePrice:   merged.BasePrice,
		Capacity:    merged.Capacity,
		ImageURL:    merged.ImageURL,
		SortOrder:   merged.SortOrder,
		IsActive:    merged.IsActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateRoomType: %v", err)
		return room.RoomType{}, err
	}
	if rt.ID == "" {
		return room.RoomType{}, room.ErrRoomTypeNotFound
	}

	uc.invalidate(ctx, model.CollectionRoomTypes, existing.BusinessID)
	return rt, nil
}

// DeleteRoomType refuses while rooms still reference the type. The foreign key catches
// a room created between the count and the delete.
func (uc *implUseCase) DeleteRoomType(ctx context.Context, id string) error {
	existing, err := uc.DetailRoomType(ctx, id)
	if err != nil {
		return err
	}

	n, err := uc.repo.CountRooms(ctx, existing.BusinessID, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteRoomType CountRooms: %v", err)
		return err
	}
	if n > 0 {
		return room.ErrRoomTypeInUse
	}

	err = uc.repo.DeleteRoomType(ctx, existing.BusinessID, id)
	if errors.Is(err, repo.ErrReferenced) {
		return room.ErrRoomTypeInUse
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteRoomType: %v", err)
		return err
	}

	uc.invalidate(ctx, model.CollectionRoomTypes, existing.BusinessID)
	return nil
}

func (uc *implUseCase) ReorderRoomTypes(ctx context.Context, input room.ReorderRoomTypesInput) error {
	tenantID, err := tenant(ctx)
	if err != nil {
		return err
	}

	ids, err := uc.repo.ListRoomTypeIDs(ctx, repo.ListRoomTypesOptions{BusinessID: tenantID, Active: input.Active})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ReorderRoomTypes ListRoomTypeIDs: %v", err)
		return err
	}
	if err := ordering.Validate(input.Positions, ids); err != nil {
		return fmt.Errorf("%w: %w", room.ErrInvalidOrder, err)
	}

	if err := uc.repo.ReorderRoomTypes(ctx, tenantID, input.Positions); err != nil {
		uc.l.Errorf(ctx, "uc.ReorderRoomTypes: %v", err)
		return err
	}
	uc.invalidate(ctx, model.CollectionRoomTypes, tenantID)
	return nil
}
