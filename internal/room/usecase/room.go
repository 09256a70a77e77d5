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

// checkRoom validates a merged room and makes sure its type belongs to the same business.
func (uc *implUseCase) checkRoom(ctx context.Context, rm room.Room) error {
	switch {
	case rm.RoomTypeID == "":
		return room.ErrRoomTypeRequired
	case rm.Number == "":
		return room.ErrNumberRequired
	case !validStatus(rm.Status):
		return room.ErrInvalidStatus
	}

	rt, err := uc.repo.GetOneRoomType(ctx, repo.GetOneRoomTypeOptions{BusinessID: rm.BusinessID, ID: rm.RoomTypeID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkRoom GetOneRoomType: %v", err)
		return err
	}
	if rt.ID == "" {
		return room.ErrUnknownRoomType
	}

	clash, err := uc.repo.GetOneRoom(ctx, repo.GetOneRoomOptions{BusinessID: rm.BusinessID, Number: rm.Number})
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkRoom GetOneRoom: %v", err)
		return err
	}
	if clash.ID != "" && clash.ID != rm.ID {
		return room.ErrDuplicateNumber
	}
	return nil
}

func mapRoomWriteErr(err error) error {
	switch {
	case errors.Is(err, repo.ErrDuplicate):
		return room.ErrDuplicateNumber
	case errors.Is(err, repo.ErrReferenced):
		return room.ErrUnknownRoomType
	}
	return err
}

func (uc *implUseCase) CreateRoom(ctx context.Context, input room.CreateRoomInput) (room.Room, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return room.Room{}, err
	}

	draft := room.Room{
		BusinessID: tenantID,
		RoomTypeID: strings.TrimSpace(input.RoomTypeID),
		Number:     strings.TrimSpace(input.Number),
		Floor:      input.Floor,
		Status:     input.Status,
		IsActive:   pick(input.IsActive, true),
	}
	if draft.Status == "" {
		draft.Status = room.StatusAvailable
	}
	if err := uc.checkRoom(ctx, draft); err != nil {
		return room.Room{}, err
	}

	rm, err := uc.repo.CreateRoom(ctx, repo.CreateRoomOptions{
		ID:         uc.newID(),
		BusinessID: tenantID,
		RoomTypeID: draft.RoomTypeID,
		Number:     draft.Number,
		Floor:      draft.Floor,
		Status:     draft.Status,
		IsActive:   draft.IsActive,
	})
	if err != nil {
		if mapped := mapRoomWriteErr(err); mapped != err {
			return room.Room{}, mapped
		}
		uc.l.Errorf(ctx, "uc.CreateRoom: %v", err)
		return room.Room{}, err
	}

	uc.invalidate(ctx, model.CollectionRooms, tenantID)
	return rm, nil
}

// ListRooms caches only the unfiltered list.
func (uc *implUseCase) ListRooms(ctx context.Context, input room.ListRoomsInput) (room.ListRoomsOutput, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return room.ListRoomsOutput{}, err
	}

	cacheable := input.ID == "" && input.RoomTypeID == "" && input.Active == nil
	if cacheable {
		var items []room.Room
		if uc.cached(ctx, model.CollectionRooms, tenantID, &items) {
			return room.ListRoomsOutput{Rooms: items}, nil
		}
	}

	items, err := uc.repo.ListRooms(ctx, repo.ListRoomsOptions{
		BusinessID: tenantID,
		ID:         input.ID,
		RoomTypeID: input.RoomTypeID,
		Active:     input.Active,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRooms: %v", err)
		return room.ListRoomsOutput{}, err
	}
	if cacheable {
		uc.store(ctx, model.CollectionRooms, tenantID, items)
	}
	return room.ListRoomsOutput{Rooms: items}, nil
}

func (uc *implUseCase) DetailRoom(ctx context.Context, id string) (room.Room, error) {
	tenantID, err := tenant(ctx)
	if err != nil {
		return room.Room{}, err
	}
	rm, err := uc.repo.GetOneRoom(ctx, repo.GetOneRoomOptions{BusinessID: tenantID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailRoom: %v", err)
		return room.Room{}, err
	}
	if rm.ID == "" {
		return room.Room{}, room.ErrRoomNotFound
	}
	return rm, nil
}

func (uc *implUseCase) UpdateRoom(ctx context.Context, input room.UpdateRoomInput) (room.Room, error) {
	existing, err := uc.DetailRoom(ctx, input.ID)
	if err != nil {
		return room.Room{}, err
	}

	merged := existing
	merged.RoomTypeID = strings.TrimSpace(pick(input.RoomTypeID, existing.RoomTypeID))
	merged.Number = strings.TrimSpace(pick(input.Number, existing.Number))
	merged.Floor = pick(input.Floor, existing.Floor)
	merged.Status = pick(input.Status, existing.Status)
	merged.SortOrder = pick(input.SortOrder, existing.SortOrder)
	merged.IsActive = pick(input.IsActive, existing.IsActive)
	if err := uc.checkRoom(ctx, merged); err != nil {
		return room.Room{}, err
	}

	rm, err := uc.repo.UpdateRoom(ctx, repo.UpdateRoomOptions{
		BusinessID: existing.BusinessID,
		ID:         existing.ID,
		RoomTypeID: merged.RoomTypeID,
		Number:     merged.Number,
		Floor:      merged.Floor,
		Status:     merged.Status,
		SortOrder:  merged.SortOrder,
		IsActive:   merged.IsActive,
	})
	if err != nil {
		if mapped := mapRoomWriteErr(err); mapped != err {
			return room.Room{}, mapped
		}
		uc.l.Errorf(ctx, "uc.UpdateRoom: %v", err)
		return room.Room{}, err
	}
	if rm.ID == "" {
		return room.Room{}, room.ErrRoomNotFound
	}

	uc.invalidate(ctx, model.CollectionRooms, existing.BusinessID)
	return rm, nil
}

func (uc *implUseCase) DeleteRoom(ctx context.Context, id string) error {
	existing, err := uc.DetailRoom(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteRoom(ctx, existing.BusinessID, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteRoom: %v", err)
		return err
	}
	uc.invalidate(ctx, model.CollectionRooms, existing.BusinessID)
	return nil
}

// ReorderRooms validates against the rooms matching the same filters the caller listed with.
func (uc *implUseCase) ReorderRooms(ctx context.Context, input room.ReorderRoomsInput) error {
	tenantID, err := tenant(ctx)
	if err != nil {
		return err
	}

	ids, err := uc.repo.ListRoomIDs(ctx, repo.ListRoomsOptions{
		BusinessID: tenantID,
		RoomTypeID: input.RoomTypeID,
		Active:     input.Active,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ReorderRooms ListRoomIDs: %v", err)
		return err
	}
	if err := ordering.Validate(input.Positions, ids); err != nil {
		return fmt.Errorf("%w: %w", room.ErrInvalidOrder, err)
	}

	if err := uc.repo.ReorderRooms(ctx, tenantID, input.Positions); err != nil {
		uc.l.Errorf(ctx, "uc.ReorderRooms: %v", err)
		return err
	}
	uc.invalidate(ctx, model.CollectionRooms, tenantID)
	return nil
}
