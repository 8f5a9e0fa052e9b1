package rooms

import (
	"context"
	"errors"
	"time"

	"hotelcore/internal/domain"
	"hotelcore/internal/repository"
)

type Service struct {
	rooms     RoomRepository
	history   HistoryRepository
	blockings BlockingRepository
	floors    FloorRepository
	notifier  StatusNotifier
}

func NewService(
	rooms RoomRepository,
	history HistoryRepository,
	blockings BlockingRepository,
	floors FloorRepository,
	notifier StatusNotifier,
) *Service {
	return &Service{
		rooms:     rooms,
		history:   history,
		blockings: blockings,
		floors:    floors,
		notifier:  notifier,
	}
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	room := &domain.Room{
		RoomNumber:  req.RoomNumber,
		Floor:       req.Floor,
		RoomTypeID:  req.RoomTypeID,
		Description: req.Description,
		Status:      domain.StatusClean,
	}

	// Link the floor record when one exists for this floor number.
	if s.floors != nil {
		if f, err := s.floors.GetByNumber(ctx, req.Floor); err == nil {
			room.FloorID = &f.ID
		}
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
		room.FloorID = nil
		if s.floors != nil {
			if f, err := s.floors.GetByNumber(ctx, *req.Floor); err == nil {
				room.FloorID = &f.ID
			}
		}
	}
	if req.RoomTypeID != nil {
		room.RoomTypeID = *req.RoomTypeID
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.MaintenanceRequired != nil {
		room.MaintenanceRequired = *req.MaintenanceRequired
	}
	if req.MaintenanceNotes != nil {
		room.MaintenanceNotes = *req.MaintenanceNotes
	}

	room.RoomType = nil
	if err := s.rooms.Update(ctx, room); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ArchiveRoom(ctx context.Context, id int64) error {
	if err := s.rooms.Archive(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Transition applies a named action to the room. The status write and the
// history entry are committed atomically by the repository; on any error
// the room is left unchanged.
func (s *Service) Transition(ctx context.Context, roomID, actorID int64, req TransitionRequest) (*TransitionResponse, error) {
	action := domain.Action(req.Action)

	room, entry, err := s.rooms.Transition(ctx, roomID, action, actorID, req.Reason)
	if err != nil {
		switch {
		case repository.IsNotFound(err):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrRoomArchived):
			return nil, ErrArchived
		default:
			return nil, err
		}
	}

	if s.notifier != nil {
		s.notifier.NotifyStatusChanged(room, entry)
	}

	return &TransitionResponse{Room: room, History: entry}, nil
}

// Actions returns the legal actions for the room's current status.
// Archived rooms have none.
func (s *Service) Actions(ctx context.Context, roomID int64) (*ActionsResponse, error) {
	room, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	res := &ActionsResponse{RoomID: room.ID, Status: room.Status, Actions: []domain.Action{}}
	if !room.Archived {
		if actions := domain.ActionsFrom(room.Status); actions != nil {
			res.Actions = actions
		}
	}
	return res, nil
}

func (s *Service) History(ctx context.Context, roomID int64, limit, offset int) (*HistoryResponse, error) {
	if _, err := s.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	total, err := s.history.CountByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	entries, err := s.history.ListByRoom(ctx, roomID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &HistoryResponse{RoomID: roomID, Total: total, Entries: entries}, nil
}

// sellableStatuses are the statuses in which a room can be offered to a
// guest. Maintenance and house-use rooms are never sellable.
var sellableStatuses = map[domain.RoomStatus]bool{
	domain.StatusClean:     true,
	domain.StatusInspected: true,
}

// Availability combines the room status with overlapping blockings for a
// date range. Blockings affect only this computation, never the state
// machine itself.
func (s *Service) Availability(ctx context.Context, roomID int64, start, end time.Time) (*AvailabilityResponse, error) {
	if end.Before(start) {
		return nil, ErrValidation
	}

	room, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	blockings, err := s.blockings.ActiveForRoom(ctx, roomID, start, end)
	if err != nil {
		return nil, err
	}

	statusOK := sellableStatuses[room.Status] && !room.Archived
	notBlocked := len(blockings) == 0
	if blockings == nil {
		blockings = []domain.RoomBlocking{}
	}

	return &AvailabilityResponse{
		RoomID:     room.ID,
		RoomNumber: room.RoomNumber,
		Status:     room.Status,
		StartDate:  start,
		EndDate:    end,
		StatusOK:   statusOK,
		NotBlocked: notBlocked,
		Available:  statusOK && notBlocked,
		Blockings:  blockings,
	}, nil
}
