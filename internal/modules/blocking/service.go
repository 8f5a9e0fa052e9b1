package blocking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hotelcore/internal/domain"
	"hotelcore/internal/repository"
)

type BlockingRepository interface {
	Create(ctx context.Context, b *domain.RoomBlocking) error
	GetByID(ctx context.Context, id int64) (*domain.RoomBlocking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BlockingStatus) error
	ListByRoom(ctx context.Context, roomID int64) ([]domain.RoomBlocking, error)
	ListByStatus(ctx context.Context, status domain.BlockingStatus) ([]domain.RoomBlocking, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type Service struct {
	blockings BlockingRepository
	rooms     RoomRepository
}

func NewService(blockings BlockingRepository, rooms RoomRepository) *Service {
	return &Service{blockings: blockings, rooms: rooms}
}

var blockingTypes = map[domain.BlockingType]bool{
	domain.BlockingMaintenance: true,
	domain.BlockingEvent:       true,
	domain.BlockingOutOfOrder:  true,
	domain.BlockingRenovation:  true,
	domain.BlockingOther:       true,
}

// CreateBlocking records a date-ranged unavailability for a room.
// Overlapping blockings for the same room are allowed; deduplication is
// a business decision left to operators.
func (s *Service) CreateBlocking(ctx context.Context, roomID, responsibleID int64, req CreateBlockingRequest) (*domain.RoomBlocking, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}
	if end.Before(start) {
		return nil, ErrValidation
	}
	if !blockingTypes[domain.BlockingType(req.BlockingType)] {
		return nil, ErrValidation
	}

	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	b := &domain.RoomBlocking{
		Reference:     uuid.NewString(),
		RoomID:        roomID,
		Name:          req.Name,
		StartDate:     start,
		EndDate:       end,
		BlockingType:  domain.BlockingType(req.BlockingType),
		Reason:        req.Reason,
		Status:        domain.BlockingPlanned,
		ResponsibleID: responsibleID,
	}
	if err := s.blockings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// lifecycle edges: planned -> active|cancelled, active -> completed|cancelled.
var blockingEdges = map[domain.BlockingStatus][]domain.BlockingStatus{
	domain.BlockingPlanned: {domain.BlockingActive, domain.BlockingCancelled},
	domain.BlockingActive:  {domain.BlockingCompleted, domain.BlockingCancelled},
}

func (s *Service) setStatus(ctx context.Context, id int64, to domain.BlockingStatus) (*domain.RoomBlocking, error) {
	b, err := s.blockings.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	allowed := false
	for _, next := range blockingEdges[b.Status] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidLifecycle
	}

	// Blocking lifecycle never touches Room.Status; it only changes
	// what the availability computation sees.
	if err := s.blockings.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	b.Status = to
	return b, nil
}

func (s *Service) Activate(ctx context.Context, id int64) (*domain.RoomBlocking, error) {
	return s.setStatus(ctx, id, domain.BlockingActive)
}

func (s *Service) Complete(ctx context.Context, id int64) (*domain.RoomBlocking, error) {
	return s.setStatus(ctx, id, domain.BlockingCompleted)
}

func (s *Service) Cancel(ctx context.Context, id int64) (*domain.RoomBlocking, error) {
	return s.setStatus(ctx, id, domain.BlockingCancelled)
}

func (s *Service) ListByRoom(ctx context.Context, roomID int64) ([]domain.RoomBlocking, error) {
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return s.blockings.ListByRoom(ctx, roomID)
}

func (s *Service) List(ctx context.Context, status string) ([]domain.RoomBlocking, error) {
	return s.blockings.ListByStatus(ctx, domain.BlockingStatus(status))
}
