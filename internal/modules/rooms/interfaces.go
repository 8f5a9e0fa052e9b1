package rooms

import (
	"context"
	"time"

	"hotelcore/internal/domain"
	"hotelcore/internal/repository"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Archive(ctx context.Context, id int64) error
	List(ctx context.Context, f repository.RoomFilter, limit, offset int) ([]domain.Room, int64, error)
	Transition(ctx context.Context, roomID int64, action domain.Action, actorID int64, reason string) (*domain.Room, *domain.StatusHistoryEntry, error)
}

type HistoryRepository interface {
	ListByRoom(ctx context.Context, roomID int64, limit, offset int) ([]domain.StatusHistoryEntry, error)
	CountByRoom(ctx context.Context, roomID int64) (int64, error)
}

type BlockingRepository interface {
	ActiveForRoom(ctx context.Context, roomID int64, start, end time.Time) ([]domain.RoomBlocking, error)
}

type FloorRepository interface {
	GetByNumber(ctx context.Context, floorNumber int) (*domain.Floor, error)
}

// StatusNotifier receives successful transitions, e.g. to push them to
// dashboard websocket clients. Failures are ignored by the service.
type StatusNotifier interface {
	NotifyStatusChanged(room *domain.Room, entry *domain.StatusHistoryEntry)
}
