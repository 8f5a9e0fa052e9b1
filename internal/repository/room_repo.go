package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelcore/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// RoomFilter narrows room queries; zero values mean "no filter".
type RoomFilter struct {
	Status     domain.RoomStatus
	RoomTypeID int64
	Floor      *int
	Archived   *bool
}

func (r *RoomRepository) apply(tx *gorm.DB, f RoomFilter) *gorm.DB {
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	if f.RoomTypeID != 0 {
		tx = tx.Where("room_type_id = ?", f.RoomTypeID)
	}
	if f.Floor != nil {
		tx = tx.Where("floor = ?", *f.Floor)
	}
	if f.Archived != nil {
		tx = tx.Where("archived = ?", *f.Archived)
	}
	return tx
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if room.Status == "" {
		room.Status = domain.StatusClean
	}
	room.LastStatusChange = time.Now()
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).Preload("RoomType").First(&room, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &room, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

// Archive soft-archives a room; rooms are never hard-deleted.
func (r *RoomRepository) Archive(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&domain.Room{}).
		Where("id = ?", id).
		Update("archived", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomRepository) List(ctx context.Context, f RoomFilter, limit, offset int) ([]domain.Room, int64, error) {
	var total int64
	q := r.apply(r.db.WithContext(ctx).Model(&domain.Room{}), f)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rooms []domain.Room
	tx := r.apply(r.db.WithContext(ctx).Preload("RoomType"), f).
		Order("floor, room_number").
		Limit(limit).
		Offset(offset).
		Find(&rooms)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}
	return rooms, total, nil
}

// CountByStatus returns room counts keyed by status. Every enum value is
// present in the result, zero when no rooms match.
func (r *RoomRepository) CountByStatus(ctx context.Context, f RoomFilter) (map[domain.RoomStatus]int64, error) {
	type row struct {
		Status domain.RoomStatus
		Cnt    int64
	}
	var rows []row
	tx := r.apply(r.db.WithContext(ctx).Model(&domain.Room{}), f).
		Select("status, COUNT(1) AS cnt").
		Group("status").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make(map[domain.RoomStatus]int64, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		out[s] = 0
	}
	for _, rr := range rows {
		out[rr.Status] = rr.Cnt
	}
	return out, nil
}

// Transition applies a named action to the room inside one transaction:
// the current status is read under a row lock, validated against the
// transition table, and the new status is written together with exactly
// one history entry. Both writes commit or neither does.
func (r *RoomRepository) Transition(ctx context.Context, roomID int64, action domain.Action, actorID int64, reason string) (*domain.Room, *domain.StatusHistoryEntry, error) {
	var room domain.Room
	var entry domain.StatusHistoryEntry

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			return err
		}
		if room.Archived {
			return ErrRoomArchived
		}

		newStatus, err := domain.Apply(room.Status, action)
		if err != nil {
			return err
		}

		oldStatus := room.Status
		now := time.Now()
		if err := tx.Model(&room).
			Updates(map[string]interface{}{
				"status":             newStatus,
				"last_status_change": now,
			}).Error; err != nil {
			return err
		}
		room.Status = newStatus
		room.LastStatusChange = now

		entry = domain.StatusHistoryEntry{
			RoomID:    room.ID,
			OldStatus: oldStatus,
			NewStatus: newStatus,
			Action:    action,
			Channel:   domain.ChannelFor(action),
			ChangedBy: actorID,
			Reason:    reason,
		}
		return appendEntry(tx, &entry)
	})
	if err != nil {
		return nil, nil, err
	}
	return &room, &entry, nil
}
