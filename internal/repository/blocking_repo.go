package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelcore/internal/domain"
)

type BlockingRepository struct {
	db *gorm.DB
}

func NewBlockingRepository(db *gorm.DB) *BlockingRepository {
	return &BlockingRepository{db: db}
}

func (r *BlockingRepository) Create(ctx context.Context, b *domain.RoomBlocking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BlockingRepository) GetByID(ctx context.Context, id int64) (*domain.RoomBlocking, error) {
	var b domain.RoomBlocking
	tx := r.db.WithContext(ctx).First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BlockingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BlockingStatus) error {
	tx := r.db.WithContext(ctx).Model(&domain.RoomBlocking{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BlockingRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.RoomBlocking, error) {
	var out []domain.RoomBlocking
	tx := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("start_date, end_date").
		Find(&out)
	return out, tx.Error
}

func (r *BlockingRepository) ListByStatus(ctx context.Context, status domain.BlockingStatus) ([]domain.RoomBlocking, error) {
	var out []domain.RoomBlocking
	q := r.db.WithContext(ctx).Order("start_date, end_date")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	tx := q.Find(&out)
	return out, tx.Error
}

// ActiveForRoom returns planned or active blockings of a room overlapping
// [start, end]. Used by availability computation only; blockings never
// drive the status state machine.
func (r *BlockingRepository) ActiveForRoom(ctx context.Context, roomID int64, start, end time.Time) ([]domain.RoomBlocking, error) {
	var out []domain.RoomBlocking
	tx := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Where("status IN ?", []domain.BlockingStatus{domain.BlockingPlanned, domain.BlockingActive}).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("start_date").
		Find(&out)
	return out, tx.Error
}

// CountBlockedRooms counts distinct rooms with a planned or active
// blocking overlapping [start, end], scoped to the same room filter the
// status counts use.
func (r *BlockingRepository) CountBlockedRooms(ctx context.Context, start, end time.Time, f RoomFilter) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.RoomBlocking{}).
		Joins("JOIN rooms ON rooms.id = room_blockings.room_id").
		Where("room_blockings.status IN ?", []domain.BlockingStatus{domain.BlockingPlanned, domain.BlockingActive}).
		Where("room_blockings.start_date <= ? AND room_blockings.end_date >= ?", end, start)
	if f.Status != "" {
		q = q.Where("rooms.status = ?", f.Status)
	}
	if f.RoomTypeID != 0 {
		q = q.Where("rooms.room_type_id = ?", f.RoomTypeID)
	}
	if f.Floor != nil {
		q = q.Where("rooms.floor = ?", *f.Floor)
	}
	if f.Archived != nil {
		q = q.Where("rooms.archived = ?", *f.Archived)
	}

	var cnt int64
	tx := q.Distinct("room_blockings.room_id").Count(&cnt)
	return cnt, tx.Error
}
