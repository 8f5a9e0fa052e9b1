package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelcore/internal/domain"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// appendEntry writes through the handle the caller is in, so the
// transition transaction appends with the same code path as Record.
func appendEntry(tx *gorm.DB, entry *domain.StatusHistoryEntry) error {
	return tx.Create(entry).Error
}

// Record appends one immutable entry outside a transition, e.g. the
// system entries written by the seeder. No dedup: rapid repeated entries
// are legitimate audit data.
func (r *HistoryRepository) Record(ctx context.Context, entry *domain.StatusHistoryEntry) error {
	return appendEntry(r.db.WithContext(ctx), entry)
}

func (r *HistoryRepository) ListByRoom(ctx context.Context, roomID int64, limit, offset int) ([]domain.StatusHistoryEntry, error) {
	var entries []domain.StatusHistoryEntry
	tx := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return entries, nil
}

func (r *HistoryRepository) CountByRoom(ctx context.Context, roomID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.StatusHistoryEntry{}).
		Where("room_id = ?", roomID).
		Count(&cnt)
	return cnt, tx.Error
}
