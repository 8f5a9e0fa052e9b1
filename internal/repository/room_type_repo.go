package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"hotelcore/internal/domain"
)

type RoomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) error {
	rt.Code = strings.ToUpper(strings.TrimSpace(rt.Code))
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *RoomTypeRepository) GetByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	var rt domain.RoomType
	tx := r.db.WithContext(ctx).First(&rt, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &rt, nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *domain.RoomType) error {
	rt.Code = strings.ToUpper(strings.TrimSpace(rt.Code))
	return r.db.WithContext(ctx).Save(rt).Error
}

func (r *RoomTypeRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.RoomType{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomTypeRepository) List(ctx context.Context) ([]domain.RoomType, error) {
	var out []domain.RoomType
	tx := r.db.WithContext(ctx).Order("sequence, name").Find(&out)
	return out, tx.Error
}

// RoomCount counts non-archived rooms of a type.
func (r *RoomTypeRepository) RoomCount(ctx context.Context, roomTypeID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Room{}).
		Where("room_type_id = ? AND archived = ?", roomTypeID, false).
		Count(&cnt)
	return cnt, tx.Error
}
