package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelcore/internal/domain"
)

type FloorRepository struct {
	db *gorm.DB
}

func NewFloorRepository(db *gorm.DB) *FloorRepository {
	return &FloorRepository{db: db}
}

func (r *FloorRepository) Create(ctx context.Context, f *domain.Floor) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FloorRepository) GetByID(ctx context.Context, id int64) (*domain.Floor, error) {
	var f domain.Floor
	tx := r.db.WithContext(ctx).First(&f, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

func (r *FloorRepository) GetByNumber(ctx context.Context, floorNumber int) (*domain.Floor, error) {
	var f domain.Floor
	tx := r.db.WithContext(ctx).Where("floor_number = ?", floorNumber).First(&f)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

func (r *FloorRepository) Update(ctx context.Context, f *domain.Floor) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *FloorRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Floor{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FloorRepository) List(ctx context.Context) ([]domain.Floor, error) {
	var out []domain.Floor
	tx := r.db.WithContext(ctx).Order("sequence, floor_number").Find(&out)
	return out, tx.Error
}

// RoomCount counts non-archived rooms on a floor (by floor number).
func (r *FloorRepository) RoomCount(ctx context.Context, floorNumber int) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Room{}).
		Where("floor = ? AND archived = ?", floorNumber, false).
		Count(&cnt)
	return cnt, tx.Error
}
