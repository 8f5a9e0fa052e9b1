package domain

import "time"

type RoomType struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Code         string    `json:"code" gorm:"uniqueIndex;size:16" validate:"required"`
	Name         string    `json:"name" gorm:"uniqueIndex" validate:"required"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	MaxOccupancy int       `json:"max_occupancy" gorm:"default:2" validate:"gt=0"`
	SizeSqm      float64   `json:"size_sqm,omitempty" validate:"gte=0"`
	BasePrice    float64   `json:"base_price" validate:"gte=0"`
	Sequence     int       `json:"sequence" gorm:"default:10"`
	Active       bool      `json:"active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
