package domain

import "time"

type BlockingType string

const (
	BlockingMaintenance BlockingType = "maintenance"
	BlockingEvent       BlockingType = "event"
	BlockingOutOfOrder  BlockingType = "out_of_order"
	BlockingRenovation  BlockingType = "renovation"
	BlockingOther       BlockingType = "other"
)

type BlockingStatus string

const (
	BlockingPlanned   BlockingStatus = "planned"
	BlockingActive    BlockingStatus = "active"
	BlockingCompleted BlockingStatus = "completed"
	BlockingCancelled BlockingStatus = "cancelled"
)

// RoomBlocking marks a room unavailable for a date range. Its lifecycle is
// independent of Room.Status: a blocked room may still undergo status
// transitions, blocking only affects availability computation.
type RoomBlocking struct {
	ID            int64          `json:"id" gorm:"primaryKey"`
	Reference     string         `json:"reference" gorm:"size:36;uniqueIndex"`
	RoomID        int64          `json:"room_id" gorm:"index;not null"`
	Name          string         `json:"name" validate:"required"`
	StartDate     time.Time      `json:"start_date" validate:"required"`
	EndDate       time.Time      `json:"end_date" validate:"required"`
	BlockingType  BlockingType   `json:"blocking_type" gorm:"size:20" validate:"required"`
	Reason        string         `json:"reason,omitempty" gorm:"type:text"`
	Status        BlockingStatus `json:"status" gorm:"size:16;index;default:planned"`
	ResponsibleID int64          `json:"responsible_id" gorm:"index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (RoomBlocking) TableName() string { return "room_blockings" }

// DurationDays counts calendar days covered, inclusive of both ends.
func (b *RoomBlocking) DurationDays() int {
	if b.EndDate.Before(b.StartDate) {
		return 0
	}
	return int(b.EndDate.Sub(b.StartDate).Hours()/24) + 1
}

// Overlaps reports whether the blocking covers any part of [start, end].
func (b *RoomBlocking) Overlaps(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}
