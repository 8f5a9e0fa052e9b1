package domain

import (
	"fmt"
	"time"
)

type RoomStatus string

const (
	StatusClean        RoomStatus = "clean"
	StatusDirty        RoomStatus = "dirty"
	StatusMakeUpRoom   RoomStatus = "make_up_room"
	StatusInspected    RoomStatus = "inspected"
	StatusOutOfService RoomStatus = "out_of_service"
	StatusOutOfOrder   RoomStatus = "out_of_order"
	StatusHouseUse     RoomStatus = "house_use"
)

// AllStatuses lists every valid room status, in dashboard display order.
var AllStatuses = []RoomStatus{
	StatusClean,
	StatusDirty,
	StatusMakeUpRoom,
	StatusInspected,
	StatusOutOfService,
	StatusOutOfOrder,
	StatusHouseUse,
}

func (s RoomStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Room struct {
	ID                  int64      `json:"id" gorm:"primaryKey"`
	RoomNumber          string     `json:"room_number" gorm:"uniqueIndex:idx_room_number_floor;size:16" validate:"required"`
	Floor               int        `json:"floor" gorm:"uniqueIndex:idx_room_number_floor" validate:"gte=0"`
	FloorID             *int64     `json:"floor_id,omitempty" gorm:"index"`
	RoomTypeID          int64      `json:"room_type_id" gorm:"index" validate:"required"`
	Status              RoomStatus `json:"status" gorm:"size:20;index;default:clean"`
	Description         string     `json:"description,omitempty" gorm:"type:text"`
	MaintenanceRequired bool       `json:"maintenance_required"`
	MaintenanceNotes    string     `json:"maintenance_notes,omitempty" gorm:"type:text"`
	Archived            bool       `json:"archived" gorm:"index;default:false"`
	LastStatusChange    time.Time  `json:"last_status_change"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	RoomType *RoomType `json:"room_type,omitempty" gorm:"foreignKey:RoomTypeID"`
}

// Name is the display name shown on the dashboard.
func (r *Room) Name() string {
	return fmt.Sprintf("Floor %d - Room %s", r.Floor, r.RoomNumber)
}

type Floor struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" validate:"required"`
	FloorNumber int       `json:"floor_number" gorm:"uniqueIndex" validate:"gte=0"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Sequence    int       `json:"sequence" gorm:"default:10"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
