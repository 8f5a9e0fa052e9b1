package domain

import "time"

// Channel identifies which workflow produced a status change.
type Channel string

const (
	ChannelFrontOffice  Channel = "front_office"
	ChannelHousekeeping Channel = "housekeeping"
	ChannelMaintenance  Channel = "maintenance"
	ChannelSystem       Channel = "system"
)

// StatusHistoryEntry is one record in a room's append-only audit trail.
// Entries are created once and never updated or deleted.
type StatusHistoryEntry struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	RoomID    int64      `json:"room_id" gorm:"index;not null"`
	OldStatus RoomStatus `json:"old_status" gorm:"size:20;not null"`
	NewStatus RoomStatus `json:"new_status" gorm:"size:20;not null"`
	Action    Action     `json:"action" gorm:"size:32"`
	Channel   Channel    `json:"channel" gorm:"size:16;index"`
	ChangedBy int64      `json:"changed_by" gorm:"index"`
	Reason    string     `json:"reason,omitempty" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at" gorm:"index"`
}

func (StatusHistoryEntry) TableName() string { return "room_status_history" }
