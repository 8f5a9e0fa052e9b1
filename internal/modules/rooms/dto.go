package rooms

import (
	"time"

	"hotelcore/internal/domain"
)

type CreateRoomRequest struct {
	RoomNumber  string `json:"room_number" validate:"required"`
	Floor       int    `json:"floor" validate:"gte=0"`
	RoomTypeID  int64  `json:"room_type_id" validate:"required"`
	Description string `json:"description"`
}

type UpdateRoomRequest struct {
	RoomNumber          *string `json:"room_number"`
	Floor               *int    `json:"floor"`
	RoomTypeID          *int64  `json:"room_type_id"`
	Description         *string `json:"description"`
	MaintenanceRequired *bool   `json:"maintenance_required"`
	MaintenanceNotes    *string `json:"maintenance_notes"`
}

type TransitionRequest struct {
	Action string `json:"action" validate:"required"`
	Reason string `json:"reason"`
}

type TransitionResponse struct {
	Room    *domain.Room               `json:"room"`
	History *domain.StatusHistoryEntry `json:"history"`
}

type ActionsResponse struct {
	RoomID  int64             `json:"room_id"`
	Status  domain.RoomStatus `json:"status"`
	Actions []domain.Action   `json:"actions"`
}

type HistoryResponse struct {
	RoomID  int64                       `json:"room_id"`
	Total   int64                       `json:"total"`
	Entries []domain.StatusHistoryEntry `json:"entries"`
}

// AvailabilityResponse mirrors the per-room availability breakdown shown
// in the booking integration: the sellable flag plus the reasons.
type AvailabilityResponse struct {
	RoomID     int64                 `json:"room_id"`
	RoomNumber string                `json:"room_number"`
	Status     domain.RoomStatus     `json:"status"`
	StartDate  time.Time             `json:"start_date"`
	EndDate    time.Time             `json:"end_date"`
	StatusOK   bool                  `json:"status_ok"`
	NotBlocked bool                  `json:"not_blocked"`
	Available  bool                  `json:"available"`
	Blockings  []domain.RoomBlocking `json:"blockings"`
}
