package dashboard

import "hotelcore/internal/domain"

// KPIFilters narrow the aggregation; zero values mean "all rooms".
type KPIFilters struct {
	RoomTypeID int64
	Floor      *int
	StartDate  string
	EndDate    string
}

type KPIResponse struct {
	Total        int64                       `json:"total"`
	ByStatus     map[domain.RoomStatus]int64 `json:"by_status"`
	BlockedRooms int64                       `json:"blocked_rooms"`
}

type RoomSummary struct {
	ID                  int64             `json:"id"`
	Name                string            `json:"name"`
	RoomNumber          string            `json:"room_number"`
	Floor               int               `json:"floor"`
	RoomTypeID          int64             `json:"room_type_id"`
	RoomTypeName        string            `json:"room_type_name,omitempty"`
	Status              domain.RoomStatus `json:"status"`
	MaintenanceRequired bool              `json:"maintenance_required"`
}

type RoomListResponse struct {
	Rooms    []RoomSummary `json:"rooms"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

type RoomTypeAvailability struct {
	RoomTypeID    int64   `json:"room_type_id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	BasePrice     float64 `json:"base_price"`
	MaxOccupancy  int     `json:"max_occupancy"`
	TotalRooms    int64   `json:"total_rooms"`
	SellableRooms int64   `json:"sellable_rooms"`
}
