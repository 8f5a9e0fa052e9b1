package catalog

import "hotelcore/internal/domain"

type CreateRoomTypeRequest struct {
	Code         string  `json:"code" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	MaxOccupancy int     `json:"max_occupancy" validate:"gte=0"`
	SizeSqm      float64 `json:"size_sqm" validate:"gte=0"`
	BasePrice    float64 `json:"base_price" validate:"gte=0"`
	Sequence     int     `json:"sequence"`
}

type UpdateRoomTypeRequest struct {
	Code         *string  `json:"code"`
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	MaxOccupancy *int     `json:"max_occupancy"`
	SizeSqm      *float64 `json:"size_sqm"`
	BasePrice    *float64 `json:"base_price"`
	Sequence     *int     `json:"sequence"`
	Active       *bool    `json:"active"`
}

type RoomTypeSummary struct {
	domain.RoomType
	RoomCount int64 `json:"room_count"`
}

type CreateFloorRequest struct {
	Name        string `json:"name" validate:"required"`
	FloorNumber int    `json:"floor_number" validate:"gte=0"`
	Description string `json:"description"`
	Sequence    int    `json:"sequence"`
}

type UpdateFloorRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Sequence    *int    `json:"sequence"`
}

type FloorSummary struct {
	domain.Floor
	RoomCount int64 `json:"room_count"`
}
