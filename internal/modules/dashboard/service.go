package dashboard

import (
	"context"
	"time"

	"hotelcore/internal/domain"
	"hotelcore/internal/repository"
)

type RoomRepository interface {
	List(ctx context.Context, f repository.RoomFilter, limit, offset int) ([]domain.Room, int64, error)
	CountByStatus(ctx context.Context, f repository.RoomFilter) (map[domain.RoomStatus]int64, error)
}

type BlockingRepository interface {
	CountBlockedRooms(ctx context.Context, start, end time.Time, f repository.RoomFilter) (int64, error)
	ActiveForRoom(ctx context.Context, roomID int64, start, end time.Time) ([]domain.RoomBlocking, error)
}

type RoomTypeRepository interface {
	List(ctx context.Context) ([]domain.RoomType, error)
}

type Service struct {
	rooms     RoomRepository
	blockings BlockingRepository
	roomTypes RoomTypeRepository
}

func NewService(rooms RoomRepository, blockings BlockingRepository, roomTypes RoomTypeRepository) *Service {
	return &Service{rooms: rooms, blockings: blockings, roomTypes: roomTypes}
}

func notArchived() *bool {
	v := false
	return &v
}

// parseRange resolves the requested date range, defaulting to today.
// Malformed dates are rejected, not coerced.
func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start := time.Now().Truncate(24 * time.Hour)
	if startStr != "" {
		t, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, ErrValidation
		}
		start = t
	}
	end := start
	if endStr != "" {
		t, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return time.Time{}, time.Time{}, ErrValidation
		}
		end = t
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrValidation
	}
	return start, end, nil
}

// ComputeKPIs returns per-status counts over non-archived rooms plus the
// number of rooms blocked in the date range. Counts are recomputed fully
// on each call; no caching.
func (s *Service) ComputeKPIs(ctx context.Context, f KPIFilters) (*KPIResponse, error) {
	start, end, err := parseRange(f.StartDate, f.EndDate)
	if err != nil {
		return nil, err
	}

	filter := repository.RoomFilter{
		RoomTypeID: f.RoomTypeID,
		Floor:      f.Floor,
		Archived:   notArchived(),
	}

	byStatus, err := s.rooms.CountByStatus(ctx, filter)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, cnt := range byStatus {
		total += cnt
	}

	// blocked count is scoped by the same filter as the status counts
	blocked, err := s.blockings.CountBlockedRooms(ctx, start, end, filter)
	if err != nil {
		return nil, err
	}

	return &KPIResponse{
		Total:        total,
		ByStatus:     byStatus,
		BlockedRooms: blocked,
	}, nil
}

// ListRooms returns a paginated projection of current room records.
func (s *Service) ListRooms(ctx context.Context, status string, roomTypeID int64, floor *int, page, pageSize int) (*RoomListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 25
	}

	filter := repository.RoomFilter{
		Status:     domain.RoomStatus(status),
		RoomTypeID: roomTypeID,
		Floor:      floor,
		Archived:   notArchived(),
	}

	rooms, total, err := s.rooms.List(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	out := make([]RoomSummary, 0, len(rooms))
	for i := range rooms {
		r := &rooms[i]
		summary := RoomSummary{
			ID:                  r.ID,
			Name:                r.Name(),
			RoomNumber:          r.RoomNumber,
			Floor:               r.Floor,
			RoomTypeID:          r.RoomTypeID,
			Status:              r.Status,
			MaintenanceRequired: r.MaintenanceRequired,
		}
		if r.RoomType != nil {
			summary.RoomTypeName = r.RoomType.Name
		}
		out = append(out, summary)
	}

	return &RoomListResponse{
		Rooms:    out,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

var sellableStatuses = map[domain.RoomStatus]bool{
	domain.StatusClean:     true,
	domain.StatusInspected: true,
}

// RoomTypeSummaries reports per-type totals and how many rooms of each
// type could be sold in the date range (sellable status, no overlapping
// blocking). A full scan per call is fine at the expected data volumes.
func (s *Service) RoomTypeSummaries(ctx context.Context, startStr, endStr string) ([]RoomTypeAvailability, error) {
	start, end, err := parseRange(startStr, endStr)
	if err != nil {
		return nil, err
	}

	types, err := s.roomTypes.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]RoomTypeAvailability, 0, len(types))
	for _, rt := range types {
		rooms, total, err := s.rooms.List(ctx, repository.RoomFilter{
			RoomTypeID: rt.ID,
			Archived:   notArchived(),
		}, 10000, 0)
		if err != nil {
			return nil, err
		}

		var sellable int64
		for i := range rooms {
			if !sellableStatuses[rooms[i].Status] {
				continue
			}
			blockings, err := s.blockings.ActiveForRoom(ctx, rooms[i].ID, start, end)
			if err != nil {
				return nil, err
			}
			if len(blockings) == 0 {
				sellable++
			}
		}

		out = append(out, RoomTypeAvailability{
			RoomTypeID:    rt.ID,
			Code:          rt.Code,
			Name:          rt.Name,
			BasePrice:     rt.BasePrice,
			MaxOccupancy:  rt.MaxOccupancy,
			TotalRooms:    total,
			SellableRooms: sellable,
		})
	}
	return out, nil
}
