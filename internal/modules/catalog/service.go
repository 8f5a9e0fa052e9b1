package catalog

import (
	"context"

	"hotelcore/internal/domain"
	"hotelcore/internal/repository"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *domain.RoomType) error
	GetByID(ctx context.Context, id int64) (*domain.RoomType, error)
	Update(ctx context.Context, rt *domain.RoomType) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.RoomType, error)
	RoomCount(ctx context.Context, roomTypeID int64) (int64, error)
}

type FloorRepository interface {
	Create(ctx context.Context, f *domain.Floor) error
	GetByID(ctx context.Context, id int64) (*domain.Floor, error)
	Update(ctx context.Context, f *domain.Floor) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Floor, error)
	RoomCount(ctx context.Context, floorNumber int) (int64, error)
}

type Service struct {
	roomTypes RoomTypeRepository
	floors    FloorRepository
}

func NewService(roomTypes RoomTypeRepository, floors FloorRepository) *Service {
	return &Service{roomTypes: roomTypes, floors: floors}
}

func (s *Service) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (*domain.RoomType, error) {
	rt := &domain.RoomType{
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		MaxOccupancy: req.MaxOccupancy,
		SizeSqm:      req.SizeSqm,
		BasePrice:    req.BasePrice,
		Sequence:     req.Sequence,
		Active:       true,
	}
	if rt.MaxOccupancy <= 0 {
		rt.MaxOccupancy = 2
	}
	if rt.Sequence == 0 {
		rt.Sequence = 10
	}

	if err := s.roomTypes.Create(ctx, rt); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rt, nil
}

func (s *Service) UpdateRoomType(ctx context.Context, id int64, req UpdateRoomTypeRequest) (*domain.RoomType, error) {
	rt, err := s.roomTypes.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Code != nil {
		rt.Code = *req.Code
	}
	if req.Name != nil {
		rt.Name = *req.Name
	}
	if req.Description != nil {
		rt.Description = *req.Description
	}
	if req.MaxOccupancy != nil {
		rt.MaxOccupancy = *req.MaxOccupancy
	}
	if req.SizeSqm != nil {
		rt.SizeSqm = *req.SizeSqm
	}
	if req.BasePrice != nil {
		rt.BasePrice = *req.BasePrice
	}
	if req.Sequence != nil {
		rt.Sequence = *req.Sequence
	}
	if req.Active != nil {
		rt.Active = *req.Active
	}

	if err := s.roomTypes.Update(ctx, rt); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rt, nil
}

func (s *Service) DeleteRoomType(ctx context.Context, id int64) error {
	cnt, err := s.roomTypes.RoomCount(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrInUse
	}

	if err := s.roomTypes.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListRoomTypes(ctx context.Context) ([]RoomTypeSummary, error) {
	types, err := s.roomTypes.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]RoomTypeSummary, 0, len(types))
	for _, rt := range types {
		cnt, err := s.roomTypes.RoomCount(ctx, rt.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, RoomTypeSummary{RoomType: rt, RoomCount: cnt})
	}
	return out, nil
}

func (s *Service) CreateFloor(ctx context.Context, req CreateFloorRequest) (*domain.Floor, error) {
	f := &domain.Floor{
		Name:        req.Name,
		FloorNumber: req.FloorNumber,
		Description: req.Description,
		Sequence:    req.Sequence,
	}
	if f.Sequence == 0 {
		f.Sequence = 10
	}

	if err := s.floors.Create(ctx, f); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) UpdateFloor(ctx context.Context, id int64, req UpdateFloorRequest) (*domain.Floor, error) {
	f, err := s.floors.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.Description != nil {
		f.Description = *req.Description
	}
	if req.Sequence != nil {
		f.Sequence = *req.Sequence
	}

	if err := s.floors.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) DeleteFloor(ctx context.Context, id int64) error {
	f, err := s.floors.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	cnt, err := s.floors.RoomCount(ctx, f.FloorNumber)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrInUse
	}

	return s.floors.Delete(ctx, id)
}

func (s *Service) ListFloors(ctx context.Context) ([]FloorSummary, error) {
	floors, err := s.floors.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]FloorSummary, 0, len(floors))
	for _, f := range floors {
		cnt, err := s.floors.RoomCount(ctx, f.FloorNumber)
		if err != nil {
			return nil, err
		}
		out = append(out, FloorSummary{Floor: f, RoomCount: cnt})
	}
	return out, nil
}
