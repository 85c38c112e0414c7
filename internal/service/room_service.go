package service

import (
	"context"

	"github.com/google/uuid"

	"hotelpride/internal/domain"
	"hotelpride/internal/port"
)

// CreateRoomInput is the DTO for creating a room.
type CreateRoomInput struct {
	Number       string          `json:"number" binding:"required"`
	Type         domain.RoomType `json:"type" binding:"required,oneof=standard deluxe suite executive"`
	Floor        int             `json:"floor"`
	BaseRate     float64         `json:"base_rate" binding:"required,gt=0"`
	MaxOccupancy int             `json:"max_occupancy" binding:"required,gt=0"`
	Description  string          `json:"description"`
}

// UpdateRoomInput is the DTO for updating a room. Nil fields are left
// unchanged.
type UpdateRoomInput struct {
	Type         *domain.RoomType   `json:"type" binding:"omitempty,oneof=standard deluxe suite executive"`
	Floor        *int               `json:"floor"`
	BaseRate     *float64           `json:"base_rate" binding:"omitempty,gt=0"`
	MaxOccupancy *int               `json:"max_occupancy" binding:"omitempty,gt=0"`
	Status       *domain.RoomStatus `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
	Description  *string            `json:"description"`
}

// RoomService defines room management operations.
type RoomService interface {
	Create(ctx context.Context, input CreateRoomInput) (*domain.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	List(ctx context.Context, filter port.RoomFilter, offset, limit int) ([]domain.Room, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateRoomInput) (*domain.Room, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomService struct {
	roomRepo port.RoomRepository
}

// NewRoomService creates a new RoomService implementation.
func NewRoomService(roomRepo port.RoomRepository) RoomService {
	return &roomService{roomRepo: roomRepo}
}

func (s *roomService) Create(ctx context.Context, input CreateRoomInput) (*domain.Room, error) {
	room := &domain.Room{
		ID:           uuid.New(),
		Number:       input.Number,
		Type:         input.Type,
		Floor:        input.Floor,
		BaseRate:     input.BaseRate,
		MaxOccupancy: input.MaxOccupancy,
		Status:       domain.RoomStatusAvailable,
		Description:  input.Description,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *roomService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

func (s *roomService) List(ctx context.Context, filter port.RoomFilter, offset, limit int) ([]domain.Room, int, error) {
	return s.roomRepo.List(ctx, filter, offset, limit)
}

func (s *roomService) Update(ctx context.Context, id uuid.UUID, input UpdateRoomInput) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		room.Type = *input.Type
	}
	if input.Floor != nil {
		room.Floor = *input.Floor
	}
	if input.BaseRate != nil {
		room.BaseRate = *input.BaseRate
	}
	if input.MaxOccupancy != nil {
		room.MaxOccupancy = *input.MaxOccupancy
	}
	if input.Status != nil {
		room.Status = *input.Status
	}
	if input.Description != nil {
		room.Description = *input.Description
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *roomService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.roomRepo.Delete(ctx, id)
}
