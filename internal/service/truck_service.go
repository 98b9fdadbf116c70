package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"waste-service/internal/model"
)

type TruckService struct {
	trucks TruckStore
}

func NewTruckService(trucks TruckStore) *TruckService {
	return &TruckService{trucks: trucks}
}

type AddTruckInput struct {
	Brand       string
	NumberPlate string
	Capacity    int
}

func (s *TruckService) Add(ctx context.Context, input AddTruckInput) (*model.Truck, error) {
	brand := strings.TrimSpace(input.Brand)
	plate := strings.TrimSpace(input.NumberPlate)
	if brand == "" || plate == "" || input.Capacity <= 0 {
		return nil, invalid("All fields are required")
	}

	truck := &model.Truck{
		Brand:       brand,
		NumberPlate: plate,
		Capacity:    input.Capacity,
	}
	if err := s.trucks.Create(ctx, truck); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("Truck with this number plate already exists")
		}
		return nil, err
	}
	return truck, nil
}

func (s *TruckService) List(ctx context.Context) ([]model.Truck, error) {
	return s.trucks.List(ctx)
}

func (s *TruckService) ListNumbers(ctx context.Context) ([]model.TruckNumber, error) {
	return s.trucks.ListNumbers(ctx)
}

func (s *TruckService) GetByID(ctx context.Context, id uuid.UUID) (*model.Truck, error) {
	truck, err := s.trucks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Truck not found")
		}
		return nil, err
	}
	return truck, nil
}

type UpdateTruckInput struct {
	Brand       *string
	NumberPlate *string
	Capacity    *int
}

func (s *TruckService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, input UpdateTruckInput) (*model.Truck, error) {
	if !principal.IsAdmin() {
		return nil, denied("You are not allowed to update trucks")
	}

	fields := map[string]interface{}{}
	if input.Brand != nil {
		fields["brand"] = strings.TrimSpace(*input.Brand)
	}
	if input.NumberPlate != nil {
		fields["number_plate"] = strings.TrimSpace(*input.NumberPlate)
	}
	if input.Capacity != nil {
		fields["capacity"] = *input.Capacity
	}
	if len(fields) == 0 {
		return nil, invalid("No fields to update")
	}

	truck, err := s.trucks.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Truck not found")
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("Truck with this number plate already exists")
		}
		return nil, err
	}
	return truck, nil
}

func (s *TruckService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return denied("You are not allowed to delete trucks")
	}
	if err := s.trucks.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Truck not found")
		}
		return err
	}
	return nil
}
