package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"waste-service/internal/model"
)

type ScheduleService struct {
	schedules ScheduleStore
}

func NewScheduleService(schedules ScheduleStore) *ScheduleService {
	return &ScheduleService{schedules: schedules}
}

type CreateScheduleInput struct {
	Time        time.Time
	Address     string
	TruckNumber string
	Collector   string
	Special     bool
}

func (s *ScheduleService) Create(ctx context.Context, principal model.Principal, input CreateScheduleInput) (*model.Schedule, error) {
	if !principal.IsManager() && !principal.IsAdmin() {
		return nil, denied("Access denied: Managers only")
	}

	address := strings.TrimSpace(input.Address)
	truckNumber := strings.TrimSpace(input.TruckNumber)
	if input.Time.IsZero() || address == "" || truckNumber == "" {
		return nil, invalid("All fields are required")
	}

	schedule := &model.Schedule{
		Time:        input.Time,
		Address:     address,
		TruckNumber: truckNumber,
		Collector:   strings.TrimSpace(input.Collector),
		Special:     input.Special,
		Status:      model.ScheduleStatusNotDone,
	}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// List returns all schedules, optionally narrowed to one district (the
// last comma-separated segment of the address).
func (s *ScheduleService) List(ctx context.Context, district string) ([]model.Schedule, error) {
	schedules, err := s.schedules.List(ctx)
	if err != nil {
		return nil, err
	}

	district = strings.TrimSpace(district)
	if district == "" {
		return schedules, nil
	}

	filtered := make([]model.Schedule, 0, len(schedules))
	for _, schedule := range schedules {
		if strings.EqualFold(schedule.District(), district) {
			filtered = append(filtered, schedule)
		}
	}
	return filtered, nil
}

func (s *ScheduleService) GetByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	schedule, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Schedule not found")
		}
		return nil, err
	}
	return schedule, nil
}

type UpdateScheduleInput struct {
	Time        *time.Time
	Address     *string
	TruckNumber *string
	Collector   *string
	Special     *bool
	Status      *model.ScheduleStatus
	Weight      *float64
	WasteType   *string
}

// Update covers both administrative edits (manager) and execution
// updates (collector marking a pickup done with weight and type).
func (s *ScheduleService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, input UpdateScheduleInput) (*model.Schedule, error) {
	if !principal.IsManager() && !principal.IsAdmin() && !principal.IsCollector() {
		return nil, denied("Access denied: Managers and collectors only")
	}

	fields := map[string]interface{}{}
	if input.Time != nil {
		fields["time"] = *input.Time
	}
	if input.Address != nil {
		fields["address"] = strings.TrimSpace(*input.Address)
	}
	if input.TruckNumber != nil {
		fields["truck_number"] = strings.TrimSpace(*input.TruckNumber)
	}
	if input.Collector != nil {
		fields["collector"] = strings.TrimSpace(*input.Collector)
	}
	if input.Special != nil {
		fields["special"] = *input.Special
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, invalidStatus("Status must be 'not-done' or 'done'")
		}
		fields["status"] = *input.Status
	}
	if input.Weight != nil {
		if *input.Weight < 0 {
			return nil, invalid("Weight must not be negative")
		}
		fields["weight"] = *input.Weight
	}
	if input.WasteType != nil {
		fields["waste_type"] = strings.TrimSpace(*input.WasteType)
	}
	if len(fields) == 0 {
		return nil, invalid("No fields to update")
	}

	schedule, err := s.schedules.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Schedule not found")
		}
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsManager() && !principal.IsAdmin() {
		return denied("Access denied: Managers only")
	}
	if err := s.schedules.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Schedule not found")
		}
		return err
	}
	return nil
}
