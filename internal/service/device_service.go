package service

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"waste-service/internal/model"
)

type DeviceService struct {
	devices DeviceStore
	users   UserStore
}

func NewDeviceService(devices DeviceStore, users UserStore) *DeviceService {
	return &DeviceService{devices: devices, users: users}
}

type AddDeviceInput struct {
	WasteType model.WasteCategory
	UserID    uuid.UUID
}

// Add links a device to a user, seeding the fill levels with the
// device's initial sensor state.
func (s *DeviceService) Add(ctx context.Context, input AddDeviceInput) (*model.Device, error) {
	if input.WasteType == "" || input.UserID == uuid.Nil {
		return nil, invalid("Waste type and User ID are required")
	}
	if !input.WasteType.Valid() {
		return nil, invalid("Invalid waste type. Must be 'organic', 'recycle', or 'nonRecycle'")
	}

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid("Invalid User ID")
		}
		return nil, err
	}

	if _, err := s.devices.GetByUserID(ctx, input.UserID); err == nil {
		return nil, conflict("User already has a linked device")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	device := &model.Device{
		WasteType: input.WasteType,
		WasteLevel: model.WasteLevel{
			Organic:    randomLevel(),
			Recycle:    randomLevel(),
			NonRecycle: randomLevel(),
		},
		UserID: input.UserID,
	}
	if err := s.devices.Create(ctx, device); err != nil {
		// The unique index on user_id closes the check-then-insert window.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("User already has a linked device")
		}
		return nil, err
	}
	return device, nil
}

func (s *DeviceService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Device, error) {
	if userID == uuid.Nil {
		return nil, invalid("Invalid or missing user ID")
	}
	devices, err := s.devices.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, notFound("No devices found for this user.")
	}
	return devices, nil
}

func (s *DeviceService) ListAll(ctx context.Context) ([]model.Device, error) {
	return s.devices.ListAll(ctx)
}

func (s *DeviceService) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Device, error) {
	device, err := s.devices.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Device not found for this user. Please request device and complete profile.")
		}
		return nil, err
	}
	return device, nil
}

func (s *DeviceService) WasteLevel(ctx context.Context, userID uuid.UUID) (*model.WasteLevel, error) {
	device, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &device.WasteLevel, nil
}

// UpdateLevel overwrites exactly the named category, leaving the other
// two readings untouched.
func (s *DeviceService) UpdateLevel(ctx context.Context, userID uuid.UUID, category model.WasteCategory, level int) (*model.WasteLevel, error) {
	if !category.Valid() {
		return nil, invalid("Invalid waste type. Must be 'organic', 'recycle', or 'nonRecycle'")
	}
	if level < 0 || level > 100 {
		return nil, invalid("Level must be a number between 0 and 100")
	}

	device, err := s.devices.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Device not found.")
		}
		return nil, err
	}

	device.WasteLevel.Set(category, level)
	if err := s.devices.Save(ctx, device); err != nil {
		return nil, err
	}
	return &device.WasteLevel, nil
}

func randomLevel() int {
	return rand.IntN(101)
}
