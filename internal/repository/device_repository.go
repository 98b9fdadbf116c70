package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"waste-service/internal/model"
)

type DeviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

func (r *DeviceRepository) Create(ctx context.Context, device *model.Device) error {
	return r.db.WithContext(ctx).Create(device).Error
}

func (r *DeviceRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Device, error) {
	var device model.Device
	if err := r.db.WithContext(ctx).First(&device, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *DeviceRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.Device, error) {
	var devices []model.Device
	if err := r.db.WithContext(ctx).Find(&devices, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *DeviceRepository) ListAll(ctx context.Context) ([]model.Device, error) {
	var devices []model.Device
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *DeviceRepository) Save(ctx context.Context, device *model.Device) error {
	return r.db.WithContext(ctx).Save(device).Error
}
