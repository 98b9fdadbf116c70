package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"waste-service/internal/model"
)

type TruckRepository struct {
	db *gorm.DB
}

func NewTruckRepository(db *gorm.DB) *TruckRepository {
	return &TruckRepository{db: db}
}

func (r *TruckRepository) Create(ctx context.Context, truck *model.Truck) error {
	return r.db.WithContext(ctx).Create(truck).Error
}

func (r *TruckRepository) List(ctx context.Context) ([]model.Truck, error) {
	var trucks []model.Truck
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&trucks).Error; err != nil {
		return nil, err
	}
	return trucks, nil
}

// ListNumbers returns only id and plate, for dropdowns.
func (r *TruckRepository) ListNumbers(ctx context.Context) ([]model.TruckNumber, error) {
	var numbers []model.TruckNumber
	err := r.db.WithContext(ctx).
		Model(&model.Truck{}).
		Select("id", "number_plate").
		Order("number_plate").
		Find(&numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

func (r *TruckRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Truck, error) {
	var truck model.Truck
	if err := r.db.WithContext(ctx).First(&truck, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &truck, nil
}

func (r *TruckRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Truck, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Truck{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *TruckRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Truck{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
