package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"waste-service/internal/model"
)

type SpecialCollectionRepository struct {
	db *gorm.DB
}

func NewSpecialCollectionRepository(db *gorm.DB) *SpecialCollectionRepository {
	return &SpecialCollectionRepository{db: db}
}

func (r *SpecialCollectionRepository) Create(ctx context.Context, collection *model.SpecialCollection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *SpecialCollectionRepository) List(ctx context.Context) ([]model.SpecialCollection, error) {
	var collections []model.SpecialCollection
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *SpecialCollectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.SpecialCollection, error) {
	var collection model.SpecialCollection
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&collection, "special_collections.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *SpecialCollectionRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.SpecialCollection, error) {
	result := r.db.WithContext(ctx).
		Model(&model.SpecialCollection{}).
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

func (r *SpecialCollectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SpecialCollection{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
