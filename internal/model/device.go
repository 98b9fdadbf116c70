package model

import (
	"time"

	"github.com/google/uuid"
)

type WasteCategory string

const (
	WasteCategoryOrganic    WasteCategory = "organic"
	WasteCategoryRecycle    WasteCategory = "recycle"
	WasteCategoryNonRecycle WasteCategory = "nonRecycle"
)

func (c WasteCategory) Valid() bool {
	switch c {
	case WasteCategoryOrganic, WasteCategoryRecycle, WasteCategoryNonRecycle:
		return true
	}
	return false
}

// WasteLevel is the fill-level snapshot reported by a device, one
// percentage per category.
type WasteLevel struct {
	Organic    int `gorm:"not null" json:"organic"`
	Recycle    int `gorm:"not null" json:"recycle"`
	NonRecycle int `gorm:"not null" json:"nonRecycle"`
}

// Set overwrites the named category, leaving the other two untouched.
func (l *WasteLevel) Set(category WasteCategory, level int) {
	switch category {
	case WasteCategoryOrganic:
		l.Organic = level
	case WasteCategoryRecycle:
		l.Recycle = level
	case WasteCategoryNonRecycle:
		l.NonRecycle = level
	}
}

type Device struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	WasteType  WasteCategory `gorm:"type:waste_category;not null" json:"wasteType"`
	WasteLevel WasteLevel    `gorm:"embedded;embeddedPrefix:level_" json:"wasteLevel"`
	UserID     uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Device) TableName() string {
	return "devices"
}
