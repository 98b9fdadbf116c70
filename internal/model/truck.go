package model

import (
	"time"

	"github.com/google/uuid"
)

type Truck struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Brand       string    `gorm:"type:varchar(64);not null" json:"brand"`
	NumberPlate string    `gorm:"type:varchar(32);not null;uniqueIndex" json:"numberPlate"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Truck) TableName() string {
	return "trucks"
}

// TruckNumber is the trimmed projection used by schedule dropdowns.
type TruckNumber struct {
	ID          uuid.UUID `json:"id"`
	NumberPlate string    `json:"numberPlate"`
}
