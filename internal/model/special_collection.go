package model

import (
	"time"

	"github.com/google/uuid"
)

type CollectionStatus string

const (
	CollectionStatusPending  CollectionStatus = "Pending"
	CollectionStatusApproved CollectionStatus = "Approved"
	CollectionStatusRejected CollectionStatus = "Rejected"
)

func (s CollectionStatus) Valid() bool {
	switch s {
	case CollectionStatusPending, CollectionStatusApproved, CollectionStatusRejected:
		return true
	}
	return false
}

// SpecialCollection is an ad-hoc, user-requested pickup outside the
// regular schedule, reviewed by a manager.
type SpecialCollection struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	WasteType           string           `gorm:"type:varchar(64);not null" json:"wasteType"`
	ChooseDate          time.Time        `gorm:"not null" json:"chooseDate"`
	WasteDescription    string           `gorm:"type:text;not null" json:"wasteDescription"`
	EmergencyCollection bool             `gorm:"not null;default:false" json:"emergencyCollection"`
	Status              CollectionStatus `gorm:"type:collection_status;not null;default:'Pending'" json:"status"`
	UserID              uuid.UUID        `gorm:"type:uuid;not null" json:"userId"`
	CreatedAt           time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (SpecialCollection) TableName() string {
	return "special_collections"
}
