package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser      UserRole = "user"
	UserRoleManager   UserRole = "manager"
	UserRoleCollector UserRole = "collector"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleManager, UserRoleCollector, UserRoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Username    string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"username"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password    string    `gorm:"type:varchar(255);not null" json:"-"`
	Role        UserRole  `gorm:"type:user_role;not null;default:'user'" json:"role"`
	Phone       string    `gorm:"type:varchar(32)" json:"phone"`
	Address     string    `gorm:"type:text" json:"address"`
	NIC         string    `gorm:"column:nic;type:varchar(32)" json:"nic"`
	IsCompleted bool      `gorm:"not null;default:false" json:"isCompleted"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
