package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ScheduleStatus string

const (
	ScheduleStatusNotDone ScheduleStatus = "not-done"
	ScheduleStatusDone    ScheduleStatus = "done"
)

func (s ScheduleStatus) Valid() bool {
	return s == ScheduleStatusNotDone || s == ScheduleStatusDone
}

type Schedule struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Time        time.Time      `gorm:"not null" json:"time"`
	Address     string         `gorm:"type:text;not null" json:"address"`
	TruckNumber string         `gorm:"type:varchar(32);not null" json:"truckNumber"`
	Collector   string         `gorm:"type:varchar(64)" json:"collector"`
	Special     bool           `gorm:"not null;default:false" json:"special"`
	Status      ScheduleStatus `gorm:"type:schedule_status;not null;default:'not-done'" json:"status"`
	Weight      *float64       `json:"weight,omitempty"`
	WasteType   *string        `gorm:"type:varchar(64)" json:"wasteType,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// District derives the district key from the address: the last
// comma-separated segment, trimmed.
func (s Schedule) District() string {
	parts := strings.Split(s.Address, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}
