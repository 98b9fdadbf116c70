package service

import (
	"context"

	"github.com/google/uuid"

	"waste-service/internal/model"
)

// Store interfaces are declared on the consumer side; the gorm
// repositories satisfy them, tests substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	ListByRole(ctx context.Context, role model.UserRole) ([]model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, phone, address, nic string) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DeviceStore interface {
	Create(ctx context.Context, device *model.Device) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Device, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.Device, error)
	ListAll(ctx context.Context) ([]model.Device, error)
	Save(ctx context.Context, device *model.Device) error
}

type TruckStore interface {
	Create(ctx context.Context, truck *model.Truck) error
	List(ctx context.Context) ([]model.Truck, error)
	ListNumbers(ctx context.Context) ([]model.TruckNumber, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Truck, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Truck, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ScheduleStore interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	List(ctx context.Context) ([]model.Schedule, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Schedule, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SpecialCollectionStore interface {
	Create(ctx context.Context, collection *model.SpecialCollection) error
	List(ctx context.Context) ([]model.SpecialCollection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.SpecialCollection, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.SpecialCollection, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
