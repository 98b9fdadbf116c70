package http

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"waste-service/internal/model"
)

// In-memory stores backing the end-to-end router tests. They satisfy
// the service store interfaces the same way the gorm repositories do,
// including duplicate-key signalling.

type memUserStore struct {
	users map[uuid.UUID]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]*model.User)}
}

func (s *memUserStore) Create(_ context.Context, user *model.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = user
	return nil
}

func (s *memUserStore) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memUserStore) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for _, user := range s.users {
		if user.Email == email || user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUserStore) ListByRole(_ context.Context, role model.UserRole) ([]model.User, error) {
	var users []model.User
	for _, user := range s.users {
		if user.Role == role {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (s *memUserStore) UpdateProfile(_ context.Context, id uuid.UUID, phone, address, nic string) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	user.Phone = phone
	user.Address = address
	user.NIC = nic
	user.IsCompleted = true
	return user, nil
}

func (s *memUserStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.users, id)
	return nil
}

type memDeviceStore struct {
	devices map[uuid.UUID]*model.Device
}

func newMemDeviceStore() *memDeviceStore {
	return &memDeviceStore{devices: make(map[uuid.UUID]*model.Device)}
}

func (s *memDeviceStore) Create(_ context.Context, device *model.Device) error {
	if _, ok := s.devices[device.UserID]; ok {
		return gorm.ErrDuplicatedKey
	}
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	stored := *device
	s.devices[device.UserID] = &stored
	return nil
}

func (s *memDeviceStore) GetByUserID(_ context.Context, userID uuid.UUID) (*model.Device, error) {
	device, ok := s.devices[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *device
	return &copied, nil
}

func (s *memDeviceStore) ListByUserID(_ context.Context, userID uuid.UUID) ([]model.Device, error) {
	if device, ok := s.devices[userID]; ok {
		return []model.Device{*device}, nil
	}
	return nil, nil
}

func (s *memDeviceStore) ListAll(_ context.Context) ([]model.Device, error) {
	var devices []model.Device
	for _, device := range s.devices {
		devices = append(devices, *device)
	}
	return devices, nil
}

func (s *memDeviceStore) Save(_ context.Context, device *model.Device) error {
	stored := *device
	s.devices[device.UserID] = &stored
	return nil
}

type memTruckStore struct {
	trucks map[uuid.UUID]*model.Truck
}

func newMemTruckStore() *memTruckStore {
	return &memTruckStore{trucks: make(map[uuid.UUID]*model.Truck)}
}

func (s *memTruckStore) Create(_ context.Context, truck *model.Truck) error {
	for _, existing := range s.trucks {
		if existing.NumberPlate == truck.NumberPlate {
			return gorm.ErrDuplicatedKey
		}
	}
	if truck.ID == uuid.Nil {
		truck.ID = uuid.New()
	}
	s.trucks[truck.ID] = truck
	return nil
}

func (s *memTruckStore) List(_ context.Context) ([]model.Truck, error) {
	var trucks []model.Truck
	for _, truck := range s.trucks {
		trucks = append(trucks, *truck)
	}
	return trucks, nil
}

func (s *memTruckStore) ListNumbers(_ context.Context) ([]model.TruckNumber, error) {
	var numbers []model.TruckNumber
	for _, truck := range s.trucks {
		numbers = append(numbers, model.TruckNumber{ID: truck.ID, NumberPlate: truck.NumberPlate})
	}
	return numbers, nil
}

func (s *memTruckStore) GetByID(_ context.Context, id uuid.UUID) (*model.Truck, error) {
	truck, ok := s.trucks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *truck
	return &copied, nil
}

func (s *memTruckStore) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Truck, error) {
	truck, ok := s.trucks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if brand, ok := fields["brand"].(string); ok {
		truck.Brand = brand
	}
	if plate, ok := fields["number_plate"].(string); ok {
		truck.NumberPlate = plate
	}
	if capacity, ok := fields["capacity"].(int); ok {
		truck.Capacity = capacity
	}
	copied := *truck
	return &copied, nil
}

func (s *memTruckStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.trucks[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.trucks, id)
	return nil
}

type memScheduleStore struct {
	schedules map[uuid.UUID]*model.Schedule
}

func newMemScheduleStore() *memScheduleStore {
	return &memScheduleStore{schedules: make(map[uuid.UUID]*model.Schedule)}
}

func (s *memScheduleStore) Create(_ context.Context, schedule *model.Schedule) error {
	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}
	stored := *schedule
	s.schedules[schedule.ID] = &stored
	return nil
}

func (s *memScheduleStore) List(_ context.Context) ([]model.Schedule, error) {
	var schedules []model.Schedule
	for _, schedule := range s.schedules {
		schedules = append(schedules, *schedule)
	}
	return schedules, nil
}

func (s *memScheduleStore) GetByID(_ context.Context, id uuid.UUID) (*model.Schedule, error) {
	schedule, ok := s.schedules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *schedule
	return &copied, nil
}

func (s *memScheduleStore) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Schedule, error) {
	schedule, ok := s.schedules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "time":
			schedule.Time = value.(time.Time)
		case "address":
			schedule.Address = value.(string)
		case "truck_number":
			schedule.TruckNumber = value.(string)
		case "collector":
			schedule.Collector = value.(string)
		case "special":
			schedule.Special = value.(bool)
		case "status":
			schedule.Status = value.(model.ScheduleStatus)
		case "weight":
			weight := value.(float64)
			schedule.Weight = &weight
		case "waste_type":
			wasteType := value.(string)
			schedule.WasteType = &wasteType
		}
	}
	copied := *schedule
	return &copied, nil
}

func (s *memScheduleStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.schedules[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.schedules, id)
	return nil
}

type memCollectionStore struct {
	collections map[uuid.UUID]*model.SpecialCollection
	users       *memUserStore
}

func newMemCollectionStore(users *memUserStore) *memCollectionStore {
	return &memCollectionStore{
		collections: make(map[uuid.UUID]*model.SpecialCollection),
		users:       users,
	}
}

func (s *memCollectionStore) Create(_ context.Context, collection *model.SpecialCollection) error {
	if collection.ID == uuid.Nil {
		collection.ID = uuid.New()
	}
	stored := *collection
	s.collections[collection.ID] = &stored
	return nil
}

func (s *memCollectionStore) List(_ context.Context) ([]model.SpecialCollection, error) {
	var collections []model.SpecialCollection
	for _, collection := range s.collections {
		collections = append(collections, s.withUser(*collection))
	}
	return collections, nil
}

func (s *memCollectionStore) GetByID(_ context.Context, id uuid.UUID) (*model.SpecialCollection, error) {
	collection, ok := s.collections[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	expanded := s.withUser(*collection)
	return &expanded, nil
}

func (s *memCollectionStore) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.SpecialCollection, error) {
	collection, ok := s.collections[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "waste_type":
			collection.WasteType = value.(string)
		case "waste_description":
			collection.WasteDescription = value.(string)
		case "emergency_collection":
			collection.EmergencyCollection = value.(bool)
		case "status":
			collection.Status = value.(model.CollectionStatus)
		case "choose_date":
			collection.ChooseDate = value.(time.Time)
		}
	}
	return s.GetByID(ctx, id)
}

func (s *memCollectionStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.collections[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.collections, id)
	return nil
}

func (s *memCollectionStore) withUser(collection model.SpecialCollection) model.SpecialCollection {
	if user, ok := s.users.users[collection.UserID]; ok {
		collection.User = user
	}
	return collection
}
