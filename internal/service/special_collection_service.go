package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"waste-service/internal/model"
)

// SpecialCollectionService owns the ad-hoc pickup workflow: users file
// requests, managers review them through the Pending → Approved/Rejected
// status lifecycle.
type SpecialCollectionService struct {
	collections SpecialCollectionStore
	users       UserStore
	now         func() time.Time
}

func NewSpecialCollectionService(collections SpecialCollectionStore, users UserStore) *SpecialCollectionService {
	return &SpecialCollectionService{
		collections: collections,
		users:       users,
		now:         time.Now,
	}
}

type CreateCollectionInput struct {
	WasteType           string
	ChooseDate          string
	WasteDescription    string
	EmergencyCollection bool
	UserID              uuid.UUID
}

// Create files a new request. The status is forced to Pending no matter
// what the caller supplied.
func (s *SpecialCollectionService) Create(ctx context.Context, input CreateCollectionInput) (*model.SpecialCollectionRecord, error) {
	wasteType := strings.TrimSpace(input.WasteType)
	description := strings.TrimSpace(input.WasteDescription)
	if wasteType == "" || input.ChooseDate == "" || description == "" || input.UserID == uuid.Nil {
		return nil, invalid("All required fields must be filled.")
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User not found.")
		}
		return nil, err
	}

	chooseDate, err := s.parseFutureDate(input.ChooseDate)
	if err != nil {
		return nil, err
	}

	collection := &model.SpecialCollection{
		WasteType:           wasteType,
		ChooseDate:          chooseDate,
		WasteDescription:    description,
		EmergencyCollection: input.EmergencyCollection,
		Status:              model.CollectionStatusPending,
		UserID:              user.ID,
	}
	if err := s.collections.Create(ctx, collection); err != nil {
		return nil, err
	}

	collection.User = user
	record := model.NewSpecialCollectionRecord(*collection)
	return &record, nil
}

func (s *SpecialCollectionService) List(ctx context.Context) ([]model.SpecialCollectionRecord, error) {
	collections, err := s.collections.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]model.SpecialCollectionRecord, 0, len(collections))
	for _, collection := range collections {
		records = append(records, model.NewSpecialCollectionRecord(collection))
	}
	return records, nil
}

func (s *SpecialCollectionService) Get(ctx context.Context, id uuid.UUID) (*model.SpecialCollectionRecord, error) {
	collection, err := s.collections.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Collection not found.")
		}
		return nil, err
	}
	record := model.NewSpecialCollectionRecord(*collection)
	return &record, nil
}

type UpdateCollectionInput struct {
	WasteType           *string
	ChooseDate          *string
	WasteDescription    *string
	EmergencyCollection *bool
	Status              *string
}

// Update applies a partial edit. Manager review rights are required on
// every mutation of a filed request, and the date rules match creation.
func (s *SpecialCollectionService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, input UpdateCollectionInput) (*model.SpecialCollectionRecord, error) {
	if !principal.CanReviewCollections() {
		return nil, denied("Access denied: Managers only")
	}

	fields := map[string]interface{}{}
	if input.WasteType != nil {
		fields["waste_type"] = strings.TrimSpace(*input.WasteType)
	}
	if input.ChooseDate != nil {
		chooseDate, err := s.parseFutureDate(*input.ChooseDate)
		if err != nil {
			return nil, err
		}
		fields["choose_date"] = chooseDate
	}
	if input.WasteDescription != nil {
		fields["waste_description"] = strings.TrimSpace(*input.WasteDescription)
	}
	if input.EmergencyCollection != nil {
		fields["emergency_collection"] = *input.EmergencyCollection
	}
	if input.Status != nil {
		status, err := parseStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		fields["status"] = status
	}
	if len(fields) == 0 {
		return nil, invalid("No fields to update.")
	}

	collection, err := s.collections.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Collection not found.")
		}
		return nil, err
	}
	record := model.NewSpecialCollectionRecord(*collection)
	return &record, nil
}

// UpdateStatus is the narrow review transition used by the approval
// screen. Only the three known statuses are accepted.
func (s *SpecialCollectionService) UpdateStatus(ctx context.Context, principal model.Principal, id uuid.UUID, status string) (*model.SpecialCollectionRecord, error) {
	if !principal.CanReviewCollections() {
		return nil, denied("Access denied: Managers only")
	}
	if strings.TrimSpace(status) == "" {
		return nil, invalid("Status is required.")
	}

	parsed, err := parseStatus(status)
	if err != nil {
		return nil, err
	}

	collection, err := s.collections.Update(ctx, id, map[string]interface{}{"status": parsed})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Collection not found.")
		}
		return nil, err
	}
	record := model.NewSpecialCollectionRecord(*collection)
	return &record, nil
}

func (s *SpecialCollectionService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.CanReviewCollections() {
		return denied("Access denied: Managers only")
	}
	if err := s.collections.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Collection not found.")
		}
		return err
	}
	return nil
}

// parseFutureDate accepts a calendar date or an RFC3339 timestamp and
// rejects anything before today's local midnight.
func (s *SpecialCollectionService) parseFutureDate(value string) (time.Time, error) {
	parsed, err := parseDate(value)
	if err != nil {
		return time.Time{}, invalid("Invalid date format.")
	}
	today := startOfDay(s.now())
	if startOfDay(parsed.In(time.Local)).Before(today) {
		return time.Time{}, invalid("Choose date must be today or in the future.")
	}
	return parsed, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func parseStatus(value string) (model.CollectionStatus, error) {
	status := model.CollectionStatus(strings.TrimSpace(value))
	if !status.Valid() {
		return "", invalidStatus("Status must be 'Pending', 'Approved', or 'Rejected'")
	}
	return status, nil
}
