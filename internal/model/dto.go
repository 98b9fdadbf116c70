package model

import "github.com/google/uuid"

type UserBrief struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// SpecialCollectionRecord is the read shape of a request: the entity
// plus the owning user expanded for display.
type SpecialCollectionRecord struct {
	SpecialCollection
	User *UserBrief `json:"user"`
}

func NewSpecialCollectionRecord(c SpecialCollection) SpecialCollectionRecord {
	record := SpecialCollectionRecord{SpecialCollection: c}
	if c.User != nil {
		record.User = &UserBrief{
			ID:       c.User.ID,
			Username: c.User.Username,
			Email:    c.User.Email,
		}
	}
	record.SpecialCollection.User = nil
	return record
}
