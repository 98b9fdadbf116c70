package model

import "github.com/google/uuid"

// Principal is the authenticated identity resolved from a session token.
// It is passed explicitly into every service operation.
type Principal struct {
	UserID uuid.UUID
	Role   UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == UserRoleAdmin
}

func (p Principal) IsManager() bool {
	return p.Role == UserRoleManager
}

func (p Principal) IsCollector() bool {
	return p.Role == UserRoleCollector
}

// CanReviewCollections reports whether the principal may act on
// special-collection requests (approve, reject, edit, delete).
func (p Principal) CanReviewCollections() bool {
	return p.Role == UserRoleManager || p.Role == UserRoleAdmin
}
