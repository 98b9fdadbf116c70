package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"waste-service/internal/auth"
	"waste-service/internal/model"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

type AddUserInput struct {
	Username string
	Email    string
	NIC      string
	Phone    string
	Address  string
}

// Add creates a staff account. The password is bootstrapped from the
// national-id value; the user is expected to change it after first
// signin.
func (s *UserService) Add(ctx context.Context, principal model.Principal, role model.UserRole, input AddUserInput) (*model.User, error) {
	if !principal.IsAdmin() {
		return nil, denied("You are not allowed to add a user")
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	nic := strings.TrimSpace(input.NIC)
	if username == "" || email == "" || nic == "" || input.Phone == "" || input.Address == "" {
		return nil, invalid("All fields are required")
	}

	if role != model.UserRoleCollector && role != model.UserRoleManager {
		return nil, invalid("Invalid or missing role")
	}

	exists, err := s.users.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflict("User with this email or username already exists")
	}

	hashed, err := auth.HashPassword(nic)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     role,
		Phone:    input.Phone,
		Address:  input.Address,
		NIC:      nic,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("User with this email or username already exists")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListByRole(ctx context.Context, principal model.Principal, role model.UserRole) ([]model.User, error) {
	if !principal.IsAdmin() {
		return nil, denied("You are not allowed to access this resource")
	}
	if role == "" {
		return nil, invalid("Role is required")
	}

	users, err := s.users.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, notFound(fmt.Sprintf("No users found for role: %s", role))
	}
	return users, nil
}

// CompleteProfile is self-service only: the path user id must match the
// authenticated principal.
func (s *UserService) CompleteProfile(ctx context.Context, principal model.Principal, userID uuid.UUID, phone, address, nic string) (*model.User, error) {
	if principal.UserID != userID {
		return nil, denied("You are not allowed to update this user")
	}
	if phone == "" || address == "" || nic == "" {
		return nil, invalid("Phone, address, and NIC are required")
	}

	user, err := s.users.UpdateProfile(ctx, userID, phone, address, nic)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, principal model.Principal, userID uuid.UUID) error {
	if !principal.IsAdmin() {
		return denied("You are not allowed to delete a user")
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("User not found")
		}
		return err
	}
	return nil
}
