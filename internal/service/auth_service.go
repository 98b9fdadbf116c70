package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"waste-service/internal/auth"
	"waste-service/internal/model"
)

type AuthService struct {
	users  UserStore
	tokens *auth.Manager
}

func NewAuthService(users UserStore, tokens *auth.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type SignUpInput struct {
	Username string
	Email    string
	Password string
	Role     model.UserRole
}

func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) error {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return invalid("All fields are required")
	}

	role := input.Role
	if role == "" {
		role = model.UserRoleUser
	}
	if !role.Valid() {
		return invalid("Invalid role")
	}

	exists, err := s.users.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return err
	}
	if exists {
		return conflict("User already exists")
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique indexes catch signups racing past the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return conflict("User already exists")
		}
		return err
	}
	return nil
}

// SignIn verifies the credentials and returns the matched user together
// with a signed session token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", invalid("All fields are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", notFound("User not found")
		}
		return nil, "", err
	}

	if err := auth.CheckPassword(password, user.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, "", unauthorized("Invalid password")
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
