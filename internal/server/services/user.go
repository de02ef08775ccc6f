// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification, token
// issuance and profile access.
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
	"github.com/google/uuid"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserService provides authentication-related operations:
// - Register: create users (validates and hashes the password)
// - Login: verify credentials and mint a token
// - GetProfile / UpdateName: profile access, never exposing the hash
type UserService struct {
	users         users.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using the credential repository and
// server config.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		users:         repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register validates the input, derives a salted hash from password and
// stores the new user. The raw password is discarded immediately after
// hashing. A duplicate email yields common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	u, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: email already exists", common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies email/password against the stored hash and, on success,
// returns the user together with a freshly signed token. A missing email
// yields common.ErrNotFound, a wrong password common.ErrUnauthorized; the
// two are reported with distinct messages, matching the original API.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: email is not found", common.ErrNotFound)
		}
		return nil, "", common.ErrInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", fmt.Errorf("%w: invalid password", common.ErrUnauthorized)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrInternal
	}

	return user, token, nil
}

// GetProfile returns the user record for userID.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateName changes the user's display name. Email and password are
// immutable through this service.
func (s *UserService) UpdateName(ctx context.Context, userID, name string) (*models.User, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", common.ErrValidation)
	}
	return s.users.UpdateName(ctx, userID, name)
}

func validateRegistration(name, email, password string) error {
	if len(name) < 3 {
		return fmt.Errorf("%w: name must be at least 3 characters", common.ErrValidation)
	}
	if len(email) < 6 || !emailRe.MatchString(email) {
		return fmt.Errorf("%w: email must be a valid address", common.ErrValidation)
	}
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", common.ErrValidation)
	}
	return nil
}
