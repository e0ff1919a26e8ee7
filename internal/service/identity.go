package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/VanaBlak/vana-boutique-main/internal/hash"
	"github.com/VanaBlak/vana-boutique-main/internal/logging"
	"github.com/VanaBlak/vana-boutique-main/internal/models"
	"github.com/VanaBlak/vana-boutique-main/internal/repo"
)

type IdentityService struct {
	Repo *repo.GormRepo
}

func (s *IdentityService) Register(ctx context.Context, firstName, lastName, username, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "identity.register")

	if firstName == "" || lastName == "" || username == "" || password == "" {
		return nil, fmt.Errorf("first name, last name, username and password are required: %w", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		PasswordHash: pwHash,
		Role:         "user",
	}
	if err := s.Repo.CreateUserIfNotExists(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			l.Warn("register_conflict", "username", username)
			return nil, fmt.Errorf("username already taken: %w", ErrConflict)
		}
		l.Error("register_error", "error", err)
		return nil, err
	}

	l.Info("user registered", "user_id", user.ID, "username", user.Username)
	return &user, nil
}

// Authenticate reports the same failure for an unknown username and a wrong
// password.
func (s *IdentityService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "identity.authenticate", "username", username)

	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("auth_failed")
			return nil, ErrAuthFailure
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("auth_failed")
		return nil, ErrAuthFailure
	}
	return user, nil
}

func (s *IdentityService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}
