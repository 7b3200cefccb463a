package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/naludev/cohabitdb/model"
	"github.com/naludev/cohabitdb/services"
	"github.com/naludev/cohabitdb/utils"
)

type UserService struct {
	Users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{Users: users}
}

// Register creates a user with a hashed password. Email and username
// must be unique; the pre-checks here give friendly errors, and the
// unique indexes catch the race where two registrations slip past
// them simultaneously.
func (s *UserService) Register(ctx context.Context, email, password, username, name, lastname string) (*model.User, error) {
	existing, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	existing, err = s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		UserID:        utils.NewID(),
		Email:         email,
		Password:      hashed,
		Username:      username,
		Name:          name,
		Lastname:      lastname,
		Groups:        []string{},
		Notifications: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user registered", "user_id", user.UserID, "username", username)
	return user, nil
}

// Authenticate verifies email and password. Unknown email and wrong
// password collapse into the same error so callers cannot enumerate
// accounts through the failure message.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	match, err := services.VerifyPassword(user.Password, password)
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) UserByID(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdatePushToken stores the device push token delivered at login.
func (s *UserService) UpdatePushToken(ctx context.Context, userID, token string) error {
	return s.Users.SetPushToken(ctx, userID, token)
}
