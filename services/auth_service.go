package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/kunal22-jpg/nutracia-version-1/models"
	"github.com/kunal22-jpg/nutracia-version-1/utils"
)

// AuthService handles signup and login. It owns the token secret and TTL so
// that callers never touch the raw signing key.
type AuthService struct {
	db       *gorm.DB
	secret   []byte
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewAuthService(db *gorm.DB, secret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	return &AuthService{db: db, secret: []byte(secret), tokenTTL: tokenTTL, log: log}
}

// RegisterInput carries the signup payload. Optional profile fields may be
// omitted and default to empty.
type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	Age         *int
	HealthGoals []string
}

// Register creates a new user and issues a session token.
// Returns ErrEmailTaken if the email is already registered.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (string, string, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		return "", "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", fmt.Errorf("look up email: %w", err)
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return "", "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:          uuid.NewString(),
		Email:       input.Email,
		Password:    hashed,
		Name:        input.Name,
		Age:         input.Age,
		HealthGoals: input.HealthGoals,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// The unique index catches the race where two signups pass the
		// lookup above with the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", "", ErrEmailTaken
		}
		return "", "", fmt.Errorf("create user: %w", err)
	}

	token, err := utils.GenerateJWT(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return "", "", fmt.Errorf("generate token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return user.ID, token, nil
}

// Login verifies credentials and issues a fresh token.
// Returns ErrInvalidCredentials for an unknown email or a failed password
// check; the two cases are not distinguished to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return "", "", fmt.Errorf("generate token: %w", err)
	}

	return user.ID, token, nil
}
