package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/kunal22-jpg/nutracia-version-1/models"
)

// ChatService forwards a user's message plus profile context to the
// generation service and records the exchange.
type ChatService struct {
	db  *gorm.DB
	gen Generator
	log zerolog.Logger
}

func NewChatService(db *gorm.DB, gen Generator, log zerolog.Logger) *ChatService {
	return &ChatService{db: db, gen: gen, log: log}
}

// Converse builds a context-injected prompt for userID's message, awaits the
// generated reply, persists the pair, and returns the reply with its
// timestamp. Returns ErrUserNotFound if the profile is missing; a generation
// failure propagates as-is and nothing is persisted.
func (s *ChatService) Converse(ctx context.Context, userID, message string) (string, time.Time, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", time.Time{}, ErrUserNotFound
		}
		return "", time.Time{}, fmt.Errorf("load user: %w", err)
	}

	prompt := buildPrompt(user, message)

	response, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate response: %w", err)
	}

	now := time.Now().UTC()
	record := models.ChatMessage{
		UserID:      userID,
		UserMessage: message,
		AIResponse:  response,
		Timestamp:   now,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return "", time.Time{}, fmt.Errorf("save chat record: %w", err)
	}

	s.log.Info().Str("user_id", userID).Msg("chat exchange recorded")
	return response, now, nil
}

// History returns up to limit chat records for userID, newest first.
func (s *ChatService) History(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error) {
	var records []models.ChatMessage
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}
	return records, nil
}

func buildPrompt(user models.User, message string) string {
	name := user.Name
	if name == "" {
		name = "User"
	}
	age := "Not specified"
	if user.Age != nil {
		age = fmt.Sprintf("%d", *user.Age)
	}
	fitness := user.FitnessLevel
	if fitness == "" {
		fitness = "Not specified"
	}

	var sb strings.Builder
	sb.WriteString("You are Nutracía, an intelligent medical-grade AI wellness companion.\n")
	sb.WriteString("You provide evidence-based guidance on nutrition, skincare, and fitness.\n\n")
	sb.WriteString("User Context:\n")
	sb.WriteString("- Name: " + name + "\n")
	sb.WriteString("- Age: " + age + "\n")
	sb.WriteString("- Health Goals: " + strings.Join(user.HealthGoals, ", ") + "\n")
	sb.WriteString("- Dietary Preferences: " + strings.Join(user.DietaryPreferences, ", ") + "\n")
	sb.WriteString("- Fitness Level: " + fitness + "\n\n")
	sb.WriteString("Always provide professional, evidence-based advice. If the question is outside your scope or requires medical diagnosis, recommend consulting a healthcare professional.\n\n")
	sb.WriteString("User Question: " + message)
	return sb.String()
}
