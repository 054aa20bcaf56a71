package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kunal22-jpg/nutracia-version-1/models"
)

// UserService reads and updates profile documents. Ownership checks live in
// the controller layer; this service trusts the user id it is given.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Profile returns the stored user document. The password hash never leaves
// the model (json:"-"), so the struct is safe to serialize as-is.
func (s *UserService) Profile(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("load profile: %w", err)
	}
	return user, nil
}

// ProfileUpdate carries a sparse profile edit. A nil field means "leave
// unchanged"; a non-nil field overwrites, including with an empty value.
type ProfileUpdate struct {
	Name               *string   `json:"name"`
	Age                *int      `json:"age"`
	HealthGoals        *[]string `json:"health_goals"`
	DietaryPreferences *[]string `json:"dietary_preferences"`
	FitnessLevel       *string   `json:"fitness_level"`
}

// UpdateProfile applies the fields present in update and stamps updated_at.
// Returns ErrUserNotFound if no row matched.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) error {
	changes := models.User{UpdatedAt: time.Now().UTC()}
	fields := []string{"updated_at"}
	if update.Name != nil {
		changes.Name = *update.Name
		fields = append(fields, "name")
	}
	if update.Age != nil {
		changes.Age = update.Age
		fields = append(fields, "age")
	}
	if update.HealthGoals != nil {
		changes.HealthGoals = *update.HealthGoals
		fields = append(fields, "health_goals")
	}
	if update.DietaryPreferences != nil {
		changes.DietaryPreferences = *update.DietaryPreferences
		fields = append(fields, "dietary_preferences")
	}
	if update.FitnessLevel != nil {
		changes.FitnessLevel = *update.FitnessLevel
		fields = append(fields, "fitness_level")
	}

	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Select(fields).
		Updates(changes)
	if res.Error != nil {
		return fmt.Errorf("update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
