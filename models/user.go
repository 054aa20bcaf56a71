package models

import "time"

// User is one profile document. The ID is an opaque uuid string assigned at
// signup and never reused; Email carries a unique index as a backstop for the
// duplicate check done at registration.
type User struct {
	ID                 string    `json:"id" gorm:"primaryKey"`
	Email              string    `json:"email" gorm:"uniqueIndex;not null"`
	Password           string    `json:"-" gorm:"not null"`
	Name               string    `json:"name"`
	Age                *int      `json:"age"`
	HealthGoals        []string  `json:"health_goals" gorm:"serializer:json"`
	DietaryPreferences []string  `json:"dietary_preferences" gorm:"serializer:json"`
	FitnessLevel       string    `json:"fitness_level"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
