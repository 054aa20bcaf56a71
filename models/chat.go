package models

import "time"

// ChatMessage is one user message / AI response pair. Records are append-only
// and ordered by Timestamp for retrieval.
type ChatMessage struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	UserMessage string    `json:"user_message"`
	AIResponse  string    `json:"ai_response"`
	Timestamp   time.Time `json:"timestamp"`
}
