package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kunal22-jpg/nutracia-version-1/models"
)

// newTestDB opens an in-memory sqlite database migrated with the same models
// the postgres store uses. Connections are capped at one so every query sees
// the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Cart{},
		&models.ChatMessage{},
	))
	return db
}

// fakeGenerator records the last prompt and returns a canned reply or error.
type fakeGenerator struct {
	lastPrompt string
	reply      string
	err        error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
