package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kunal22-jpg/nutracia-version-1/models"
)

func newDashboardService(t *testing.T) (*DashboardService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	users := NewUserService(db)
	chats := NewChatService(db, &fakeGenerator{reply: "ok"}, zerolog.Nop())
	carts := NewCartService(db)
	return NewDashboardService(users, chats, carts), db
}

func seedChats(t *testing.T, db *gorm.DB, userID string, n int) {
	t.Helper()
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&models.ChatMessage{
			UserID:      userID,
			UserMessage: fmt.Sprintf("question %d", i),
			AIResponse:  fmt.Sprintf("answer %d", i),
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}
}

func TestDashboardBuild(t *testing.T) {
	svc, db := newDashboardService(t)
	seedUser(t, db)
	seedChats(t, db, "user-1", 3)

	_, err := NewCartService(db).Sync(context.Background(), "user-1", []models.CartItem{
		{ProductName: "Green Tea", Category: "beverages", Price: 4.50, Quantity: 2},
	})
	require.NoError(t, err)

	summary, err := svc.Build(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", summary.UserID)
	assert.Equal(t, "Ada", summary.Name)
	assert.Equal(t, []string{"lose weight"}, summary.HealthGoals)
	assert.Equal(t, 3, summary.RecentChats)
	assert.Equal(t, 1, summary.CartItemsCount)
	assert.NotEmpty(t, summary.DailyTip)
	assert.False(t, summary.LastUpdated.IsZero())
}

func TestDashboardRecentChatsCapped(t *testing.T) {
	svc, db := newDashboardService(t)
	seedUser(t, db)
	seedChats(t, db, "user-1", 9)

	summary, err := svc.Build(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 5, summary.RecentChats)
}

func TestDashboardMissingUser(t *testing.T) {
	svc, _ := newDashboardService(t)

	_, err := svc.Build(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDashboardDefaults(t *testing.T) {
	svc, db := newDashboardService(t)
	require.NoError(t, db.Create(&models.User{
		ID:       "bare",
		Email:    "bare@x.com",
		Password: "hashed",
	}).Error)

	summary, err := svc.Build(context.Background(), "bare")
	require.NoError(t, err)
	assert.Equal(t, "User", summary.Name)
	assert.Equal(t, 0, summary.RecentChats)
	assert.Equal(t, 0, summary.CartItemsCount)
}
