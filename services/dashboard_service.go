package services

import (
	"context"
	"fmt"
	"time"
)

const dailyTip = "Stay hydrated! Aim for 8 glasses of water daily for optimal wellness."

// recentChatWindow caps how many chat records the dashboard counts.
const recentChatWindow = 5

// DashboardSummary is the read-side view assembled from the user, chat, and
// cart stores.
type DashboardSummary struct {
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	HealthGoals    []string  `json:"health_goals"`
	RecentChats    int       `json:"recent_chats"`
	CartItemsCount int       `json:"cart_items_count"`
	DailyTip       string    `json:"daily_tip"`
	LastUpdated    time.Time `json:"last_updated"`
}

// DashboardService composes a summary view. It performs no writes.
type DashboardService struct {
	users *UserService
	chats *ChatService
	carts *CartService
}

func NewDashboardService(users *UserService, chats *ChatService, carts *CartService) *DashboardService {
	return &DashboardService{users: users, chats: chats, carts: carts}
}

// Build assembles the summary for userID. Returns ErrUserNotFound if the
// profile is missing. The chat count never exceeds recentChatWindow.
func (s *DashboardService) Build(ctx context.Context, userID string) (DashboardSummary, error) {
	user, err := s.users.Profile(ctx, userID)
	if err != nil {
		return DashboardSummary{}, err
	}

	recent, err := s.chats.History(ctx, userID, recentChatWindow)
	if err != nil {
		return DashboardSummary{}, err
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("load cart: %w", err)
	}

	name := user.Name
	if name == "" {
		name = "User"
	}

	return DashboardSummary{
		UserID:         userID,
		Name:           name,
		HealthGoals:    user.HealthGoals,
		RecentChats:    len(recent),
		CartItemsCount: len(cart.Items),
		DailyTip:       dailyTip,
		LastUpdated:    time.Now().UTC(),
	}, nil
}
