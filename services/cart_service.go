package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kunal22-jpg/nutracia-version-1/models"
)

// CartService stores one cart snapshot per user.
type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Sync replaces the user's cart with items and returns the stored count.
// The write is an upsert keyed on user_id: the previous snapshot is fully
// overwritten, last write wins. Item prices and quantities are not validated.
func (s *CartService) Sync(ctx context.Context, userID string, items []models.CartItem) (int, error) {
	cart := models.Cart{
		UserID:    userID,
		Items:     items,
		UpdatedAt: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(&cart).Error
	if err != nil {
		return 0, fmt.Errorf("sync cart: %w", err)
	}

	return len(items), nil
}

// Get returns the user's cart, or an empty snapshot if none was ever synced.
func (s *CartService) Get(ctx context.Context, userID string) (models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cart{UserID: userID}, nil
		}
		return models.Cart{}, fmt.Errorf("load cart: %w", err)
	}
	return cart, nil
}
