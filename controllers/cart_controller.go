package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kunal22-jpg/nutracia-version-1/middlewares"
	"github.com/kunal22-jpg/nutracia-version-1/models"
	"github.com/kunal22-jpg/nutracia-version-1/services"
)

type CartController struct {
	Svc *services.CartService
	Log zerolog.Logger
}

func NewCartController(svc *services.CartService, log zerolog.Logger) *CartController {
	return &CartController{Svc: svc, Log: log}
}

type CartSyncInput struct {
	UserID string            `json:"user_id" binding:"required"`
	Items  []models.CartItem `json:"items"`
}

func (h *CartController) SyncCart(c *gin.Context) {
	var input CartSyncInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if middlewares.AuthedUserID(c) != input.UserID {
		forbid(c)
		return
	}

	count, err := h.Svc.Sync(c.Request.Context(), input.UserID, input.Items)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Cart synced successfully",
		"items_count": count,
	})
}
