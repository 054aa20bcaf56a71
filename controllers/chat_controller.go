package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kunal22-jpg/nutracia-version-1/middlewares"
	"github.com/kunal22-jpg/nutracia-version-1/services"
)

type ChatController struct {
	Svc *services.ChatService
	Log zerolog.Logger
}

func NewChatController(svc *services.ChatService, log zerolog.Logger) *ChatController {
	return &ChatController{Svc: svc, Log: log}
}

type ChatInput struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"user_id" binding:"required"`
}

func (h *ChatController) ChatWithAI(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if middlewares.AuthedUserID(c) != input.UserID {
		forbid(c)
		return
	}

	response, timestamp, err := h.Svc.Converse(c.Request.Context(), input.UserID, input.Message)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "AI response generated",
		"response":  response,
		"timestamp": timestamp,
	})
}
