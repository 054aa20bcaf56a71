package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kunal22-jpg/nutracia-version-1/services"
)

type AuthController struct {
	Svc *services.AuthService
	Log zerolog.Logger
}

func NewAuthController(svc *services.AuthService, log zerolog.Logger) *AuthController {
	return &AuthController{Svc: svc, Log: log}
}

type SignupInput struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required"`
	Name        string   `json:"name"`
	Age         *int     `json:"age"`
	HealthGoals []string `json:"health_goals"`
}

func (h *AuthController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID, token, err := h.Svc.Register(c.Request.Context(), services.RegisterInput{
		Email:       input.Email,
		Password:    input.Password,
		Name:        input.Name,
		Age:         input.Age,
		HealthGoals: input.HealthGoals,
	})
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "User created successfully",
		"user_id":      userID,
		"access_token": token,
		"token_type":   "bearer",
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID, token, err := h.Svc.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"user_id":      userID,
		"access_token": token,
		"token_type":   "bearer",
	})
}
