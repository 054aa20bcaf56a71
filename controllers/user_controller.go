package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kunal22-jpg/nutracia-version-1/middlewares"
	"github.com/kunal22-jpg/nutracia-version-1/services"
)

type UserController struct {
	Svc *services.UserService
	Log zerolog.Logger
}

func NewUserController(svc *services.UserService, log zerolog.Logger) *UserController {
	return &UserController{Svc: svc, Log: log}
}

func (h *UserController) GetProfile(c *gin.Context) {
	userID := c.Param("user_id")
	if middlewares.AuthedUserID(c) != userID {
		forbid(c)
		return
	}

	profile, err := h.Svc.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserController) UpdateProfile(c *gin.Context) {
	userID := c.Param("user_id")
	if middlewares.AuthedUserID(c) != userID {
		forbid(c)
		return
	}

	var update services.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.Svc.UpdateProfile(c.Request.Context(), userID, update); err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
