package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kunal22-jpg/nutracia-version-1/middlewares"
	"github.com/kunal22-jpg/nutracia-version-1/services"
)

type DashboardController struct {
	Svc *services.DashboardService
	Log zerolog.Logger
}

func NewDashboardController(svc *services.DashboardService, log zerolog.Logger) *DashboardController {
	return &DashboardController{Svc: svc, Log: log}
}

func (h *DashboardController) GetDashboard(c *gin.Context) {
	userID := c.Param("user_id")
	if middlewares.AuthedUserID(c) != userID {
		forbid(c)
		return
	}

	summary, err := h.Svc.Build(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
