package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kunal22-jpg/nutracia-version-1/services"
)

// respondError is the single place where service error kinds become HTTP
// status codes. Unrecognized errors are logged with their cause and returned
// as a generic internal error so internals never leak to clients.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

// forbid rejects a request whose token subject does not match the target
// user. Emitted before any store access, regardless of target existence.
func forbid(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
}
