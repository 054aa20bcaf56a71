package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kunal22-jpg/nutracia-version-1/utils"
)

// UserIDKey is the gin context key under which the authenticated user id is
// stored for downstream handlers.
const UserIDKey = "userID"

// AuthMiddleware validates the bearer token on every protected request and
// stores the token's subject in the context. The secret is injected at router
// construction rather than read from the environment per request.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := utils.ParseJWT(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid authentication credentials"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// AuthedUserID returns the user id stored by AuthMiddleware.
func AuthedUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
