package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kunal22-jpg/nutracia-version-1/controllers"
	"github.com/kunal22-jpg/nutracia-version-1/middlewares"
)

// Controllers groups the handler set wired into the router.
type Controllers struct {
	Auth      *controllers.AuthController
	User      *controllers.UserController
	Cart      *controllers.CartController
	Chat      *controllers.ChatController
	Dashboard *controllers.DashboardController
}

// SetupRouter builds the gin engine. Signup, login, and the root status
// endpoint are public; everything under /api besides those requires a bearer
// token.
func SetupRouter(ctrl Controllers, jwtSecret []byte) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Nutracía API - Your Intelligent Wellness Companion"})
	})

	api := r.Group("/api")
	{
		api.POST("/signup", ctrl.Auth.Signup)
		api.POST("/login", ctrl.Auth.Login)

		protected := api.Group("")
		protected.Use(middlewares.AuthMiddleware(jwtSecret))
		{
			protected.GET("/profile/:user_id", ctrl.User.GetProfile)
			protected.PUT("/profile/:user_id", ctrl.User.UpdateProfile)
			protected.GET("/dashboard/:user_id", ctrl.Dashboard.GetDashboard)
			protected.POST("/cart/sync", ctrl.Cart.SyncCart)
			protected.POST("/chat/ai", ctrl.Chat.ChatWithAI)
		}
	}

	return r
}
