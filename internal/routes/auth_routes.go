// internal/routes/auth_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rywndr/AfiDu/internal/handlers"
)

// RegisterAuthRoutes registers the public authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/login", handlers.LoginHandler)
	r.GET("/logout", handlers.LogoutHandler)
	r.POST("/register", handlers.RegisterHandler)
}
