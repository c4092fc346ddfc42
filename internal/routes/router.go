// internal/routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rywndr/AfiDu/internal/middleware"
)

// SetupRoutes registers all application routes.
func SetupRoutes(r *gin.Engine) {
	// public auth endpoints first
	RegisterAuthRoutes(r)

	// everything under /api requires a valid token
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
