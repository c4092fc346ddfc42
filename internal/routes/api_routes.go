// internal/routes/api_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rywndr/AfiDu/internal/handlers"
)

// RegisterAPIRoutes registers all authenticated API routes.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	apiGroup := api.Group("/api")
	{
		payments := apiGroup.Group("/payments")
		{
			payments.GET("", handlers.ListPaymentsHandler)
			payments.GET("/config", handlers.GetPaymentConfigHandler)
			payments.PUT("/config", handlers.UpdatePaymentConfigHandler)
			payments.GET("/report", handlers.ExportPaymentReportHandler)
			payments.GET("/:id/installments", handlers.GetInstallmentDataHandler)
			payments.POST("/:id/toggle", handlers.TogglePaymentHandler)
			payments.POST("/:id", handlers.UpdatePaymentHandler)
		}
	}
}
