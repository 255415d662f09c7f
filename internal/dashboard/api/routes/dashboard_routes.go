package routes

import (
	"VCS_Status_Dashboard/internal/dashboard/api/handler"

	"github.com/gin-gonic/gin"
)

func SetUpDashboardRoutes(r *gin.Engine, handler handler.DashboardHandler) {
	dashboardRoutes := r.Group("/dashboard")
	dashboardRoutes.GET("", handler.GetDashboard())
	dashboardRoutes.GET("/export", handler.ExportDashboard())

	datasourceRoutes := r.Group("/datasources")
	datasourceRoutes.GET("", handler.GetDatasources())
	datasourceRoutes.PATCH("/:name", handler.UpdateDatasource())
	datasourceRoutes.POST("/:name/toggle", handler.ToggleDatasource())

	alertRoutes := r.Group("/alerts")
	alertRoutes.GET("", handler.GetAlerts())
	alertRoutes.DELETE("/:id", handler.DismissAlert())

	r.POST("/reports", handler.SendReport())
}
