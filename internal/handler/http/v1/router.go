package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Отчеты: списки, запросы по близости и три страницы создания
	reports := api.Group("/reports")
	{
		reports.GET("", h.listReports)
		reports.GET("/summary", h.getSummary)
		reports.GET("/nearby", h.getNearbyReports)
		reports.GET("/mine", h.getUserReports)
		reports.GET("/last", h.getLastSubmitted)
		reports.GET("/:id", h.getReport)
		reports.DELETE("/:id", h.deleteReport)
		reports.POST("/driver", h.createDriverReport)
		reports.POST("/transit", h.createTransitReport)
		reports.POST("/post", h.createPostReport)
	}

	draft := api.Group("/draft")
	{
		draft.GET("", h.getDraft)
		draft.PUT("", h.setDraft)
		draft.PATCH("", h.updateDraft)
		draft.DELETE("", h.clearDraft)
	}

	maps := api.Group("/map")
	{
		maps.GET("", h.getMapState)
		maps.PUT("/viewport", h.setViewport)
		maps.POST("/fit", h.fitBounds)
		maps.PUT("/filters", h.setMapFilters)
		maps.POST("/select", h.selectOnMap)
		maps.DELETE("/select", h.clearSelection)

		// Уведомления виджета защищены ключом, если ключи заданы
		events := maps.Group("/events")
		if len(h.cfg.APIKeys) > 0 {
			events.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
		}
		events.POST("", h.handleMapEvent)
	}

	api.POST("/location/resolve", h.resolveLocation)
	api.POST("/location/error", h.reportLocationError)

	api.GET("/settings/:key", h.getSetting)
	api.PUT("/settings/:key", h.putSetting)

	ui := api.Group("/ui")
	{
		ui.GET("", h.getUIState)
		ui.PATCH("", h.updateUIState)
		ui.POST("/toast", h.showToast)
		ui.DELETE("/toast", h.hideToast)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
