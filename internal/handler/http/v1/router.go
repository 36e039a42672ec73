package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// protected - middleware, навешиваемые на маршруты, требующие аутентификации
// (JWT, ограничение частоты запросов).
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, protected ...gin.HandlerFunc) {
	// Маршруты аутентификации - без токена
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}

	// Маршруты для управления локациями (CRUD + геопоиск)
	locations := api.Group("/locations", protected...)
	{
		locations.POST("", h.createLocation)
		locations.GET("", h.listLocations)
		locations.GET("/search/nearby", h.searchNearby)
		locations.GET("/:id", h.getLocation)
		locations.PUT("/:id", h.updateLocation)
		locations.DELETE("/:id", h.deleteLocation)
	}

	// Маршруты для управления категориями
	categories := api.Group("/categories", protected...)
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
