package v1

import (
	"context"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1. ctx ограничивает время
// жизни фоновой очистки rate limiter'а.
func (h *Handler) RegisterRoutes(ctx context.Context, api *gin.RouterGroup) {
	throttle := RateLimitMiddleware(
		ctx,
		h.cfg.RateLimitRPS,
		h.cfg.RateLimitBurst,
		h.cfg.RateLimitVisitor,
		h.logger,
	)

	locations := api.Group("/locations")
	{
		// Страница карты и полный набор для нее не троттлятся
		locations.GET("", h.index)
		locations.GET("/map", h.mapLocations)

		// Публичные поисковые эндпоинты под rate limit
		locations.GET("/search", throttle, h.searchLocations)
		locations.GET("/nearby", throttle, h.nearbyLocations)
		locations.GET("/within-bounds", throttle, h.locationsWithinBounds)
		locations.GET("/:id", throttle, h.getLocation)
		locations.GET("/:id/details", throttle, h.getLocation)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
