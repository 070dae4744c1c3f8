package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/location_directory/internal/config"
	"github.com/shenikar/location_directory/internal/models"
	"github.com/shenikar/location_directory/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	locationService service.LocationService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(locationService service.LocationService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		locationService: locationService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Map page data
// @Description Get locations with applied filters for the map page. Unknown filter values are silently dropped.
// @Tags Locations
// @Produce json
// @Param search query string false "Free-text search over titolo and indirizzo"
// @Param stato query string false "Status filter (attivo, disattivo, in_allarme)"
// @Success 200 {object} IndexResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /locations [get]
func (h *Handler) index(c *gin.Context) {
	log := h.logger.WithField("method", "index")

	// Мягкая нормализация: невалидный статус и пустой поиск молча
	// схлопываются в отсутствие фильтра
	criteria := models.NewSearchCriteria(c.Query("search"), c.Query("stato"))

	locations, err := h.locationService.Search(c.Request.Context(), criteria)
	if err != nil {
		log.WithError(err).Error("Failed to search locations for map page")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error", Error: "INTERNAL_ERROR"})
		return
	}

	c.JSON(http.StatusOK, IndexResponse{
		Filters: IndexFilters{
			Search: criteria.Search,
			Stato:  string(criteria.Stato),
		},
		Locations:               ModelsToListItems(locations),
		GoogleMapsAPIKey:        h.cfg.GoogleMapsAPIKey,
		GoogleMapsAPIKeyMissing: h.cfg.GoogleMapsAPIKey == "",
	})
}

// @Summary Search locations
// @Description Search locations by free text and status. Unknown status values are rejected.
// @Tags Locations
// @Produce json
// @Param search query string false "Free-text search over titolo and indirizzo (max 255 chars)"
// @Param stato query string false "Status filter (attivo, disattivo, in_allarme)"
// @Success 200 {array} LocationListItem
// @Failure 422 {object} ErrorResponse "Invalid search parameters"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /locations/search [get]
func (h *Handler) searchLocations(c *gin.Context) {
	log := h.logger.WithField("method", "searchLocations")

	input := SearchLocationsRequest{
		Search: c.Query("search"),
		Stato:  c.Query("stato"),
	}

	// Строгая граница: в отличие от страницы карты, нераспознанный
	// статус здесь отклоняется, а не отбрасывается
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Search validation failed")
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Invalid location search parameters",
			Error:   "INVALID_SEARCH_PARAMETERS",
		})
		return
	}

	criteria := models.NewSearchCriteria(input.Search, input.Stato)
	locations, err := h.locationService.Search(c.Request.Context(), criteria)
	if err != nil {
		log.WithError(err).Error("Failed to search locations in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error", Error: "INTERNAL_ERROR"})
		return
	}

	c.JSON(http.StatusOK, ModelsToListItems(locations))
}

// @Summary Full map dataset
// @Description Get all locations in the map projection. Cached server-side for an hour.
// @Tags Locations
// @Produce json
// @Success 200 {array} LocationListItem
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /locations/map [get]
func (h *Handler) mapLocations(c *gin.Context) {
	log := h.logger.WithField("method", "mapLocations")

	locations, err := h.locationService.AllForMap(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load map dataset from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error", Error: "INTERNAL_ERROR"})
		return
	}

	c.JSON(http.StatusOK, ModelsToListItems(locations))
}

// @Summary Nearby locations
// @Description Get locations within radius_km of a point, ordered by ascending distance.
// @Tags Locations
// @Produce json
// @Param lat query number true "Latitude of the center point"
// @Param lng query number true "Longitude of the center point"
// @Param radius_km query number false "Search radius in kilometers" default(10)
// @Success 200 {array} NearbyLocationItem
// @Failure 422 {object} ErrorResponse "Invalid coordinates or radius"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /locations/nearby [get]
func (h *Handler) nearbyLocations(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyLocations")

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil || !models.ValidCoordinates(lat, lng) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Invalid coordinates",
			Error:   "INVALID_SEARCH_PARAMETERS",
		})
		return
	}

	radiusKm := service.DefaultNearbyRadiusKm
	if raw := c.Query("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Message: "Invalid radius",
				Error:   "INVALID_SEARCH_PARAMETERS",
			})
			return
		}
		radiusKm = parsed
	}

	nearby, err := h.locationService.Nearby(c.Request.Context(), lat, lng, radiusKm)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby locations in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error", Error: "INTERNAL_ERROR"})
		return
	}

	c.JSON(http.StatusOK, NearbyToItems(nearby))
}

// @Summary Locations within bounds
// @Description Get locations inside a latitude/longitude rectangle (inclusive). Cheap pre-filter for large map views.
// @Tags Locations
// @Produce json
// @Param min_lat query number true "South border"
// @Param min_lng query number true "West border"
// @Param max_lat query number true "North border"
// @Param max_lng query number true "East border"
// @Success 200 {array} LocationListItem
// @Failure 422 {object} ErrorResponse "Invalid bounds"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /locations/within-bounds [get]
func (h *Handler) locationsWithinBounds(c *gin.Context) {
	log := h.logger.WithField("method", "locationsWithinBounds")

	minLat, errMinLat := strconv.ParseFloat(c.Query("min_lat"), 64)
	minLng, errMinLng := strconv.ParseFloat(c.Query("min_lng"), 64)
	maxLat, errMaxLat := strconv.ParseFloat(c.Query("max_lat"), 64)
	maxLng, errMaxLng := strconv.ParseFloat(c.Query("max_lng"), 64)

	if errMinLat != nil || errMinLng != nil || errMaxLat != nil || errMaxLng != nil ||
		!models.ValidCoordinates(minLat, minLng) || !models.ValidCoordinates(maxLat, maxLng) ||
		minLat > maxLat || minLng > maxLng {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Invalid bounds",
			Error:   "INVALID_SEARCH_PARAMETERS",
		})
		return
	}

	locations, err := h.locationService.WithinBounds(c.Request.Context(), models.Bounds{
		MinLat: minLat,
		MinLng: minLng,
		MaxLat: maxLat,
		MaxLng: maxLng,
	})
	if err != nil {
		log.WithError(err).Error("Failed to query locations within bounds in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error", Error: "INTERNAL_ERROR"})
		return
	}

	c.JSON(http.StatusOK, ModelsToListItems(locations))
}

// @Summary Location details
// @Description Get full details of a single location by its ID.
// @Tags Locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} LocationDetailsResponse
// @Failure 400 {object} ErrorResponse "Invalid location ID"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /locations/{id} [get]
func (h *Handler) getLocation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid location ID", Error: "INVALID_LOCATION_ID"})
		return
	}
	log := h.logger.WithField("method", "getLocation").WithField("id", id)

	location, err := h.locationService.GetDetails(c.Request.Context(), id)
	if err != nil {
		var notFound *models.LocationNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Location not found", Error: "LOCATION_NOT_FOUND"})
			return
		}
		log.WithError(err).Error("Failed to get location details from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error", Error: "INTERNAL_ERROR"})
		return
	}

	c.JSON(http.StatusOK, ModelToDetailsResponse(location))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
