package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/location_directory/internal/config"
	"github.com/shenikar/location_directory/internal/models"
	"github.com/shenikar/location_directory/internal/service"
	"github.com/shenikar/location_directory/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockLocationService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockLocationService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		RateLimitRPS:     1000,
		RateLimitBurst:   1000,
		RateLimitVisitor: time.Minute,
		GoogleMapsAPIKey: "test-maps-key",
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(t.Context(), api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIndex_LenientNormalization(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	// Невалидный статус молча отбрасывается, поиск обрезается
	expectedCriteria := models.NewSearchCriteria("Colosseo", "bogus")
	mockService.EXPECT().
		Search(gomock.Any(), expectedCriteria).
		Return([]*models.Location{
			{ID: 1, Titolo: "Colosseo", Indirizzo: "Roma", Stato: models.StatoAttivo},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/locations?search=%20Colosseo%20&stato=bogus")

	require.Equal(t, http.StatusOK, w.Code)

	var resp IndexResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Colosseo", resp.Filters.Search)
	assert.Equal(t, "", resp.Filters.Stato)
	require.Len(t, resp.Locations, 1)
	assert.Equal(t, "test-maps-key", resp.GoogleMapsAPIKey)
	assert.False(t, resp.GoogleMapsAPIKeyMissing)
}

func TestSearchLocations_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	expectedCriteria := models.NewSearchCriteria("Duomo", "attivo")
	mockService.EXPECT().
		Search(gomock.Any(), expectedCriteria).
		Return([]*models.Location{
			{ID: 2, Titolo: "Duomo di Milano", Indirizzo: "Piazza del Duomo, Milano", Latitude: 45.4641, Longitude: 9.1919, Stato: models.StatoAttivo},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/locations/search?search=Duomo&stato=attivo")

	require.Equal(t, http.StatusOK, w.Code)

	var resp []LocationListItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Duomo di Milano", resp[0].Titolo)
	assert.Equal(t, "attivo", resp[0].Stato)
}

func TestSearchLocations_InvalidStatoRejected(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	// Строгая граница: сервис не должен вызываться
	mockService.EXPECT().Search(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/locations/search?stato=active")

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_SEARCH_PARAMETERS")
}

func TestSearchLocations_TooLongSearchRejected(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Search(gomock.Any(), gomock.Any()).Times(0)

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	w := makeRequest(router, "GET", "/api/v1/locations/search?search="+string(long))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_SEARCH_PARAMETERS")
}

func TestSearchLocations_ListDoesNotLeakDetailFields(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	website := "https://example.it"
	mockService.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return([]*models.Location{
			{ID: 3, Titolo: "Pantheon", Descrizione: "descrizione segreta", SitoWeb: &website, Stato: models.StatoAttivo},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/locations/search")
	require.Equal(t, http.StatusOK, w.Code)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Len(t, raw, 1)

	// Списочный ответ содержит только поля проекции для карты
	for _, field := range []string{"descrizione", "sito_web", "orari_apertura", "prezzo_biglietto", "telefono", "note_visitatori"} {
		assert.NotContains(t, raw[0], field)
	}
	for _, field := range []string{"id", "titolo", "indirizzo", "latitude", "longitude", "stato"} {
		assert.Contains(t, raw[0], field)
	}
}

func TestGetLocation_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	hours := "09:00 - 18:00"
	mockService.EXPECT().
		GetDetails(gomock.Any(), int64(5)).
		Return(&models.Location{
			ID:            5,
			Titolo:        "Pantheon",
			Descrizione:   "Tempio romano",
			Indirizzo:     "Piazza della Rotonda, Roma",
			Stato:         models.StatoInAllarme,
			OrariApertura: &hours,
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/locations/5")

	require.Equal(t, http.StatusOK, w.Code)

	var resp LocationDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "Pantheon", resp.Titolo)
	assert.Equal(t, "in_allarme", resp.Stato.Value)
	assert.Equal(t, "In Allarme", resp.Stato.Label)
	assert.Equal(t, "#EF4444", resp.Stato.Color)
	assert.Equal(t, "danger", resp.Stato.CSSClass)
	require.NotNil(t, resp.OrariApertura)
	assert.Equal(t, hours, *resp.OrariApertura)
}

func TestGetLocation_DetailsAlias(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetDetails(gomock.Any(), int64(5)).
		Return(&models.Location{ID: 5, Titolo: "Pantheon", Stato: models.StatoAttivo}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/locations/5/details")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetLocation_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetDetails(gomock.Any(), int64(999)).
		Return(nil, &models.LocationNotFoundError{ID: 999}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/locations/999")

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Location not found", resp.Message)
	assert.Equal(t, "LOCATION_NOT_FOUND", resp.Error)
}

func TestGetLocation_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetDetails(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/locations/0")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetLocation_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetDetails(gomock.Any(), int64(5)).
		Return(nil, errors.New("storage unavailable")).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/locations/5")
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMapLocations_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		AllForMap(gomock.Any()).
		Return([]*models.Location{
			{ID: 1, Titolo: "Arena di Verona", Stato: models.StatoAttivo},
			{ID: 2, Titolo: "Colosseo", Stato: models.StatoDisattivo},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/locations/map")

	require.Equal(t, http.StatusOK, w.Code)

	var resp []LocationListItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Arena di Verona", resp[0].Titolo)
}

func TestNearbyLocations_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Nearby(gomock.Any(), 41.89, 12.49, 5.0).
		Return([]models.NearbyLocation{
			{Location: &models.Location{ID: 1, Titolo: "Centro", Stato: models.StatoAttivo}, DistanceKm: 0.2},
			{Location: &models.Location{ID: 2, Titolo: "Vicino", Stato: models.StatoAttivo}, DistanceKm: 2.7},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/locations/nearby?lat=41.89&lng=12.49&radius_km=5")

	require.Equal(t, http.StatusOK, w.Code)

	var resp []NearbyLocationItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 0.2, resp[0].DistanceKm)
	assert.Equal(t, 2.7, resp[1].DistanceKm)
}

func TestNearbyLocations_DefaultRadius(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Nearby(gomock.Any(), 41.89, 12.49, service.DefaultNearbyRadiusKm).
		Return([]models.NearbyLocation{}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/locations/nearby?lat=41.89&lng=12.49")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestNearbyLocations_InvalidCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Nearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, url := range []string{
		"/api/v1/locations/nearby",
		"/api/v1/locations/nearby?lat=abc&lng=12.49",
		"/api/v1/locations/nearby?lat=91&lng=12.49",
		"/api/v1/locations/nearby?lat=41.89&lng=181",
		"/api/v1/locations/nearby?lat=41.89&lng=12.49&radius_km=-1",
	} {
		w := makeRequest(router, "GET", url)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "url=%s", url)
	}
}

func TestLocationsWithinBounds_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	expectedBounds := models.Bounds{MinLat: 41, MinLng: 12, MaxLat: 42, MaxLng: 13}
	mockService.EXPECT().
		WithinBounds(gomock.Any(), expectedBounds).
		Return([]*models.Location{{ID: 1, Titolo: "Colosseo", Stato: models.StatoAttivo}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/locations/within-bounds?min_lat=41&min_lng=12&max_lat=42&max_lng=13")

	require.Equal(t, http.StatusOK, w.Code)
}

func TestLocationsWithinBounds_InvalidBounds(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().WithinBounds(gomock.Any(), gomock.Any()).Times(0)

	// Перепутанные границы
	w := makeRequest(router, "GET", "/api/v1/locations/within-bounds?min_lat=42&min_lng=12&max_lat=41&max_lng=13")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestRateLimit_Exceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockLocationService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	// Жесткий лимит, чтобы второй запрос уперся в 429
	cfg := &config.Config{
		RateLimitRPS:     1,
		RateLimitBurst:   1,
		RateLimitVisitor: time.Minute,
	}
	handler := NewHandler(mockService, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(t.Context(), router.Group("/api/v1"))

	mockService.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return([]*models.Location{}, nil).
		Times(1)

	first := makeRequest(router, "GET", "/api/v1/locations/search")
	require.Equal(t, http.StatusOK, first.Code)

	second := makeRequest(router, "GET", "/api/v1/locations/search")
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "RATE_LIMIT_EXCEEDED")
}

func TestRateLimit_ServesAfterCleanupContextCanceled(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	// Отмена контекста останавливает горутину очистки,
	// но не сам троттлинг
	ctx, cancel := context.WithCancel(context.Background())
	throttle := RateLimitMiddleware(ctx, 1000, 1000, time.Minute, logger)
	cancel()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", throttle, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/ping")
	require.Equal(t, http.StatusOK, w.Code)
}
