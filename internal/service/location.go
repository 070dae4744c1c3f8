package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shenikar/location_directory/internal/cache"
	"github.com/shenikar/location_directory/internal/models"
	"github.com/shenikar/location_directory/pkg/geo"
	"github.com/sirupsen/logrus"
)

// DefaultNearbyRadiusKm — радиус поиска ближайших локаций по умолчанию.
const DefaultNearbyRadiusKm = 10.0

// LocationRepository определяет контракт чтения локаций из хранилища
type LocationRepository interface {
	Search(ctx context.Context, criteria models.SearchCriteria) ([]*models.Location, error)
	GetByID(ctx context.Context, id int64) (*models.Location, error)
	AllForMap(ctx context.Context) ([]*models.Location, error)
	WithinBounds(ctx context.Context, bounds models.Bounds) ([]*models.Location, error)
}

// LocationService определяет контракт бизнес-логики каталога локаций
type LocationService interface {
	Search(ctx context.Context, criteria models.SearchCriteria) ([]*models.Location, error)
	GetDetails(ctx context.Context, id int64) (*models.Location, error)
	AllForMap(ctx context.Context) ([]*models.Location, error)
	Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyLocation, error)
	WithinBounds(ctx context.Context, bounds models.Bounds) ([]*models.Location, error)
	InvalidateLocation(ctx context.Context, id int64) error
}

type locationService struct {
	repo   LocationRepository
	store  cache.Store
	logger *logrus.Logger
}

func NewLocationService(repo LocationRepository, store cache.Store, logger *logrus.Logger) LocationService {
	return &locationService{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

// Search ищет локации по нормализованным критериям. Результат кешируется
// по отпечатку критериев на 15 минут.
func (s *locationService) Search(ctx context.Context, criteria models.SearchCriteria) ([]*models.Location, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "location",
		"method":      "Search",
		"fingerprint": criteria.Fingerprint(),
		"has_filters": criteria.HasFilters(),
	})
	log.Debug("Searching locations")

	locations, err := cache.GetOrCompute(ctx, s.store, cache.SearchKey(criteria.Fingerprint()), cache.SearchTTL,
		func(ctx context.Context) ([]*models.Location, error) {
			return s.repo.Search(ctx, criteria)
		})
	if err != nil {
		log.WithError(err).Error("Failed to search locations")
		return nil, fmt.Errorf("service: could not search locations: %w", err)
	}

	log.WithField("count", len(locations)).Debug("Locations search completed")
	return locations, nil
}

// GetDetails возвращает полную запись локации. Кешируется на 15 минут.
// Отсутствие записи — это LocationNotFoundError, не пустой результат;
// промахи по несуществующим id не кешируются.
func (s *locationService) GetDetails(ctx context.Context, id int64) (*models.Location, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "location",
		"method":      "GetDetails",
		"location_id": id,
	})
	log.Debug("Fetching location details")

	location, err := cache.GetOrCompute(ctx, s.store, cache.DetailsKey(id), cache.DetailsTTL,
		func(ctx context.Context) (*models.Location, error) {
			return s.repo.GetByID(ctx, id)
		})
	if err != nil {
		log.WithError(err).Warn("Failed to get location details")
		return nil, err
	}

	return location, nil
}

// AllForMap возвращает полный набор локаций для карты. Кешируется на час:
// набор меняется редко и собирается дороже остальных выборок.
func (s *locationService) AllForMap(ctx context.Context) ([]*models.Location, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "AllForMap",
	})

	locations, err := cache.GetOrCompute(ctx, s.store, cache.AllForMapKey, cache.MapTTL,
		func(ctx context.Context) ([]*models.Location, error) {
			return s.repo.AllForMap(ctx)
		})
	if err != nil {
		log.WithError(err).Error("Failed to load locations for map")
		return nil, fmt.Errorf("service: could not load locations for map: %w", err)
	}

	log.WithField("count", len(locations)).Debug("Map dataset loaded")
	return locations, nil
}

// Nearby возвращает локации в радиусе radiusKm от точки, упорядоченные
// по возрастанию расстояния. Расстояние считается по большому кругу
// над кешированным набором карты, без отдельного запроса к БД.
func (s *locationService) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyLocation, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultNearbyRadiusKm
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "location",
		"method":    "Nearby",
		"radius_km": radiusKm,
	})

	locations, err := s.AllForMap(ctx)
	if err != nil {
		return nil, err
	}

	nearby := make([]models.NearbyLocation, 0)
	for _, location := range locations {
		distance := geo.DistanceKm(lat, lng, location.Latitude, location.Longitude)
		if distance <= radiusKm {
			nearby = append(nearby, models.NearbyLocation{Location: location, DistanceKm: distance})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	log.WithField("count", len(nearby)).Debug("Nearby locations computed")
	return nearby, nil
}

// WithinBounds возвращает локации внутри прямоугольника карты.
// Не кешируется: произвольные границы дают слишком разреженные ключи.
func (s *locationService) WithinBounds(ctx context.Context, bounds models.Bounds) ([]*models.Location, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "WithinBounds",
	})

	locations, err := s.repo.WithinBounds(ctx, bounds)
	if err != nil {
		log.WithError(err).Error("Failed to query locations within bounds")
		return nil, fmt.Errorf("service: could not query locations within bounds: %w", err)
	}

	return locations, nil
}

// InvalidateLocation сбрасывает кеш после изменения локации: ключ деталей
// этой записи и набор карты. Поисковые ключи не трогаются — они истекают
// по TTL (15 минут), это осознанный компромисс.
func (s *locationService) InvalidateLocation(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "location",
		"method":      "InvalidateLocation",
		"location_id": id,
	})

	if err := s.store.Delete(ctx, cache.DetailsKey(id), cache.AllForMapKey); err != nil {
		log.WithError(err).Error("Failed to invalidate location cache")
		return fmt.Errorf("service: could not invalidate location cache: %w", err)
	}

	log.Info("Location cache invalidated")
	return nil
}
