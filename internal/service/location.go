package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/map_my_world/internal/config"
	"github.com/shenikar/map_my_world/internal/geo"
	"github.com/shenikar/map_my_world/internal/models"
	"github.com/sirupsen/logrus"
)

// LocationRepository определяет контракт для работы с бд локаций
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*models.Location, error)
	Update(ctx context.Context, location *models.Location) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.Location, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Location, error)
	GetLocationFromCache(ctx context.Context, id, ownerID uuid.UUID) (*models.Location, error)
	SetLocationCache(ctx context.Context, location *models.Location) error
	InvalidateLocationCache(ctx context.Context, id, ownerID uuid.UUID) error
}

// SearchQuery - параметры поиска локаций вблизи точки.
// Область видимости всегда ограничена владельцем: чужие локации
// в выборку не попадают, какой бы репозиторий ни был подключен.
type SearchQuery struct {
	CenterLat float64
	CenterLon float64
	RadiusKm  float64
	OwnerID   uuid.UUID
}

// LocationService определяет контракт для бизнес-логики управления локациями
type LocationService interface {
	CreateLocation(ctx context.Context, location *models.Location) error
	GetLocation(ctx context.Context, id, ownerID uuid.UUID) (*models.Location, error)
	UpdateLocation(ctx context.Context, location *models.Location) error
	DeleteLocation(ctx context.Context, id, ownerID uuid.UUID) error
	ListLocations(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.Location, error)
	SearchNearby(ctx context.Context, query SearchQuery) ([]geo.Match, error)
}

type locationService struct {
	repo         LocationRepository
	categoryRepo CategoryRepository
	logger       *logrus.Logger
	cfg          *config.Config
}

func NewLocationService(repo LocationRepository, categoryRepo CategoryRepository, logger *logrus.Logger, cfg *config.Config) LocationService {
	return &locationService{
		repo:         repo,
		categoryRepo: categoryRepo,
		logger:       logger,
		cfg:          cfg,
	}
}

// CreateLocation создает локацию для пользователя.
// Если указана категория, проверяется ее существование у этого же пользователя.
func (s *locationService) CreateLocation(ctx context.Context, location *models.Location) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "location",
		"method":   "CreateLocation",
		"owner_id": location.OwnerID,
		"name":     location.Name,
	})
	log.Info("Attempting to create a new location")

	if location.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *location.CategoryID, location.OwnerID); err != nil {
			log.WithError(err).Warn("Referenced category does not exist")
			return fmt.Errorf("service: category for new location: %w", err)
		}
	}

	if err := s.repo.Create(ctx, location); err != nil {
		log.WithError(err).Error("Failed to create location in repository")
		return fmt.Errorf("service: could not create location: %w", err)
	}

	log.WithField("location_id", location.ID).Info("Location created successfully")
	return nil
}

// GetLocation получает локацию по ID c учетом владельца
func (s *locationService) GetLocation(ctx context.Context, id, ownerID uuid.UUID) (*models.Location, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "location",
		"method":      "GetLocation",
		"location_id": id,
	})
	log.Info("Fetching location by ID")

	// Сначала пробуем кеш
	cached, err := s.repo.GetLocationFromCache(ctx, id, ownerID)
	if err != nil {
		log.WithError(err).Warn("Failed to read location from cache, falling back to DB")
	}
	if cached != nil {
		log.Debug("Location served from cache")
		return cached, nil
	}

	location, err := s.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		log.WithError(err).Error("Failed to get location from repository")
		return nil, fmt.Errorf("service: could not get location: %w", err)
	}

	if err := s.repo.SetLocationCache(ctx, location); err != nil {
		log.WithError(err).Warn("Failed to cache location")
	}

	log.Info("Location fetched successfully")
	return location, nil
}

// UpdateLocation обновляет существующую локацию владельца
func (s *locationService) UpdateLocation(ctx context.Context, location *models.Location) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "location",
		"method":      "UpdateLocation",
		"location_id": location.ID,
	})
	log.Info("Attempting to update location")

	existing, err := s.repo.GetByID(ctx, location.ID, location.OwnerID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent location")
		return fmt.Errorf("service: location %s not found for update: %w", location.ID, err)
	}

	if location.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *location.CategoryID, location.OwnerID); err != nil {
			log.WithError(err).Warn("Referenced category does not exist")
			return fmt.Errorf("service: category for location update: %w", err)
		}
	}

	existing.Name = location.Name
	existing.Description = location.Description
	existing.Latitude = location.Latitude
	existing.Longitude = location.Longitude
	existing.CategoryID = location.CategoryID

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update location in repository")
		return fmt.Errorf("service: could not update location: %w", err)
	}

	if err := s.repo.InvalidateLocationCache(ctx, location.ID, location.OwnerID); err != nil {
		log.WithError(err).Warn("Failed to invalidate location cache")
	}

	log.Info("Location updated successfully")
	return nil
}

// DeleteLocation удаляет локацию владельца
func (s *locationService) DeleteLocation(ctx context.Context, id, ownerID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "location",
		"method":      "DeleteLocation",
		"location_id": id,
	})
	log.Info("Attempting to delete location")

	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		log.WithError(err).Error("Failed to delete location in repository")
		return fmt.Errorf("service: could not delete location: %w", err)
	}

	if err := s.repo.InvalidateLocationCache(ctx, id, ownerID); err != nil {
		log.WithError(err).Warn("Failed to invalidate location cache")
	}

	log.Info("Location deleted successfully")
	return nil
}

// ListLocations возвращает локации пользователя с пагинацией
func (s *locationService) ListLocations(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.Location, error) {
	if limit < 1 || limit > s.cfg.DefaultSearchLimit {
		limit = s.cfg.DefaultSearchLimit
	}
	if offset < 0 {
		offset = 0
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":  "location",
		"method":   "ListLocations",
		"owner_id": ownerID,
		"limit":    limit,
		"offset":   offset,
	})
	log.Info("Listing locations")

	locations, err := s.repo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		log.WithError(err).Error("Failed to list locations from repository")
		return nil, fmt.Errorf("service: could not list locations: %w", err)
	}

	log.WithField("count", len(locations)).Info("Locations listed successfully")
	return locations, nil
}

// SearchNearby находит локации пользователя в радиусе от центра поиска
// и возвращает их по возрастанию расстояния. Пустой результат - не ошибка.
// Диапазон координат валидирует HTTP-слой; здесь защитно отсекаются
// только нечисловые значения (NaN, бесконечности).
func (s *locationService) SearchNearby(ctx context.Context, query SearchQuery) ([]geo.Match, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "location",
		"method":    "SearchNearby",
		"owner_id":  query.OwnerID,
		"radius_km": query.RadiusKm,
	})
	log.Info("Searching nearby locations")

	if query.RadiusKm <= 0 || query.RadiusKm > s.cfg.MaxSearchRadiusKm {
		log.Warn("Rejected search with invalid radius")
		return nil, fmt.Errorf("service: radius %f km: %w", query.RadiusKm, geo.ErrInvalidRadius)
	}

	if !geo.IsFinite(query.CenterLat) || !geo.IsFinite(query.CenterLon) {
		log.Warn("Rejected search with non-finite center coordinate")
		return nil, fmt.Errorf("service: search center: %w", geo.ErrInvalidCoordinate)
	}

	// Запрашиваются только локации владельца - единственное правило
	// авторизации, которое выполняет само ядро поиска
	candidates, err := s.repo.FindByOwner(ctx, query.OwnerID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch candidate locations from repository")
		return nil, fmt.Errorf("service: could not fetch candidates: %w", err)
	}

	center := geo.Coordinate{Lat: query.CenterLat, Lon: query.CenterLon}
	matches, err := geo.FilterWithin(center, query.RadiusKm, candidates)
	if err != nil {
		return nil, fmt.Errorf("service: filter candidates: %w", err)
	}

	geo.Rank(matches)

	log.WithField("count", len(matches)).Info("Nearby search completed")
	return matches, nil
}
