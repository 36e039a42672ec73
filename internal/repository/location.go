package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/map_my_world/internal/models"
	"github.com/shenikar/map_my_world/internal/service"
)

type LocationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewLocationRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.LocationRepository {
	return &LocationRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новую запись о локации в бд
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	query := `
		INSERT INTO locations (owner_id, name, description, latitude, longitude, category_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		location.OwnerID,
		location.Name,
		location.Description,
		location.Latitude,
		location.Longitude,
		location.CategoryID,
	).Scan(&location.ID, &location.CreatedAt, &location.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

// GetByID возвращает локацию по UUID, только если она принадлежит ownerID
func (r *LocationRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*models.Location, error) {
	location := &models.Location{}
	query := `
		SELECT id, owner_id, name, description, latitude, longitude, category_id, created_at, updated_at
		FROM locations
		WHERE id = $1 AND owner_id = $2;
	`
	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&location.ID,
		&location.OwnerID,
		&location.Name,
		&location.Description,
		&location.Latitude,
		&location.Longitude,
		&location.CategoryID,
		&location.CreatedAt,
		&location.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("location with id %s: %w", id, service.ErrLocationNotFound)
		}
		return nil, fmt.Errorf("failed to get location by id: %w", err)
	}
	return location, nil
}

// Update обновляет локацию владельца
func (r *LocationRepository) Update(ctx context.Context, location *models.Location) error {
	query := `
		UPDATE locations SET
			name = $1,
			description = $2,
			latitude = $3,
			longitude = $4,
			category_id = $5,
			updated_at = NOW()
		WHERE id = $6 AND owner_id = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		location.Name,
		location.Description,
		location.Latitude,
		location.Longitude,
		location.CategoryID,
		location.ID,
		location.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}

	// RowsAffected() == 0 означает, что локации с таким id у пользователя нет
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("location with id %s not found for update: %w", location.ID, service.ErrLocationNotFound)
	}
	return nil
}

// Delete удаляет локацию владельца
func (r *LocationRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `
		DELETE FROM locations
		WHERE id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("location with id %s not found for delete: %w", id, service.ErrLocationNotFound)
	}
	return nil
}

// ListByOwner возвращает локации пользователя с пагинацией
func (r *LocationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.Location, error) {
	query := `
		SELECT id, owner_id, name, description, latitude, longitude, category_id, created_at, updated_at
		FROM locations
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	return scanLocations(rows)
}

// FindByOwner возвращает все локации пользователя для поиска по радиусу.
// Фильтрация по расстоянию выполняется в ядре геопоиска линейным проходом,
// пространственный индекс на уровне хранилища сознательно не используется.
func (r *LocationRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Location, error) {
	query := `
		SELECT id, owner_id, name, description, latitude, longitude, category_id, created_at, updated_at
		FROM locations
		WHERE owner_id = $1;
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find locations by owner: %w", err)
	}
	defer rows.Close()

	return scanLocations(rows)
}

func scanLocations(rows pgx.Rows) ([]*models.Location, error) {
	locations := make([]*models.Location, 0)
	for rows.Next() {
		location := &models.Location{}
		err := rows.Scan(
			&location.ID,
			&location.OwnerID,
			&location.Name,
			&location.Description,
			&location.Latitude,
			&location.Longitude,
			&location.CategoryID,
			&location.CreatedAt,
			&location.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during locations iteration: %w", err)
	}
	return locations, nil
}

func locationCacheKey(id, ownerID uuid.UUID) string {
	return fmt.Sprintf("location:%s:%s", ownerID.String(), id.String())
}

// GetLocationFromCache пытается получить локацию из Redis
func (r *LocationRepository) GetLocationFromCache(ctx context.Context, id, ownerID uuid.UUID) (*models.Location, error) {
	val, err := r.redisClient.Get(ctx, locationCacheKey(id, ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get location from cache: %w", err)
	}

	location := &models.Location{}
	if err := json.Unmarshal(val, location); err != nil {
		return nil, fmt.Errorf("failed to unmarshal location from cache: %w", err)
	}
	return location, nil
}

// SetLocationCache сохраняет локацию в Redis
func (r *LocationRepository) SetLocationCache(ctx context.Context, location *models.Location) error {
	val, err := json.Marshal(location)
	if err != nil {
		return fmt.Errorf("failed to marshal location for cache: %w", err)
	}
	key := locationCacheKey(location.ID, location.OwnerID)
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set location in cache: %w", err)
	}
	return nil
}

// InvalidateLocationCache удаляет локацию из Redis кэша
func (r *LocationRepository) InvalidateLocationCache(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := r.redisClient.Del(ctx, locationCacheKey(id, ownerID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate location cache: %w", err)
	}
	return nil
}
