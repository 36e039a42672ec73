package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/map_my_world/internal/models"
	"github.com/shenikar/map_my_world/internal/service"
)

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) service.CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create создает новую категорию в бд
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (owner_id, name, description)
		VALUES ($1, $2, $3) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		category.OwnerID,
		category.Name,
		category.Description,
	).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID возвращает категорию по UUID, только если она принадлежит ownerID
func (r *CategoryRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*models.Category, error) {
	category := &models.Category{}
	query := `
		SELECT id, owner_id, name, description, created_at
		FROM categories
		WHERE id = $1 AND owner_id = $2;
	`
	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&category.ID,
		&category.OwnerID,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("category with id %s: %w", id, service.ErrCategoryNotFound)
		}
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}
	return category, nil
}

// ListByOwner возвращает категории пользователя с пагинацией
func (r *CategoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.Category, error) {
	query := `
		SELECT id, owner_id, name, description, created_at
		FROM categories
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*models.Category, 0)
	for rows.Next() {
		category := &models.Category{}
		err := rows.Scan(
			&category.ID,
			&category.OwnerID,
			&category.Name,
			&category.Description,
			&category.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during categories iteration: %w", err)
	}
	return categories, nil
}

// Delete удаляет категорию владельца.
// Ссылки в locations.category_id обнуляются внешним ключом ON DELETE SET NULL.
func (r *CategoryRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `
		DELETE FROM categories
		WHERE id = $1 AND owner_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category with id %s not found for delete: %w", id, service.ErrCategoryNotFound)
	}
	return nil
}
