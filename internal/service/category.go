package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/map_my_world/internal/models"
	"github.com/sirupsen/logrus"
)

// CategoryRepository определяет контракт для работы с бд категорий
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*models.Category, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.Category, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// CategoryService определяет контракт для бизнес-логики управления категориями
type CategoryService interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategory(ctx context.Context, id, ownerID uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.Category, error)
	DeleteCategory(ctx context.Context, id, ownerID uuid.UUID) error
}

type categoryService struct {
	repo   CategoryRepository
	logger *logrus.Logger
}

func NewCategoryService(repo CategoryRepository, logger *logrus.Logger) CategoryService {
	return &categoryService{
		repo:   repo,
		logger: logger,
	}
}

// CreateCategory создает категорию пользователя
func (s *categoryService) CreateCategory(ctx context.Context, category *models.Category) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "category",
		"method":   "CreateCategory",
		"owner_id": category.OwnerID,
		"name":     category.Name,
	})
	log.Info("Attempting to create a new category")

	if err := s.repo.Create(ctx, category); err != nil {
		log.WithError(err).Error("Failed to create category in repository")
		return fmt.Errorf("service: could not create category: %w", err)
	}

	log.WithField("category_id", category.ID).Info("Category created successfully")
	return nil
}

// GetCategory получает категорию по ID с учетом владельца
func (s *categoryService) GetCategory(ctx context.Context, id, ownerID uuid.UUID) (*models.Category, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "category",
		"method":      "GetCategory",
		"category_id": id,
	})
	log.Info("Fetching category by ID")

	category, err := s.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		log.WithError(err).Error("Failed to get category from repository")
		return nil, fmt.Errorf("service: could not get category: %w", err)
	}

	log.Info("Category fetched successfully")
	return category, nil
}

// ListCategories возвращает категории пользователя с пагинацией
func (s *categoryService) ListCategories(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.Category, error) {
	if limit < 1 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":  "category",
		"method":   "ListCategories",
		"owner_id": ownerID,
	})
	log.Info("Listing categories")

	categories, err := s.repo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		log.WithError(err).Error("Failed to list categories from repository")
		return nil, fmt.Errorf("service: could not list categories: %w", err)
	}

	log.WithField("count", len(categories)).Info("Categories listed successfully")
	return categories, nil
}

// DeleteCategory удаляет категорию пользователя.
// Ссылки на категорию в локациях обнуляются на уровне схемы (ON DELETE SET NULL),
// сами локации при этом не удаляются.
func (s *categoryService) DeleteCategory(ctx context.Context, id, ownerID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "category",
		"method":      "DeleteCategory",
		"category_id": id,
	})
	log.Info("Attempting to delete category")

	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		log.WithError(err).Error("Failed to delete category in repository")
		return fmt.Errorf("service: could not delete category: %w", err)
	}

	log.Info("Category deleted successfully")
	return nil
}
