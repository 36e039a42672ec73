package v1

import (
	"github.com/shenikar/map_my_world/internal/geo"
	"github.com/shenikar/map_my_world/internal/models"
)

// ModelToUserResponse преобразует доменную модель пользователя в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:        model.ID,
		Email:     model.Email,
		Username:  model.Username,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
	}
}

// DTOToLocationModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToLocationModel(dto any) *models.Location {
	switch v := dto.(type) {
	case CreateLocationRequest:
		return &models.Location{
			Name:        v.Name,
			Description: v.Description,
			Latitude:    v.Latitude,
			Longitude:   v.Longitude,
			CategoryID:  v.CategoryID,
		}
	case UpdateLocationRequest:
		return &models.Location{
			Name:        v.Name,
			Description: v.Description,
			Latitude:    v.Latitude,
			Longitude:   v.Longitude,
			CategoryID:  v.CategoryID,
		}
	}
	return nil
}

// ModelToLocationResponse преобразует доменную модель локации в DTO для ответа
func ModelToLocationResponse(model *models.Location) *LocationResponse {
	return &LocationResponse{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		CategoryID:  model.CategoryID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToLocationResponses преобразует слайс моделей в слайс DTO
func ModelsToLocationResponses(models []*models.Location) []*LocationResponse {
	responses := make([]*LocationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToLocationResponse(model)
	}
	return responses
}

// ModelToCategoryResponse преобразует доменную модель категории в DTO для ответа
func ModelToCategoryResponse(model *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelsToCategoryResponses преобразует слайс моделей в слайс DTO
func ModelsToCategoryResponses(models []*models.Category) []*CategoryResponse {
	responses := make([]*CategoryResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToCategoryResponse(model)
	}
	return responses
}

// MatchesToNearbyResponses преобразует результат геопоиска в DTO для ответа.
// Порядок элементов сохраняется - ядро уже отсортировало их по расстоянию.
func MatchesToNearbyResponses(matches []geo.Match) []*NearbyLocationResponse {
	responses := make([]*NearbyLocationResponse, len(matches))
	for i, match := range matches {
		responses[i] = &NearbyLocationResponse{
			ID:   match.Location.ID,
			Name: match.Location.Name,
			Coordinate: CoordinateResponse{
				Latitude:  match.Location.Latitude,
				Longitude: match.Location.Longitude,
			},
			Category:   match.Location.CategoryID,
			DistanceKm: match.DistanceKm,
		}
	}
	return responses
}
