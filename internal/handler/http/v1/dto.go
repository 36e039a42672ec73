package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest DTO для входа пользователя
// @Description DTO для входа пользователя
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse DTO для ответа с токеном доступа
// @Description DTO для ответа с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateLocationRequest DTO для создания локации.
// Диапазон координат проверяется здесь, на границе - в ядро
// невалидные значения не попадают.
// @Description DTO для создания локации
type CreateLocationRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=255"`
	Description string     `json:"description,omitempty"`
	Latitude    float64    `json:"latitude" validate:"latitude"`
	Longitude   float64    `json:"longitude" validate:"longitude"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
}

// UpdateLocationRequest DTO для обновления локации
// @Description DTO для обновления локации
type UpdateLocationRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=255"`
	Description string     `json:"description,omitempty"`
	Latitude    float64    `json:"latitude" validate:"latitude"`
	Longitude   float64    `json:"longitude" validate:"longitude"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
}

// LocationResponse DTO для ответа с информацией о локации
// @Description DTO для ответа с информацией о локации
type LocationResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateCategoryRequest DTO для создания категории
// @Description DTO для создания категории
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description,omitempty"`
}

// CategoryResponse DTO для ответа с информацией о категории
// @Description DTO для ответа с информацией о категории
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CoordinateResponse - пара широта/долгота в ответе поиска
// @Description Пара широта/долгота
type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyLocationResponse DTO для элемента результата поиска по радиусу
// @Description Локация в результате поиска по радиусу с расстоянием до центра
type NearbyLocationResponse struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Coordinate CoordinateResponse `json:"coordinate"`
	Category   *uuid.UUID         `json:"category,omitempty"`
	DistanceKm float64            `json:"distance_km"`
}
