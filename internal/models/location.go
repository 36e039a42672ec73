package models

import (
	"time"

	"github.com/google/uuid"
)

// Location представляет именованную географическую точку пользователя.
// Локация принадлежит ровно одному пользователю и может ссылаться
// максимум на одну категорию (CategoryID == nil - без категории).
type Location struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
