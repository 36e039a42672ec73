package models

import (
	"time"

	"github.com/google/uuid"
)

// Category - категория для группировки сохраненных локаций пользователя
type Category struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
