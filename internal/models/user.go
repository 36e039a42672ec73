package models

import (
	"time"

	"github.com/google/uuid"
)

// User представляет зарегистрированного пользователя системы
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"` // bcrypt, никогда не отдается наружу
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
