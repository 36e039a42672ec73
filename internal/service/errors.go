package service

import "errors"

// Ошибки бизнес-логики. Репозитории оборачивают их через %w,
// HTTP-слой проверяет errors.Is для выбора кода ответа.
var (
	ErrLocationNotFound   = errors.New("location not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("inactive user account")
	ErrInvalidToken       = errors.New("invalid access token")
)
