package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/map_my_world/internal/auth"
	"github.com/shenikar/map_my_world/internal/models"
	"github.com/sirupsen/logrus"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService определяет контракт регистрации, входа и проверки токенов
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	repo   UserRepository
	tokens *auth.TokenManager
	logger *logrus.Logger
}

func NewAuthService(repo UserRepository, tokens *auth.TokenManager, logger *logrus.Logger) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Register регистрирует нового пользователя.
// Email и username должны быть уникальными, пароль хешируется перед сохранением.
func (s *authService) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Register",
		"username": username,
	})
	log.Info("Registering a new user")

	if existing, err := s.repo.GetByEmail(ctx, email); err == nil && existing != nil {
		log.Warn("Email already registered")
		return nil, ErrEmailTaken
	}

	if existing, err := s.repo.GetByUsername(ctx, username); err == nil && existing != nil {
		log.Warn("Username already taken")
		return nil, ErrUsernameTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Email:          email,
		Username:       username,
		HashedPassword: hash,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, nil
}

// Login проверяет учетные данные и выпускает токен доступа
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": username,
	})
	log.Info("Authenticating user")

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		// Не раскрываем, что именно не совпало
		log.WithError(err).Warn("Login attempt for unknown username")
		return "", ErrInvalidCredentials
	}

	if !auth.VerifyPassword(password, user.HashedPassword) {
		log.Warn("Login attempt with wrong password")
		return "", ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Warn("Login attempt for inactive user")
		return "", ErrInactiveUser
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to generate access token")
		return "", fmt.Errorf("service: could not generate token: %w", err)
	}

	log.Info("User logged in successfully")
	return token, nil
}

// Authenticate проверяет токен доступа и возвращает его владельца
func (s *authService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	return user, nil
}
