package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/map_my_world/internal/auth"
	"github.com/shenikar/map_my_world/internal/models"
	"github.com/shenikar/map_my_world/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAuthService(t *testing.T) (*authService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	tokens := auth.NewTokenManager("test-secret", 30*time.Minute)

	service := NewAuthService(repoMock, tokens, logger)
	return service.(*authService), repoMock
}

func TestRegister_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByEmail(ctx, "ivan@example.com").
		Return(nil, fmt.Errorf("db: %w", ErrUserNotFound)).
		Times(1)
	repoMock.EXPECT().
		GetByUsername(ctx, "ivan").
		Return(nil, fmt.Errorf("db: %w", ErrUserNotFound)).
		Times(1)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			// Симулируем, что БД присвоила ID
			user.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	user, err := service.Register(ctx, "ivan@example.com", "ivan", "strong-password")

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.True(t, user.IsActive)
	// Пароль сохранен только в виде хеша
	assert.NotEqual(t, "strong-password", user.HashedPassword)
	assert.True(t, auth.VerifyPassword("strong-password", user.HashedPassword))
}

func TestRegister_EmailTaken(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAuthService(t)
	ctx := context.Background()
	existing := &models.User{ID: uuid.New(), Email: "ivan@example.com"}

	// Ожидания
	repoMock.EXPECT().GetByEmail(ctx, "ivan@example.com").Return(existing, nil).Times(1)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.Register(ctx, "ivan@example.com", "ivan", "strong-password")

	// Проверки
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_UsernameTaken(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAuthService(t)
	ctx := context.Background()
	existing := &models.User{ID: uuid.New(), Username: "ivan"}

	// Ожидания
	repoMock.EXPECT().
		GetByEmail(ctx, "ivan@example.com").
		Return(nil, fmt.Errorf("db: %w", ErrUserNotFound)).
		Times(1)
	repoMock.EXPECT().GetByUsername(ctx, "ivan").Return(existing, nil).Times(1)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.Register(ctx, "ivan@example.com", "ivan", "strong-password")

	// Проверки
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAuthService(t)
	ctx := context.Background()
	hash, err := auth.HashPassword("strong-password")
	require.NoError(t, err)
	user := &models.User{
		ID:             uuid.New(),
		Username:       "ivan",
		HashedPassword: hash,
		IsActive:       true,
	}

	// Ожидания
	repoMock.EXPECT().GetByUsername(ctx, "ivan").Return(user, nil).Times(1)

	// Действие
	token, err := service.Login(ctx, "ivan", "strong-password")

	// Проверки
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAuthService(t)
	ctx := context.Background()
	hash, err := auth.HashPassword("strong-password")
	require.NoError(t, err)
	user := &models.User{
		ID:             uuid.New(),
		Username:       "ivan",
		HashedPassword: hash,
		IsActive:       true,
	}

	// Ожидания
	repoMock.EXPECT().GetByUsername(ctx, "ivan").Return(user, nil).Times(1)

	// Действие
	_, err = service.Login(ctx, "ivan", "wrong-password")

	// Проверки
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		GetByUsername(ctx, "ghost").
		Return(nil, fmt.Errorf("db: %w", ErrUserNotFound)).
		Times(1)

	// Действие
	_, err := service.Login(ctx, "ghost", "whatever")

	// Проверки: для неизвестного пользователя та же ошибка, что и для неверного пароля
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAuthService(t)
	ctx := context.Background()
	hash, err := auth.HashPassword("strong-password")
	require.NoError(t, err)
	user := &models.User{
		ID:             uuid.New(),
		Username:       "ivan",
		HashedPassword: hash,
		IsActive:       false,
	}

	// Ожидания
	repoMock.EXPECT().GetByUsername(ctx, "ivan").Return(user, nil).Times(1)

	// Действие
	_, err = service.Login(ctx, "ivan", "strong-password")

	// Проверки
	assert.ErrorIs(t, err, ErrInactiveUser)
}

func TestAuthenticate_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAuthService(t)
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Username: "ivan", IsActive: true}

	token, err := service.tokens.Generate(user.ID)
	require.NoError(t, err)

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, user.ID).Return(user, nil).Times(1)

	// Действие
	got, err := service.Authenticate(ctx, token)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	// Подготовка
	service, _ := newTestAuthService(t)
	ctx := context.Background()

	// Действие
	_, err := service.Authenticate(ctx, "not-a-jwt")

	// Проверки
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_InactiveUser(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAuthService(t)
	ctx := context.Background()
	user := &models.User{ID: uuid.New(), IsActive: false}

	token, err := service.tokens.Generate(user.ID)
	require.NoError(t, err)

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, user.ID).Return(user, nil).Times(1)

	// Действие
	_, err = service.Authenticate(ctx, token)

	// Проверки
	assert.ErrorIs(t, err, ErrInactiveUser)
}
