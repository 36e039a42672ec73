package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/map_my_world/internal/config"
	"github.com/shenikar/map_my_world/internal/geo"
	"github.com/shenikar/map_my_world/internal/handler/http/v1/mocks"
	"github.com/shenikar/map_my_world/internal/models"
	"github.com/shenikar/map_my_world/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	auth     *mocks.MockAuthService
	location *mocks.MockLocationService
	category *mocks.MockCategoryService
}

// newTestHandler создает Handler с мокированными сервисами и тестовым роутером.
// Вместо JWT-middleware в защищенные маршруты подставляется заглушка,
// кладущая тестового пользователя в контекст.
func newTestHandler(t *testing.T) (*testMocks, *gin.Engine, *models.User) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		auth:     mocks.NewMockAuthService(ctrl),
		location: mocks.NewMockLocationService(ctrl),
		category: mocks.NewMockCategoryService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		MaxSearchRadiusKm:  50.0,
		DefaultSearchLimit: 100,
	}

	handler := NewHandler(m.auth, m.location, m.category, logger, cfg)

	testUser := &models.User{
		ID:       uuid.New(),
		Username: "ivan",
		IsActive: true,
	}

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, func(c *gin.Context) {
		c.Set(currentUserKey, testUser)
		c.Next()
	})

	return m, router, testUser
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister_Created(t *testing.T) {
	// Подготовка
	m, router, _ := newTestHandler(t)
	newUser := &models.User{
		ID:       uuid.New(),
		Email:    "ivan@example.com",
		Username: "ivan",
		IsActive: true,
	}

	// Ожидания
	m.auth.EXPECT().
		Register(gomock.Any(), "ivan@example.com", "ivan", "strong-password").
		Return(newUser, nil).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		Email:    "ivan@example.com",
		Username: "ivan",
		Password: "strong-password",
	})

	// Проверки
	require.Equal(t, http.StatusCreated, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, newUser.ID, resp.ID)
	assert.Equal(t, "ivan", resp.Username)
}

func TestRegister_Conflict(t *testing.T) {
	// Подготовка
	m, router, _ := newTestHandler(t)

	// Ожидания
	m.auth.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, service.ErrEmailTaken).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		Email:    "ivan@example.com",
		Username: "ivan",
		Password: "strong-password",
	})

	// Проверки
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_ValidationFailure(t *testing.T) {
	// Подготовка
	m, router, _ := newTestHandler(t)

	// Ожидания: сервис не вызывается
	m.auth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие: невалидный email и слишком короткий пароль
	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		Email:    "not-an-email",
		Username: "ivan",
		Password: "short",
	})

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_ReturnsToken(t *testing.T) {
	// Подготовка
	m, router, _ := newTestHandler(t)

	// Ожидания
	m.auth.EXPECT().
		Login(gomock.Any(), "ivan", "strong-password").
		Return("signed.jwt.token", nil).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodPost, "/api/v1/auth/login", LoginRequest{
		Username: "ivan",
		Password: "strong-password",
	})

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Подготовка
	m, router, _ := newTestHandler(t)

	// Ожидания
	m.auth.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", service.ErrInvalidCredentials).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodPost, "/api/v1/auth/login", LoginRequest{
		Username: "ivan",
		Password: "wrong",
	})

	// Проверки
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSearchNearby_ReturnsOrderedResult(t *testing.T) {
	// Подготовка
	m, router, testUser := newTestHandler(t)
	near := &models.Location{ID: uuid.New(), OwnerID: testUser.ID, Name: "Ближняя", Latitude: 40.4200, Longitude: -3.7100}
	far := &models.Location{ID: uuid.New(), OwnerID: testUser.ID, Name: "Дальняя", Latitude: 40.4500, Longitude: -3.7000}

	// Ожидания: сервис вызывается с параметрами запроса и ID пользователя
	m.location.EXPECT().
		SearchNearby(gomock.Any(), service.SearchQuery{
			CenterLat: 40.4168,
			CenterLon: -3.7038,
			RadiusKm:  10,
			OwnerID:   testUser.ID,
		}).
		Return([]geo.Match{
			{Location: near, DistanceKm: 0.8},
			{Location: far, DistanceKm: 3.7},
		}, nil).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodGet, "/api/v1/locations/search/nearby?lat=40.4168&lon=-3.7038&radius_km=10", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)

	var resp []NearbyLocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, near.ID, resp[0].ID)
	assert.InDelta(t, 0.8, resp[0].DistanceKm, 1e-9)
	assert.Equal(t, 40.4200, resp[0].Coordinate.Latitude)
	assert.LessOrEqual(t, resp[0].DistanceKm, resp[1].DistanceKm)
}

func TestSearchNearby_MissingParams(t *testing.T) {
	// Подготовка
	m, router, _ := newTestHandler(t)

	// Ожидания: до сервиса запрос не доходит
	m.location.EXPECT().SearchNearby(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	w := performRequest(router, http.MethodGet, "/api/v1/locations/search/nearby?lat=40.0", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchNearby_OutOfRangeCoordinates(t *testing.T) {
	// Подготовка
	m, router, _ := newTestHandler(t)

	// Ожидания
	m.location.EXPECT().SearchNearby(gomock.Any(), gomock.Any()).Times(0)

	// Действие: широта за пределами [-90, 90]
	w := performRequest(router, http.MethodGet, "/api/v1/locations/search/nearby?lat=95&lon=0&radius_km=5", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchNearby_InvalidRadius(t *testing.T) {
	// Подготовка
	m, router, testUser := newTestHandler(t)

	// Ожидания: сервис отклоняет нулевой радиус
	m.location.EXPECT().
		SearchNearby(gomock.Any(), service.SearchQuery{
			CenterLat: 40.0,
			CenterLon: -3.0,
			RadiusKm:  0,
			OwnerID:   testUser.ID,
		}).
		Return(nil, fmt.Errorf("service: %w", geo.ErrInvalidRadius)).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodGet, "/api/v1/locations/search/nearby?lat=40.0&lon=-3.0&radius_km=0", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchNearby_RepositoryFailure(t *testing.T) {
	// Подготовка
	m, router, _ := newTestHandler(t)

	// Ожидания: сервис возвращает ошибку хранилища, не связанную с валидацией
	m.location.EXPECT().
		SearchNearby(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: could not fetch candidates: connection refused")).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodGet, "/api/v1/locations/search/nearby?lat=40.0&lon=-3.0&radius_km=5", nil)

	// Проверки
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSearchNearby_EmptyResult(t *testing.T) {
	// Подготовка
	m, router, _ := newTestHandler(t)

	// Ожидания
	m.location.EXPECT().
		SearchNearby(gomock.Any(), gomock.Any()).
		Return([]geo.Match{}, nil).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodGet, "/api/v1/locations/search/nearby?lat=0&lon=0&radius_km=5", nil)

	// Проверки: пустой массив, не ошибка
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreateLocation_Created(t *testing.T) {
	// Подготовка
	m, router, testUser := newTestHandler(t)

	// Ожидания
	m.location.EXPECT().
		CreateLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, loc *models.Location) error {
			assert.Equal(t, testUser.ID, loc.OwnerID)
			loc.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	w := performRequest(router, http.MethodPost, "/api/v1/locations", CreateLocationRequest{
		Name:      "Дом",
		Latitude:  55.75,
		Longitude: 37.61,
	})

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateLocation_OutOfRangeLatitude(t *testing.T) {
	// Подготовка
	m, router, _ := newTestHandler(t)

	// Ожидания
	m.location.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	w := performRequest(router, http.MethodPost, "/api/v1/locations", CreateLocationRequest{
		Name:      "Сломанная",
		Latitude:  100,
		Longitude: 0,
	})

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListLocations_DefaultLimitFromConfig(t *testing.T) {
	// Подготовка
	m, router, testUser := newTestHandler(t)

	// Ожидания: без query-параметров лимит берется из конфигурации
	m.location.EXPECT().
		ListLocations(gomock.Any(), testUser.ID, 100, 0).
		Return([]*models.Location{}, nil).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodGet, "/api/v1/locations", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCategories_DefaultLimitFromConfig(t *testing.T) {
	// Подготовка
	m, router, testUser := newTestHandler(t)

	// Ожидания
	m.category.EXPECT().
		ListCategories(gomock.Any(), testUser.ID, 100, 0).
		Return([]*models.Category{}, nil).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodGet, "/api/v1/categories", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetLocation_NotFound(t *testing.T) {
	// Подготовка
	m, router, testUser := newTestHandler(t)
	locationID := uuid.New()

	// Ожидания
	m.location.EXPECT().
		GetLocation(gomock.Any(), locationID, testUser.ID).
		Return(nil, fmt.Errorf("service: %w", service.ErrLocationNotFound)).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodGet, "/api/v1/locations/"+locationID.String(), nil)

	// Проверки
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLocation_InvalidID(t *testing.T) {
	// Подготовка
	m, router, _ := newTestHandler(t)

	// Ожидания
	m.location.EXPECT().GetLocation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	w := performRequest(router, http.MethodGet, "/api/v1/locations/not-a-uuid", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteLocation_NoContent(t *testing.T) {
	// Подготовка
	m, router, testUser := newTestHandler(t)
	locationID := uuid.New()

	// Ожидания
	m.location.EXPECT().
		DeleteLocation(gomock.Any(), locationID, testUser.ID).
		Return(nil).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodDelete, "/api/v1/locations/"+locationID.String(), nil)

	// Проверки
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCreateCategory_Created(t *testing.T) {
	// Подготовка
	m, router, testUser := newTestHandler(t)

	// Ожидания
	m.category.EXPECT().
		CreateCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, category *models.Category) error {
			assert.Equal(t, testUser.ID, category.OwnerID)
			category.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	w := performRequest(router, http.MethodPost, "/api/v1/categories", CreateCategoryRequest{
		Name: "Рестораны",
	})

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	// Подготовка
	m, router, testUser := newTestHandler(t)
	categoryID := uuid.New()

	// Ожидания
	m.category.EXPECT().
		DeleteCategory(gomock.Any(), categoryID, testUser.ID).
		Return(fmt.Errorf("service: %w", service.ErrCategoryNotFound)).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodDelete, "/api/v1/categories/"+categoryID.String(), nil)

	// Проверки
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck(t *testing.T) {
	// Подготовка
	_, router, _ := newTestHandler(t)

	// Действие
	w := performRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
