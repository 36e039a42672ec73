package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/map_my_world/internal/config"
	"github.com/shenikar/map_my_world/internal/geo"
	"github.com/shenikar/map_my_world/internal/models"
	"github.com/shenikar/map_my_world/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	authService     service.AuthService
	locationService service.LocationService
	categoryService service.CategoryService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	authService service.AuthService,
	locationService service.LocationService,
	categoryService service.CategoryService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authService:     authService,
		locationService: locationService,
		categoryService: categoryService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Register a new user
// @Description Register a new user with email, username and password.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User registration request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Email or username already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), input.Email, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) || errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to register user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToUserResponse(user))
}

// @Summary Log in
// @Description Authenticate with username and password, returns a JWT access token.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "User credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string "Invalid request body or inactive user"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		case errors.Is(err, service.ErrInactiveUser):
			c.JSON(http.StatusBadRequest, gin.H{"error": "inactive user account"})
		default:
			log.WithError(err).Error("Failed to log user in")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// @Summary Create a new location
// @Description Create a new location owned by the authenticated user.
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body CreateLocationRequest true "Location creation request"
// @Success 201 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Referenced category not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [post]
func (h *Handler) createLocation(c *gin.Context) {
	var input CreateLocationRequest
	log := h.logger.WithField("method", "createLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToLocationModel(input)
	model.OwnerID = currentUserID(c)

	if err := h.locationService.CreateLocation(c.Request.Context(), model); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		log.WithError(err).Error("Failed to create location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToLocationResponse(model))
}

// @Summary Get my locations
// @Description Get a paginated list of locations owned by the authenticated user.
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of items per page" default(100)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {array} LocationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [get]
func (h *Handler) listLocations(c *gin.Context) {
	log := h.logger.WithField("method", "listLocations")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.cfg.DefaultSearchLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	locations, err := h.locationService.ListLocations(c.Request.Context(), currentUserID(c), limit, offset)
	if err != nil {
		log.WithError(err).Error("Failed to list locations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToLocationResponses(locations))
}

// @Summary Get location by ID
// @Description Get a single location by its ID. Only the owner can see it.
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid location ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{id} [get]
func (h *Handler) getLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location ID"})
		return
	}
	log := h.logger.WithField("method", "getLocation").WithField("id", id)

	location, err := h.locationService.GetLocation(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
			return
		}
		log.WithError(err).Error("Failed to get location from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(location))
}

// @Summary Update an existing location
// @Description Update an existing location by ID. Only the owner can update it.
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param location body UpdateLocationRequest true "Location update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid location ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location or category not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{id} [put]
func (h *Handler) updateLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location ID"})
		return
	}
	log := h.logger.WithField("method", "updateLocation").WithField("id", id)

	var input UpdateLocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToLocationModel(input)
	model.ID = id
	model.OwnerID = currentUserID(c)

	if err := h.locationService.UpdateLocation(c.Request.Context(), model); err != nil {
		if errors.Is(err, service.ErrLocationNotFound) || errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to update location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete a location
// @Description Delete a location by its ID. Only the owner can delete it.
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid location ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{id} [delete]
func (h *Handler) deleteLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location ID"})
		return
	}
	log := h.logger.WithField("method", "deleteLocation").WithField("id", id)

	if err := h.locationService.DeleteLocation(c.Request.Context(), id, currentUserID(c)); err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
			return
		}
		log.WithError(err).Error("Failed to delete location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Search nearby locations
// @Description Find the authenticated user's locations within a radius of a point, ordered by distance.
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude of the search center"
// @Param lon query number true "Longitude of the search center"
// @Param radius_km query number true "Search radius in kilometers"
// @Success 200 {array} NearbyLocationResponse
// @Failure 400 {object} map[string]string "Invalid coordinates or radius"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/search/nearby [get]
func (h *Handler) searchNearby(c *gin.Context) {
	log := h.logger.WithField("method", "searchNearby")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	radiusKm, errRadius := strconv.ParseFloat(c.Query("radius_km"), 64)
	if errLat != nil || errLon != nil || errRadius != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat, lon and radius_km are required numeric parameters"})
		return
	}

	// Проверка диапазона координат на границе, до входа в ядро
	center, err := geo.NewCoordinate(lat, lon)
	if err != nil {
		log.Warn("Rejected search with out-of-range coordinates")
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}

	matches, err := h.locationService.SearchNearby(c.Request.Context(), service.SearchQuery{
		CenterLat: center.Lat,
		CenterLon: center.Lon,
		RadiusKm:  radiusKm,
		OwnerID:   currentUserID(c),
	})
	if err != nil {
		if errors.Is(err, geo.ErrInvalidRadius) || errors.Is(err, geo.ErrInvalidCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to search nearby locations in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, MatchesToNearbyResponses(matches))
}

// @Summary Create a new category
// @Description Create a new category owned by the authenticated user.
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body CreateCategoryRequest true "Category creation request"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories [post]
func (h *Handler) createCategory(c *gin.Context) {
	var input CreateCategoryRequest
	log := h.logger.WithField("method", "createCategory")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := &models.Category{
		OwnerID:     currentUserID(c),
		Name:        input.Name,
		Description: input.Description,
	}
	if err := h.categoryService.CreateCategory(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create category in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToCategoryResponse(model))
}

// @Summary Get my categories
// @Description Get a paginated list of categories owned by the authenticated user.
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of items per page" default(100)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {array} CategoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories [get]
func (h *Handler) listCategories(c *gin.Context) {
	log := h.logger.WithField("method", "listCategories")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.cfg.DefaultSearchLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	categories, err := h.categoryService.ListCategories(c.Request.Context(), currentUserID(c), limit, offset)
	if err != nil {
		log.WithError(err).Error("Failed to list categories from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToCategoryResponses(categories))
}

// @Summary Get category by ID
// @Description Get a single category by its ID. Only the owner can see it.
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} map[string]string "Invalid category ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories/{id} [get]
func (h *Handler) getCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
		return
	}
	log := h.logger.WithField("method", "getCategory").WithField("id", id)

	category, err := h.categoryService.GetCategory(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		log.WithError(err).Error("Failed to get category from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToCategoryResponse(category))
}

// @Summary Delete a category
// @Description Delete a category by its ID. Locations referencing it keep existing without a category.
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid category ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /categories/{id} [delete]
func (h *Handler) deleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
		return
	}
	log := h.logger.WithField("method", "deleteCategory").WithField("id", id)

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id, currentUserID(c)); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		log.WithError(err).Error("Failed to delete category in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
