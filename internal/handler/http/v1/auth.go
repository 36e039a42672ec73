package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/map_my_world/internal/models"
	"github.com/shenikar/map_my_world/internal/service"
	"github.com/sirupsen/logrus"
)

// Ключ, под которым аутентифицированный пользователь лежит в контексте запроса
const currentUserKey = "currentUser"

// JWTAuthMiddleware - middleware для аутентификации по Bearer-токену.
// Валидный токен превращается в пользователя, который кладется в контекст,
// дальше хэндлеры работают только с его ID.
func JWTAuthMiddleware(authService service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Bearer token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.WithError(err).Warn("Rejected request with invalid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// currentUserID возвращает ID аутентифицированного пользователя из контекста.
// Вызывается только из хэндлеров за JWTAuthMiddleware.
func currentUserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(currentUserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user.ID
		}
	}
	return uuid.Nil
}
