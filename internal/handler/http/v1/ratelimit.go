package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RateLimitMiddleware ограничивает число запросов пользователя в минуту.
// Счетчик ведется в Redis по фиксированному минутному окну (INCR + EXPIRE).
// При недоступности Redis запросы пропускаются - лимитер не должен
// превращаться в единую точку отказа.
func RateLimitMiddleware(redisClient *redis.Client, log *logrus.Logger, requestsPerMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		window := time.Now().Unix() / 60
		key := fmt.Sprintf("ratelimit:%s:%d", userID.String(), window)

		count, err := redisClient.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.WithError(err).Warn("Rate limiter unavailable, letting request through")
			c.Next()
			return
		}

		if count == 1 {
			if err := redisClient.Expire(c.Request.Context(), key, time.Minute).Err(); err != nil {
				log.WithError(err).Warn("Failed to set TTL on rate limit counter")
			}
		}

		if count > int64(requestsPerMinute) {
			log.WithField("user_id", userID).Warn("Rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
