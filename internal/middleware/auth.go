package middleware

import (
	"net/http"
	"strings"

	"blogmarket_backend/internal/auth"
	"blogmarket_backend/internal/config"
	"blogmarket_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", claims.UserID)
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// APIKeyMiddleware защищает intake-эндпоинты внешней системы.
// Ключ сравнивается с cfg.Intake.APIKey; пустой ключ в конфиге
// закрывает эндпоинт полностью.
func APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.GetConfig()
		key := c.GetHeader("X-API-Key")

		if cfg.Intake.APIKey == "" || key != cfg.Intake.APIKey {
			logger.CtxWarn(c.Request.Context(), "intake request rejected: bad api key", "ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}
