// internal/middleware/auth_middleware.go
package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rywndr/AfiDu/config"
	"github.com/rywndr/AfiDu/models"
)

// cachedUser is the per-user payload kept in redis so authenticated
// requests skip the users table.
type cachedUser struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

const userCacheTTL = 15 * time.Minute

// AuthMiddleware authenticates requests via the JWT auth cookie, falling
// back to a bearer Authorization header.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("auth_token")
		if err != nil || tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				abortUnauthorized(c, "Authorization token not provided")
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				abortUnauthorized(c, "Invalid Authorization header format")
				return
			}
			tokenStr = parts[1]
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return config.JwtKey, nil
		})
		if err != nil || !token.Valid {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "Invalid token claims")
			return
		}
		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			abortUnauthorized(c, "Invalid user ID format in token")
			return
		}
		userID := uint(userIDFloat)

		cacheKey := fmt.Sprintf("user:%d:data", userID)
		if config.RDB != nil {
			if cached, err := config.RDB.Get(config.Ctx, cacheKey).Result(); err == nil {
				var data cachedUser
				if json.Unmarshal([]byte(cached), &data) == nil {
					proceed(c, &data)
					return
				}
			}
		}

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			abortUnauthorized(c, "User no longer exists")
			return
		}

		data := cachedUser{UserID: user.ID, Username: user.Username}
		if config.RDB != nil {
			if body, err := json.Marshal(data); err == nil {
				config.RDB.Set(config.Ctx, cacheKey, body, userCacheTTL)
			}
		}
		proceed(c, &data)
	}
}

func proceed(c *gin.Context, data *cachedUser) {
	c.Set("user_id", data.UserID)
	c.Set("username", data.Username)
	c.Next()
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
