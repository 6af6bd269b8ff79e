package middlewares

import (
	"facevoice-api/config"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromCookie(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid access token"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// OptionalAuth attaches userID when a valid access token is present and
// lets the request through either way. The face and speech endpoints are
// public; history is only recorded for authenticated callers.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := userIDFromCookie(c); ok {
			c.Set("userID", userID)
		}
		c.Next()
	}
}

func userIDFromCookie(c *gin.Context) (float64, bool) {
	cfg := config.LoadConfig()
	accessToken, err := c.Cookie("access_token")
	if err != nil {
		return 0, false
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	switch v := claims["user_id"].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
