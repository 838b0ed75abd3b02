package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/barberbook/api/internal/config"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextShopID   = "shopID"
)

func parseToken(cfg *config.Config, tokenString string) (jwt.MapClaims, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

func setIdentity(c *gin.Context, claims jwt.MapClaims) bool {
	userID, ok := claims["sub"].(float64)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)

	c.Set(ContextUserID, uint(userID))
	c.Set(ContextUserRole, role)

	if shopID, ok := claims["shopId"].(float64); ok {
		id := uint(shopID)
		c.Set(ContextShopID, &id)
	}
	return true
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		claims, ok := parseToken(cfg, tokenString)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		if !setIdentity(c, claims) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Next()
	}
}

// OptionalAuthMiddleware attaches the identity when a valid token is
// present but lets anonymous requests through: guest bookings are managed
// with the booking's contact email instead of an account.
func OptionalAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if claims, ok := parseToken(cfg, tokenString); ok {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}
