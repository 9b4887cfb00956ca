package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"medicare-portal-server/internal/config"
	"medicare-portal-server/internal/store"
	"medicare-portal-server/internal/utils"
)

const claimsContextKey = "claims"

// AuthMiddleware creates a middleware for JWT authentication. Requests
// without a valid bearer token are rejected before any handler runs.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "No token provided")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "No token provided")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		// Attach decoded claims for downstream handlers
		c.Set(claimsContextKey, claims)

		c.Next()
	}
}

// GetClaims returns the verified token claims attached by AuthMiddleware.
func GetClaims(c *gin.Context) (*utils.Claims, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*utils.Claims)
	return claims, ok
}

// GetScope derives the data-access scope from the verified claims.
func GetScope(c *gin.Context) (store.AccessScope, bool) {
	claims, ok := GetClaims(c)
	if !ok {
		return store.AccessScope{}, false
	}
	return store.AccessScope{UserID: claims.ID, Role: claims.Role}, true
}
