package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"qrlink/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxShopKey = "shop"

// TokenValidator checks a platform-issued session token and yields its
// claims. Implemented by pkg/jwt.Service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireShop authenticates admin requests and pins the owning shop into the
// request context. Every admin operation is scoped to that shop.
func (m *AuthMiddleware) RequireShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxShopKey, claims.Shop)
		c.Next()
	}
}

// GetShop returns the authenticated shop domain from context.
func GetShop(c *gin.Context) (string, bool) {
	shop, exists := c.Get(ctxShopKey)
	if !exists {
		return "", false
	}

	s, ok := shop.(string)
	return s, ok && s != ""
}
