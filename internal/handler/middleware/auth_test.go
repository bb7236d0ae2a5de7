//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"qrlink/internal/handler/middleware"
	"qrlink/internal/pkg/config"
	"qrlink/internal/pkg/jwt"
	"qrlink/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err)
	svc := jwt.NewService(cfg.JWT.Secret, duration)

	router := gin.New()
	auth := middleware.NewAuthMiddleware(svc)
	router.GET("/protected", auth.RequireShop(), func(c *gin.Context) {
		shop, ok := middleware.GetShop(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "shop missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"shop": shop})
	})
	return router, svc
}

func TestRequireShop(t *testing.T) {
	t.Run("valid token pins the shop into context", func(t *testing.T) {
		router, svc := newAuthRouter(t)
		token, err := svc.GenerateToken("test-shop.myshopify.com")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "test-shop.myshopify.com")
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Access token required")
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "not-a-jwt")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	})

	t.Run("token without a shop claim is rejected", func(t *testing.T) {
		router, svc := newAuthRouter(t)
		token, err := svc.GenerateToken("")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		router, _ := newAuthRouter(t)
		other := jwt.NewService("some-other-secret", time.Hour)
		token, err := other.GenerateToken("test-shop.myshopify.com")
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
