//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"qrlink/internal/handler/httperr"
	"qrlink/internal/handler/middleware"
	"qrlink/internal/pkg/config"
	"qrlink/internal/pkg/errs"
	"qrlink/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.LoggingMiddleware(nil, config.NewTestConfig().Log))
	router.Use(middleware.ErrorHandler())
	return router
}

func TestErrorHandler(t *testing.T) {
	t.Run("server error response keeps the public message only", func(t *testing.T) {
		router := newErrorRouter()
		router.GET("/boom", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("pool exhausted"), "Internal error", nil)
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Internal error")
		assert.NotContains(t, rec.Body.String(), "pool exhausted")
	})

	t.Run("unwritten public error is rendered from its meta", func(t *testing.T) {
		router := newErrorRouter()
		router.GET("/deferred", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusConflict}
			resp.Error.Message = "Already exists"
			_ = c.Error(&gin.Error{
				Err:  errs.New("duplicate row"),
				Type: gin.ErrorTypePublic,
				Meta: resp,
			})
			c.Abort()
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/deferred", nil, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Already exists")
	})

	t.Run("clean handlers pass through untouched", func(t *testing.T) {
		router := newErrorRouter()
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
