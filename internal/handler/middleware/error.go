package middleware

import (
	"log/slog"
	"net/http"

	"qrlink/internal/handler/httperr"
	"qrlink/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxStackLines = 10

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logServerErrors(c)

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

// logServerErrors records the underlying cause of 5xx responses. The access
// log only carries the public message; the stack lives here, keyed by the
// request id.
func logServerErrors(c *gin.Context) {
	if c.Writer.Status() < http.StatusInternalServerError || len(c.Errors) == 0 {
		return
	}
	last := c.Errors.Last()
	slog.Error("request failed",
		"request_id", GetRequestID(c),
		"error", last.Err.Error(),
		"stack", errs.ExtractStackLines(last.Err, maxStackLines),
	)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
