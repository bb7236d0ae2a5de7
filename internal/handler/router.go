package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"qrlink/internal/handler/api"
	"qrlink/internal/handler/middleware"
	"qrlink/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, qrCodeHandler *api.QRCodeHandler, scanHandler *api.ScanHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, qrCodeHandler, scanHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, qrCodeHandler *api.QRCodeHandler, scanHandler *api.ScanHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Public surface: scan redirects and the detail page data are reachable
	// without a token, matching what a printed QR code can carry.
	codes := engine.Group("/codes")
	{
		addRoutes(codes, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: qrCodeHandler.Detail},
			{Method: http.MethodGet, Path: "/:id/scan", Handler: scanHandler.Scan},
		})
	}

	apiGroup := engine.Group("/api")
	{
		managed := apiGroup.Group("/codes")
		managed.Use(authMiddleware.RequireShop())
		{
			addRoutes(managed, []route{
				{Method: http.MethodGet, Path: "", Handler: qrCodeHandler.List},
				{Method: http.MethodPost, Path: "", Handler: qrCodeHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: qrCodeHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: qrCodeHandler.Update},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
