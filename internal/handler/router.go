package handler

import (
	"net/http"

	"booking-core/internal/domain/user"
	"booking-core/internal/handler/api"
	"booking-core/internal/handler/middleware"
	"booking-core/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Orders *api.OrderHandler
	Units  *api.UnitHandler
	Admin  *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter middleware.RateLimiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NoRoute)
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		orders := apiGroup.Group("/orders")
		addRoutes(orders, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Orders.Create, Mw: []gin.HandlerFunc{middleware.RateLimit(limiter)}},
			{Method: http.MethodGet, Path: "", Handler: h.Orders.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Orders.Get},
			{Method: http.MethodPost, Path: "/:id/payment", Handler: h.Orders.ConfirmPayment},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Orders.Cancel},
			{Method: http.MethodPost, Path: "/:id/transfer", Handler: h.Orders.Transfer},
		})

		units := apiGroup.Group("/units")
		addRoutes(units, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Units.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Units.Get},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/orders/expire-stale", Handler: h.Admin.ExpireStale},
			{Method: http.MethodPost, Path: "/units/reconcile", Handler: h.Admin.ReconcileLedger},
		})
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
