package handler

import (
	"net/http"

	"homeclean-booking/internal/handler/api"
	"homeclean-booking/internal/handler/middleware"
	"homeclean-booking/internal/pkg/config"

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
	Wizard       *api.WizardHandler
	Catalog      *api.CatalogHandler
	Reservation  *api.ReservationHandler
	Notification *api.NotificationHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.GET("/ws/notifications", authMiddleware.RequireAuthWS(), h.Notification.Subscribe)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/catalog", Handler: h.Catalog.GetCatalog},
			{Method: http.MethodPost, Path: "/quotes", Handler: h.Catalog.Quote, Mw: []gin.HandlerFunc{limiter.Middleware()}},
		})

		wizards := apiGroup.Group("/wizards")
		wizards.Use(authMiddleware.RequireAuth(), authMiddleware.RequireBookingRole())
		{
			limited := []gin.HandlerFunc{limiter.Middleware()}
			addRoutes(wizards, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Wizard.Start, Mw: limited},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Wizard.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Wizard.Update, Mw: limited},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Wizard.Discard},
				{Method: http.MethodPost, Path: "/:id/next", Handler: h.Wizard.Next, Mw: limited},
				{Method: http.MethodPost, Path: "/:id/prev", Handler: h.Wizard.Prev, Mw: limited},
				{Method: http.MethodPost, Path: "/:id/options/:optionId/toggle", Handler: h.Wizard.ToggleOption, Mw: limited},
				{Method: http.MethodPut, Path: "/:id/options/:optionId/count", Handler: h.Wizard.SetOptionCount, Mw: limited},
				{Method: http.MethodPost, Path: "/:id/managers", Handler: h.Wizard.LookupManagers, Mw: limited},
				{Method: http.MethodPost, Path: "/:id/managers/:managerId", Handler: h.Wizard.SelectManager, Mw: limited},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: h.Wizard.Submit, Mw: limited},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.GetUserReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
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
