package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lng-loading/internal/handler/api"
	"lng-loading/internal/handler/middleware"
	"lng-loading/internal/observability/metrics"
	"lng-loading/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	stationHandler *api.StationHandler,
	customerHandler *api.CustomerHandler,
	slotHandler *api.SlotHandler,
	reservationHandler *api.ReservationHandler,
	dashboardHandler *api.DashboardHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, stationHandler, customerHandler, slotHandler, reservationHandler, dashboardHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	stationHandler *api.StationHandler,
	customerHandler *api.CustomerHandler,
	slotHandler *api.SlotHandler,
	reservationHandler *api.ReservationHandler,
	dashboardHandler *api.DashboardHandler,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		stations := apiGroup.Group("/stations")
		{
			addRoutes(stations, []route{
				{Method: http.MethodGet, Path: "", Handler: stationHandler.List},
				{Method: http.MethodPost, Path: "", Handler: stationHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: stationHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: stationHandler.Update},
			})
		}

		customers := apiGroup.Group("/customers")
		{
			addRoutes(customers, []route{
				{Method: http.MethodGet, Path: "", Handler: customerHandler.List},
				{Method: http.MethodPost, Path: "", Handler: customerHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: customerHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: customerHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: customerHandler.Delete},
			})
		}

		slots := apiGroup.Group("/slots")
		{
			addRoutes(slots, []route{
				{Method: http.MethodGet, Path: "", Handler: slotHandler.List},
				{Method: http.MethodPost, Path: "", Handler: slotHandler.Create},
				{Method: http.MethodGet, Path: "/available", Handler: slotHandler.ListAvailable},
				{Method: http.MethodGet, Path: "/:id", Handler: slotHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: slotHandler.Update},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
				{Method: http.MethodGet, Path: "/by-customer/:id", Handler: reservationHandler.ListByCustomer},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: reservationHandler.Update},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: dashboardHandler.Stats},
				{Method: http.MethodGet, Path: "/today-schedule", Handler: dashboardHandler.TodaySchedule},
				{Method: http.MethodGet, Path: "/recent-activity", Handler: dashboardHandler.RecentActivity},
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
