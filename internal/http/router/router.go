package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/straye-as/paint-stock-api/internal/auth"
	"github.com/straye-as/paint-stock-api/internal/config"
	"github.com/straye-as/paint-stock-api/internal/http/handler"
	"github.com/straye-as/paint-stock-api/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/straye-as/paint-stock-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg                *config.Config
	logger             *zap.Logger
	gate               *auth.Gate
	rateLimiter        *middleware.RateLimiter
	healthHandler      *handler.HealthHandler
	authHandler        *handler.AuthHandler
	snapshotHandler    *handler.SnapshotHandler
	parametersHandler  *handler.ParametersHandler
	stockHandler       *handler.StockHandler
	consumptionHandler *handler.ConsumptionHandler
	reportHandler      *handler.ReportHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	gate *auth.Gate,
	rateLimiter *middleware.RateLimiter,
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	snapshotHandler *handler.SnapshotHandler,
	parametersHandler *handler.ParametersHandler,
	stockHandler *handler.StockHandler,
	consumptionHandler *handler.ConsumptionHandler,
	reportHandler *handler.ReportHandler,
) *Router {
	return &Router{
		cfg:                cfg,
		logger:             logger,
		gate:               gate,
		rateLimiter:        rateLimiter,
		healthHandler:      healthHandler,
		authHandler:        authHandler,
		snapshotHandler:    snapshotHandler,
		parametersHandler:  parametersHandler,
		stockHandler:       stockHandler,
		consumptionHandler: consumptionHandler,
		reportHandler:      reportHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit)
	if timeout := rt.cfg.Server.RequestTimeoutDuration(); timeout > 0 {
		r.Use(chimw.Timeout(timeout))
	}

	r.Get("/health", rt.healthHandler.Live)
	r.Get("/health/ready", rt.healthHandler.Ready)

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.With(rt.rateLimiter.LimitLogin).Post("/auth/login", rt.authHandler.Login)

		// Data entry, open to every operator
		r.Get("/snapshot", rt.snapshotHandler.Get)
		r.Get("/summary", rt.snapshotHandler.Summary)

		r.Route("/stock", func(r chi.Router) {
			r.Get("/{color}", rt.stockHandler.Get)
			r.Put("/{color}/weeks/{week}", rt.stockHandler.UpdateField)
		})

		r.Route("/consumption", func(r chi.Router) {
			r.Put("/week", rt.consumptionHandler.UpdateWeek)
			r.Put("/days/{day}/{category}/{tankId}", rt.consumptionHandler.UpdateEntry)
			r.Post("/levels", rt.consumptionHandler.CalculateLevels)
		})

		r.Route("/report", func(r chi.Router) {
			r.Get("/", rt.reportHandler.Get)
			r.Get("/export", rt.reportHandler.Export)
		})

		// Settings and reset need an admin session
		r.Group(func(r chi.Router) {
			r.Use(rt.gate.RequireAdmin)

			r.Route("/parameters", func(r chi.Router) {
				r.Put("/", rt.parametersHandler.Update)
				r.Put("/paints/{color}/density", rt.parametersHandler.UpdateDensity)
				r.Post("/tanks/{category}", rt.parametersHandler.AddTank)
				r.Put("/tanks/{category}/{tankId}", rt.parametersHandler.UpdateTank)
				r.Delete("/tanks/{category}/{tankId}", rt.parametersHandler.RemoveTank)
			})

			r.Post("/reset", rt.snapshotHandler.Reset)
		})
	})

	return r
}
