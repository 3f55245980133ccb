package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/straye-as/paint-stock-api/docs"
	"github.com/straye-as/paint-stock-api/internal/auth"
	"github.com/straye-as/paint-stock-api/internal/config"
	"github.com/straye-as/paint-stock-api/internal/database"
	"github.com/straye-as/paint-stock-api/internal/http/handler"
	"github.com/straye-as/paint-stock-api/internal/http/middleware"
	"github.com/straye-as/paint-stock-api/internal/http/router"
	"github.com/straye-as/paint-stock-api/internal/jobs"
	"github.com/straye-as/paint-stock-api/internal/logger"
	"github.com/straye-as/paint-stock-api/internal/report"
	"github.com/straye-as/paint-stock-api/internal/repository"
	"github.com/straye-as/paint-stock-api/internal/service"
	"github.com/straye-as/paint-stock-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Paint Stock API
// @version 1.0
// @description Paint consumption and stock tracking for the tank farm

// @BasePath /api/v1

// @securityDefinitions.apikey AdminSession
// @in header
// @name Authorization
// @description Admin session token from /auth/login, as "Bearer <token>"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	if basicCfg.App.Environment == "development" || basicCfg.App.Environment == "local" {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// In development secrets come from the environment, in staging and
	// production from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("auth.jwtSecret must be set")
	}

	blobStore, db, err := openStorage(cfg, log)
	if err != nil {
		return err
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	store := service.NewStoreService(blobStore, cfg.Storage.SnapshotKey, cfg.Report.TargetsByColor(), log)
	loadCtx, cancelLoad := context.WithTimeout(ctx, 30*time.Second)
	err = store.Load(loadCtx)
	cancelLoad()
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	gate := auth.NewGate(&cfg.Auth, log)

	rt := router.NewRouter(
		cfg,
		log,
		gate,
		middleware.NewRateLimiter(&cfg.RateLimit, log),
		handler.NewHealthHandler(blobStore, cfg.Storage.SnapshotKey, db, log),
		handler.NewAuthHandler(gate, log),
		handler.NewSnapshotHandler(store, log),
		handler.NewParametersHandler(store, log),
		handler.NewStockHandler(store, log),
		handler.NewConsumptionHandler(store, log),
		handler.NewReportHandler(store, log),
	)

	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler, err = startScheduler(cfg, store, blobStore, log)
		if err != nil {
			return err
		}
	} else {
		log.Info("Report archive disabled")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			<-scheduler.Stop().Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		if db != nil {
			if err := database.Close(db); err != nil {
				log.Warn("Error closing database connection", zap.Error(err))
			}
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}

// openStorage selects the snapshot store. In "database" mode the snapshot
// lives in a SQL table and the returned *gorm.DB is non-nil.
func openStorage(cfg *config.Config, log *zap.Logger) (storage.Storage, *gorm.DB, error) {
	if cfg.Storage.Mode != "database" {
		blobStore, err := storage.NewStorage(&cfg.Storage, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		return blobStore, nil, nil
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	// PostgreSQL schemas are managed by cmd/migrate
	if cfg.Database.Driver == "sqlite" {
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))
	return repository.NewSnapshotRepository(db), db, nil
}

func startScheduler(cfg *config.Config, store *service.StoreService, blobStore storage.Storage, log *zap.Logger) (*jobs.Scheduler, error) {
	formats := make([]report.Format, 0, len(cfg.Jobs.ReportArchiveFormats))
	for _, name := range cfg.Jobs.ReportArchiveFormats {
		format, err := report.ParseFormat(name)
		if err != nil {
			return nil, fmt.Errorf("invalid jobs.reportArchiveFormats: %w", err)
		}
		formats = append(formats, format)
	}

	scheduler := jobs.NewScheduler(log)
	job := jobs.NewReportArchiveJob(store, blobStore, cfg.Jobs.ReportArchivePrefix, formats, log, jobs.DefaultArchiveTimeout)
	if err := jobs.RegisterReportArchiveJob(scheduler, job, cfg.Jobs.ReportArchiveSchedule); err != nil {
		return nil, fmt.Errorf("failed to register report archive job: %w", err)
	}

	scheduler.Start()
	log.Info("Scheduler started with report archive job",
		zap.String("cron_expr", cfg.Jobs.ReportArchiveSchedule),
		zap.String("prefix", cfg.Jobs.ReportArchivePrefix),
	)
	return scheduler, nil
}
