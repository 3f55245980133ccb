package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/straye-as/paint-stock-api/internal/database"
	"github.com/straye-as/paint-stock-api/internal/domain"
	"github.com/straye-as/paint-stock-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const readinessTimeout = 5 * time.Second

type HealthHandler struct {
	store  storage.Storage
	key    string
	db     *gorm.DB
	logger *zap.Logger
}

// NewHealthHandler creates the health handler. db is nil unless snapshots
// are kept in a database.
func NewHealthHandler(store storage.Storage, key string, db *gorm.DB, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		key:    key,
		db:     db,
		logger: logger,
	}
}

// Live godoc
// @Summary Liveness probe
// @Tags Health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Ready godoc
// @Summary Readiness probe
// @Description Checks that the snapshot storage (and database, if used) is reachable
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	checks := make(map[string]interface{})
	allHealthy := true

	if h.db != nil {
		if err := database.HealthCheck(ctx, h.db); err != nil {
			h.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{"status": "unhealthy", "error": err.Error()}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{"status": "healthy"}
		}
	}

	// A snapshot that was never saved still means the storage answered
	if _, err := h.store.Get(ctx, h.key); err != nil && !errors.Is(err, domain.ErrNotFound) {
		h.logger.Error("Storage health check failed", zap.Error(err))
		checks["storage"] = map[string]interface{}{"status": "unhealthy", "error": err.Error()}
		allHealthy = false
	} else {
		checks["storage"] = map[string]interface{}{"status": "healthy"}
	}

	status := http.StatusOK
	overall := "healthy"
	if !allHealthy {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}
	respondJSON(w, status, map[string]interface{}{
		"status": overall,
		"checks": checks,
	})
}
