package handler

import (
	"net/http"

	"github.com/straye-as/paint-stock-api/internal/service"
	"go.uber.org/zap"
)

type SnapshotHandler struct {
	store  *service.StoreService
	logger *zap.Logger
}

func NewSnapshotHandler(store *service.StoreService, logger *zap.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		store:  store,
		logger: logger,
	}
}

// Get godoc
// @Summary Get the full application snapshot
// @Description Returns parameters, the current week's consumption and the stock ledger
// @Tags Snapshot
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /snapshot [get]
func (h *SnapshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Snapshot())
}

// Summary godoc
// @Summary Get dashboard figures
// @Description Weekly totals per color, category and day, current stock and low stock weeks
// @Tags Snapshot
// @Produce json
// @Success 200 {object} domain.SummaryDTO
// @Router /summary [get]
func (h *SnapshotHandler) Summary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Summary())
}

// Reset godoc
// @Summary Reset all data to defaults
// @Description Deletes the persisted snapshot and restores the default configuration
// @Tags Snapshot
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security AdminSession
// @Router /reset [post]
func (h *SnapshotHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Reset(r.Context()); err != nil {
		handleStoreError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, h.store.Snapshot())
}
