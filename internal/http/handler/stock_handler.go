package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/paint-stock-api/internal/domain"
	"github.com/straye-as/paint-stock-api/internal/ledger"
	"github.com/straye-as/paint-stock-api/internal/service"
	"go.uber.org/zap"
)

type StockHandler struct {
	store  *service.StoreService
	logger *zap.Logger
}

func NewStockHandler(store *service.StoreService, logger *zap.Logger) *StockHandler {
	return &StockHandler{
		store:  store,
		logger: logger,
	}
}

// Get godoc
// @Summary Get a color's stock ledger
// @Tags Stock
// @Produce json
// @Param color path string true "Paint color" Enums(Metallic, Blue, White, Red, Pink)
// @Success 200 {array} domain.StockWeekRecord
// @Failure 400 {object} domain.ErrorResponse
// @Router /stock/{color} [get]
func (h *StockHandler) Get(w http.ResponseWriter, r *http.Request) {
	weeks, err := h.store.Ledger(domain.PaintColor(chi.URLParam(r, "color")))
	if err != nil {
		handleStoreError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, weeks)
}

// UpdateField godoc
// @Summary Edit one field of a ledger week
// @Description Recomputes remaining stock and status, and carries remaining stock into every later week
// @Tags Stock
// @Accept json
// @Produce json
// @Param color path string true "Paint color" Enums(Metallic, Blue, White, Red, Pink)
// @Param week path int true "Week index (0-3)"
// @Param request body domain.UpdateStockFieldRequest true "Field and value"
// @Success 200 {array} domain.StockWeekRecord
// @Failure 400 {object} domain.ErrorResponse
// @Router /stock/{color}/weeks/{week} [put]
func (h *StockHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	weekIndex, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid week index")
		return
	}

	var req domain.UpdateStockFieldRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cmd, err := ledger.ParseCommand(req.Field, *req.Value)
	if err != nil {
		handleStoreError(w, h.logger, err)
		return
	}

	color := domain.PaintColor(chi.URLParam(r, "color"))
	if err := h.store.UpdateStockField(r.Context(), color, weekIndex, cmd); err != nil {
		handleStoreError(w, h.logger, err)
		return
	}

	weeks, err := h.store.Ledger(color)
	if err != nil {
		handleStoreError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, weeks)
}
