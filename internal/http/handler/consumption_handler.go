package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/paint-stock-api/internal/consumption"
	"github.com/straye-as/paint-stock-api/internal/domain"
	"github.com/straye-as/paint-stock-api/internal/service"
	"go.uber.org/zap"
)

type ConsumptionHandler struct {
	store  *service.StoreService
	logger *zap.Logger
}

func NewConsumptionHandler(store *service.StoreService, logger *zap.Logger) *ConsumptionHandler {
	return &ConsumptionHandler{
		store:  store,
		logger: logger,
	}
}

// UpdateWeek godoc
// @Summary Set the current week number and date range
// @Tags Consumption
// @Accept json
// @Produce json
// @Param request body domain.UpdateWeekRequest true "Week number and optional date range"
// @Success 200 {object} domain.WeeklyConsumption
// @Failure 400 {object} domain.ErrorResponse
// @Router /consumption/week [put]
func (h *ConsumptionHandler) UpdateWeek(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateWeekRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.store.UpdateWeekNumber(r.Context(), req.WeekNumber); err != nil {
		handleStoreError(w, h.logger, err)
		return
	}
	if req.DateRange != nil {
		if err := h.store.UpdateDateRange(r.Context(), *req.DateRange); err != nil {
			handleStoreError(w, h.logger, err)
			return
		}
	}
	respondJSON(w, http.StatusOK, h.store.Snapshot().WeeklyConsumption)
}

// UpdateEntry godoc
// @Summary Edit a tank entry of one day
// @Description Sets the level or consumed mass and recomputes the day's total. A missing entry is created.
// @Tags Consumption
// @Accept json
// @Produce json
// @Param day path string true "Day index 0-6 or day name"
// @Param category path string true "Tank category" Enums(pinik, home, industrial)
// @Param tankId path string true "Tank id"
// @Param request body domain.UpdateConsumptionEntryRequest true "Field and value"
// @Success 200 {object} domain.DayRecord
// @Failure 400 {object} domain.ErrorResponse
// @Router /consumption/days/{day}/{category}/{tankId} [put]
func (h *ConsumptionHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	dayIndex, err := domain.DayIndex(chi.URLParam(r, "day"))
	if err != nil {
		handleStoreError(w, h.logger, err)
		return
	}

	var req domain.UpdateConsumptionEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cmd, err := consumption.ParseEntryCommand(req.Field, req.Value)
	if err != nil {
		handleStoreError(w, h.logger, err)
		return
	}

	category := domain.TankCategory(chi.URLParam(r, "category"))
	if err := h.store.UpdateConsumptionEntry(r.Context(), dayIndex, category, chi.URLParam(r, "tankId"), cmd); err != nil {
		handleStoreError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, h.store.Snapshot().WeeklyConsumption.Days[dayIndex])
}

// CalculateLevels godoc
// @Summary Convert level readings into mass
// @Description Computes consumed and remaining mass per tank from Monday and Friday levels. Nothing is stored.
// @Tags Consumption
// @Accept json
// @Produce json
// @Param request body domain.CalculateLevelsRequest true "Readings keyed by tank id"
// @Success 200 {object} domain.LevelCalculationDTO
// @Failure 400 {object} domain.ErrorResponse
// @Router /consumption/levels [post]
func (h *ConsumptionHandler) CalculateLevels(w http.ResponseWriter, r *http.Request) {
	var req domain.CalculateLevelsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.store.CalculateLevels(req.Readings))
}
