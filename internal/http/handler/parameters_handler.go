package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/straye-as/paint-stock-api/internal/domain"
	"github.com/straye-as/paint-stock-api/internal/service"
	"go.uber.org/zap"
)

type ParametersHandler struct {
	store  *service.StoreService
	logger *zap.Logger
}

func NewParametersHandler(store *service.StoreService, logger *zap.Logger) *ParametersHandler {
	return &ParametersHandler{
		store:  store,
		logger: logger,
	}
}

// Update godoc
// @Summary Replace the configuration
// @Description Replaces paints and all three tank lists in one step
// @Tags Parameters
// @Accept json
// @Produce json
// @Param request body domain.Parameters true "New configuration"
// @Success 200 {object} domain.Parameters
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Security AdminSession
// @Router /parameters [put]
func (h *ParametersHandler) Update(w http.ResponseWriter, r *http.Request) {
	var params domain.Parameters
	if !decodeAndValidate(w, r, &params) {
		return
	}

	if err := h.store.UpdateParameters(r.Context(), params); err != nil {
		handleStoreError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, h.store.Snapshot().Parameters)
}

// UpdateDensity godoc
// @Summary Change a paint's density
// @Tags Parameters
// @Accept json
// @Produce json
// @Param color path string true "Paint color" Enums(Metallic, Blue, White, Red, Pink)
// @Param request body domain.UpdateDensityRequest true "Density in kg/L"
// @Success 200 {object} domain.Parameters
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security AdminSession
// @Router /parameters/paints/{color}/density [put]
func (h *ParametersHandler) UpdateDensity(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateDensityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	color := domain.PaintColor(chi.URLParam(r, "color"))
	if err := h.store.UpdateDensity(r.Context(), color, req.Density); err != nil {
		handleStoreError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, h.store.Snapshot().Parameters)
}

// AddTank godoc
// @Summary Add a tank to a category
// @Description The new tank gets the next free number and default dimensions
// @Tags Parameters
// @Produce json
// @Param category path string true "Tank category" Enums(pinik, home, industrial)
// @Success 201 {object} domain.Tank
// @Failure 400 {object} domain.ErrorResponse
// @Security AdminSession
// @Router /parameters/tanks/{category} [post]
func (h *ParametersHandler) AddTank(w http.ResponseWriter, r *http.Request) {
	category := domain.TankCategory(chi.URLParam(r, "category"))

	tank, err := h.store.AddTank(r.Context(), category)
	if err != nil {
		handleStoreError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, tank)
}

// UpdateTank godoc
// @Summary Edit a tank
// @Description Omitted fields are left unchanged. Id, number and category are fixed.
// @Tags Parameters
// @Accept json
// @Produce json
// @Param category path string true "Tank category" Enums(pinik, home, industrial)
// @Param tankId path string true "Tank id"
// @Param request body domain.UpdateTankRequest true "Fields to change"
// @Success 200 {object} domain.Tank
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security AdminSession
// @Router /parameters/tanks/{category}/{tankId} [put]
func (h *ParametersHandler) UpdateTank(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateTankRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category := domain.TankCategory(chi.URLParam(r, "category"))
	tank, err := h.store.UpdateTank(r.Context(), category, chi.URLParam(r, "tankId"), req)
	if err != nil {
		handleStoreError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, tank)
}

// RemoveTank godoc
// @Summary Remove a tank
// @Description Recorded consumption for the tank is kept but no longer attributed to a color
// @Tags Parameters
// @Param category path string true "Tank category" Enums(pinik, home, industrial)
// @Param tankId path string true "Tank id"
// @Success 204
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security AdminSession
// @Router /parameters/tanks/{category}/{tankId} [delete]
func (h *ParametersHandler) RemoveTank(w http.ResponseWriter, r *http.Request) {
	category := domain.TankCategory(chi.URLParam(r, "category"))
	if err := h.store.RemoveTank(r.Context(), category, chi.URLParam(r, "tankId")); err != nil {
		handleStoreError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
