package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/straye-as/paint-stock-api/internal/report"
	"github.com/straye-as/paint-stock-api/internal/service"
	"go.uber.org/zap"
)

type ReportHandler struct {
	store  *service.StoreService
	logger *zap.Logger
}

func NewReportHandler(store *service.StoreService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		store:  store,
		logger: logger,
	}
}

// Get godoc
// @Summary Get the weekly consumption report
// @Description Consumption per color against weekly targets, with a totals row
// @Tags Report
// @Produce json
// @Success 200 {object} domain.Report
// @Router /report [get]
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Report())
}

// Export godoc
// @Summary Download the weekly consumption report
// @Tags Report
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce application/pdf
// @Param format query string false "Export format" Enums(csv, xlsx, pdf) default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} domain.ErrorResponse
// @Router /report/export [get]
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		handleStoreError(w, h.logger, err)
		return
	}

	rep := h.store.Report()

	// Render fully before writing headers so a failure can still become a 500
	var buf bytes.Buffer
	if err := report.Write(&buf, rep, format); err != nil {
		h.logger.Error("failed to render report",
			zap.String("format", string(format)),
			zap.Int("week_number", rep.WeekNumber),
			zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(rep.WeekNumber, format)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
