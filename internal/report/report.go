// Package report builds the weekly consumption-versus-target report and
// renders it as CSV, XLSX or PDF.
package report

import (
	"fmt"
	"strings"

	"github.com/straye-as/paint-stock-api/internal/domain"
)

// TotalLabel is the color column value of the totals row
const TotalLabel = "TOTAL"

// Format is an export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat resolves a format name, defaulting to CSV for an empty name
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: unsupported report format %q", domain.ErrInvalidArgument, name)
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv; charset=utf-8"
	}
}

// FileName returns the download name of a report for a week
func FileName(weekNumber int, f Format) string {
	return fmt.Sprintf("paint-report-week-%d.%s", weekNumber, f)
}

// Build creates one row per color from the week's per-color consumption and
// the configured targets, followed by a totals row. Colors without a target
// get target 0 and percentage 0.
func Build(weekNumber int, byColor map[domain.PaintColor]float64, targets map[domain.PaintColor]float64) domain.Report {
	rep := domain.Report{
		WeekNumber: weekNumber,
		Rows:       make([]domain.ReportRow, 0, len(domain.AllColors)),
	}

	var thisWeek, target float64
	for _, color := range domain.AllColors {
		row := newRow(color, byColor[color], targets[color])
		rep.Rows = append(rep.Rows, row)
		thisWeek += row.ThisWeek
		target += row.Target
	}
	rep.Total = newRow(TotalLabel, thisWeek, target)
	return rep
}

func newRow(color domain.PaintColor, thisWeek, target float64) domain.ReportRow {
	return domain.ReportRow{
		Color:      color,
		ThisWeek:   thisWeek,
		Target:     target,
		Difference: thisWeek - target,
		Percentage: percentage(thisWeek, target),
	}
}

func percentage(value, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return value / target * 100
}
