package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/straye-as/paint-stock-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

var header = []string{"Color", "This Week (kg)", "Target (kg)", "Difference (kg)", "Percentage (%)"}

// Write renders the report in the given format
func Write(w io.Writer, rep domain.Report, f Format) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, rep)
	case FormatXLSX:
		return WriteXLSX(w, rep)
	case FormatPDF:
		return WritePDF(w, rep)
	}
	return fmt.Errorf("%w: unsupported report format %q", domain.ErrInvalidArgument, f)
}

// WriteCSV writes the header, one line per color and the TOTAL line.
// Masses and percentages use one decimal; targets are printed as-is.
func WriteCSV(w io.Writer, rep domain.Report) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range allRows(rep) {
		if err := writer.Write(formatRow(row)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func allRows(rep domain.Report) []domain.ReportRow {
	rows := make([]domain.ReportRow, 0, len(rep.Rows)+1)
	rows = append(rows, rep.Rows...)
	return append(rows, rep.Total)
}

func formatRow(row domain.ReportRow) []string {
	return []string{
		string(row.Color),
		oneDecimal(row.ThisWeek),
		strconv.FormatFloat(row.Target, 'f', -1, 64),
		oneDecimal(row.Difference),
		oneDecimal(row.Percentage),
	}
}

func oneDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

const sheetName = "Report"

// WriteXLSX renders the report as a single-sheet workbook
func WriteXLSX(w io.Writer, rep domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Paint consumption report - week %d", rep.WeekNumber))
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 24)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	for col, label := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 4)
		f.SetCellValue(sheetName, cell, label)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	f.SetColWidth(sheetName, "A", "E", 18)

	numberStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 2})
	totalStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 2})

	for i, row := range allRows(rep) {
		rowIdx := i + 5
		style := numberStyle
		if i == len(rep.Rows) {
			style = totalStyle
		}
		values := []interface{}{string(row.Color), row.ThisWeek, row.Target, row.Difference, row.Percentage}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx)
			f.SetCellValue(sheetName, cell, v)
			f.SetCellStyle(sheetName, cell, cell, style)
		}
	}

	f.DeleteSheet("Sheet1")

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WritePDF renders the report as a one-page A4 table
func WritePDF(w io.Writer, rep domain.Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 12, fmt.Sprintf("Paint Consumption Report - Week %d", rep.WeekNumber), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated on: %s", time.Now().Format("2006-01-02 15:04:05")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	widths := []float64{38, 38, 38, 38, 38}

	pdf.SetFillColor(200, 220, 240)
	pdf.SetFont("Arial", "B", 10)
	for i, label := range header {
		pdf.CellFormat(widths[i], 8, label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for i, row := range allRows(rep) {
		fill := false
		if i == len(rep.Rows) {
			pdf.SetFont("Arial", "B", 10)
			pdf.SetFillColor(240, 240, 240)
			fill = true
		}
		for j, cell := range formatRow(row) {
			align := "R"
			if j == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[j], 7, cell, "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
