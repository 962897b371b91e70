// Package reportshandler renders a saved day as a downloadable PDF or XLSX
// sheet, one row per employee with punches, computed hours and pay values.
package reportshandler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"ponto/internal/domain/timesheet"
	"ponto/internal/platform/datekey"
	"ponto/internal/transport/http/api"
	"ponto/internal/transport/http/middleware"
)

type Handler struct {
	Service *timesheet.Service
}

func NewHandler(service *timesheet.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/days/{date}/export.pdf", h.handleExportPDF)
	r.Get("/days/{date}/export.xlsx", h.handleExportXLSX)
}

type reportRow struct {
	Name      string
	Punches   timesheet.EmployeePunches
	Breakdown timesheet.Breakdown
}

func (h *Handler) dayRows(r *http.Request) (time.Time, []reportRow, error) {
	date, err := datekey.Parse(chi.URLParam(r, "date"))
	if err != nil {
		return time.Time{}, nil, err
	}

	punches, err := h.Service.Day(r.Context(), date)
	if err != nil {
		return time.Time{}, nil, err
	}
	breakdowns, err := h.Service.DayBreakdown(r.Context(), date)
	if err != nil {
		return time.Time{}, nil, err
	}

	byID := make(map[string]timesheet.Breakdown, len(breakdowns))
	for _, row := range breakdowns {
		byID[row.EmployeeID] = row.Breakdown
	}
	rows := make([]reportRow, 0, len(punches))
	for _, row := range punches {
		rows = append(rows, reportRow{Name: row.Name, Punches: row, Breakdown: byID[row.EmployeeID]})
	}
	return date, rows, nil
}

var reportColumns = []string{
	"Funcionário", "Entrada", "Início Intervalo", "Fim Intervalo", "Saída",
	"Horas Diurnas", "Horas Noturnas", "Horas Extras", "Valor Extras", "Adicional Noturno", "Total",
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	date, rows, err := h.dayRows(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "export_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	// gofpdf's core fonts are cp1252; translate the accented headers.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Folha de Ponto - %s", datekey.Format(date))))
	pdf.Ln(12)

	widths := []float64{45, 18, 24, 24, 18, 22, 24, 22, 24, 28, 24}
	pdf.SetFont("Helvetica", "B", 8)
	for i, column := range reportColumns {
		pdf.CellFormat(widths[i], 7, tr(column), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range rows {
		cells := []string{
			row.Name,
			row.Punches.ClockIn,
			row.Punches.BreakStart,
			row.Punches.BreakEnd,
			row.Punches.ClockOut,
			timesheet.FormatHours(row.Breakdown.DayHours),
			timesheet.FormatHours(row.Breakdown.NightHours),
			timesheet.FormatHours(row.Breakdown.OvertimeHours),
			timesheet.FormatCurrency(row.Breakdown.OvertimeValue),
			timesheet.FormatCurrency(row.Breakdown.NightPremiumValue),
			timesheet.FormatCurrency(row.Breakdown.TotalValue),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=ponto-%s.pdf", datekey.Format(date)))
	if err := pdf.Output(w); err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render pdf", middleware.GetRequestID(r.Context()))
	}
}

func (h *Handler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	date, rows, err := h.dayRows(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "export_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}

	f := excelize.NewFile()
	sheet := "Sheet1"
	for i, column := range reportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, column)
	}
	for rowIdx, row := range rows {
		values := []any{
			row.Name,
			row.Punches.ClockIn,
			row.Punches.BreakStart,
			row.Punches.BreakEnd,
			row.Punches.ClockOut,
			row.Breakdown.DayHours,
			row.Breakdown.NightHours,
			row.Breakdown.OvertimeHours,
			row.Breakdown.OvertimeValue,
			row.Breakdown.NightPremiumValue,
			row.Breakdown.TotalValue,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=ponto-%s.xlsx", datekey.Format(date)))
	if err := f.Write(w); err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render spreadsheet", middleware.GetRequestID(r.Context()))
	}
}
