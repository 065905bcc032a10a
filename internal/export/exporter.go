package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/makyelver-commits/eventor/internal/apperr"
	"github.com/makyelver-commits/eventor/internal/event"
)

// Exporter renders the upcoming-events report in the requested format.
type Exporter interface {
	Export(format string, events []event.Event, today string) ([]byte, string, string, error)
}

type scheduleExporter struct {
	now func() time.Time
}

func NewExporter() Exporter {
	return &scheduleExporter{now: time.Now}
}

// Export returns the rendered report bytes, a download filename and the
// content type. Unknown formats are a validation error.
func (e *scheduleExporter) Export(format string, events []event.Event, today string) ([]byte, string, string, error) {
	report := buildReport(events, today, e.now())
	timestamp := e.now().Format("20060102_150405")

	switch format {
	case FormatTXT:
		data := renderTXT(report)
		filename := fmt.Sprintf("events_report_%s.txt", timestamp)
		return data, filename, contentTypeTXT, nil

	case FormatPDF:
		data, err := renderPDF(report)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("events_report_%s.pdf", timestamp)
		return data, filename, contentTypePDF, nil

	case FormatExcel:
		data, err := renderExcel(report)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("events_report_%s.xlsx", timestamp)
		return data, filename, contentTypeExcel, nil

	default:
		return nil, "", "", apperr.New(apperr.Validation, fmt.Sprintf("unsupported export format: %s", format))
	}
}

// ===========================
// 📑 PDF Renderer
// ===========================

func renderPDF(report scheduleReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Upcoming Events Report")
	pdf.Ln(14)

	if report.Total == 0 {
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 8, "No upcoming events.")
		pdf.Ln(12)
	}

	for _, month := range report.Months {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, month.Label)
		pdf.Ln(10)

		for _, date := range month.Dates {
			pdf.SetFont("Arial", "B", 10)
			pdf.Cell(0, 7, dateHeading(date.Key))
			pdf.Ln(8)

			pdf.SetFont("Arial", "", 9)
			for _, ev := range date.Events {
				pdf.Cell(0, 6, fmt.Sprintf("  %s at %s", ev.Title, ev.Time))
				pdf.Ln(6)
				if ev.Location != "" {
					pdf.Cell(0, 5, fmt.Sprintf("    Location: %s", ev.Location))
					pdf.Ln(5)
				}
				if ev.Notes != "" {
					pdf.Cell(0, 5, fmt.Sprintf("    Notes: %s", ev.Notes))
					pdf.Ln(5)
				}
				pdf.Cell(0, 5, fmt.Sprintf("    Color: %s", ev.Color))
				pdf.Ln(6)
			}
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 7, "Summary")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Total events: %d", report.Total))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Months covered: %d", len(report.Months)))
	pdf.Ln(5)
	if report.Total > 0 {
		pdf.Cell(0, 5, fmt.Sprintf("First event: %s", report.FirstDate))
		pdf.Ln(5)
		pdf.Cell(0, 5, fmt.Sprintf("Last event: %s", report.LastDate))
		pdf.Ln(5)
	}
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", report.GeneratedAt.Format("2006-01-02 15:04:05")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ===========================
// 📊 Excel Renderer
// ===========================

func renderExcel(report scheduleReport) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Upcoming Events"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Month", "Date", "Title", "Time", "Location", "Notes", "Color", "Image URL", "Created At", "Updated At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, month := range report.Months {
		for _, date := range month.Dates {
			for _, ev := range date.Events {
				f.SetCellValue(sheet, fmt.Sprintf("A%d", row), month.Label)
				f.SetCellValue(sheet, fmt.Sprintf("B%d", row), date.Key)
				f.SetCellValue(sheet, fmt.Sprintf("C%d", row), ev.Title)
				f.SetCellValue(sheet, fmt.Sprintf("D%d", row), ev.Time)
				f.SetCellValue(sheet, fmt.Sprintf("E%d", row), ev.Location)
				f.SetCellValue(sheet, fmt.Sprintf("F%d", row), ev.Notes)
				f.SetCellValue(sheet, fmt.Sprintf("G%d", row), ev.Color)
				f.SetCellValue(sheet, fmt.Sprintf("H%d", row), ev.ImageURL)
				f.SetCellValue(sheet, fmt.Sprintf("I%d", row), ev.CreatedAt.Format("2006-01-02 15:04:05"))
				f.SetCellValue(sheet, fmt.Sprintf("J%d", row), ev.UpdatedAt.Format("2006-01-02 15:04:05"))
				row++
			}
		}
	}

	summaryRow := row + 1
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total events")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow), report.Total)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+1), "Months covered")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow+1), len(report.Months))
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+2), "Generated")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow+2), report.GeneratedAt.Format("2006-01-02 15:04:05"))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
