// Package pdf renders contractor rosters as PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Banana-Clint/Bricool/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(roster model.ContractorRoster) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Contractor roster", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated at %s", formatDateTime(roster.GeneratedAt)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf(
		"%d contractors listed, %d active of %d total, average rating %.2f, completion rate %.2f%%",
		len(roster.Contractors),
		roster.Stats.ActiveContractors,
		roster.Stats.TotalContractors,
		roster.Stats.AverageRating,
		roster.Stats.CompletionRate,
	), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"ID", "Company", "Contact", "Email", "Type", "Status", "Rating", "Jobs", "Done"}
	colWidths := []float64{12, 55, 45, 60, 30, 22, 16, 14, 14}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)

	for _, c := range roster.Contractors {
		row := []string{
			fmt.Sprintf("%d", c.ID),
			c.CompanyName,
			c.ContactName,
			c.Email,
			c.ContractorType,
			string(c.Status),
			fmt.Sprintf("%.1f", c.Rating),
			fmt.Sprintf("%d", c.TotalJobs),
			fmt.Sprintf("%d", c.CompletedJobs),
		}
		drawTableRow(pdf, g.fontName, row, colWidths, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 9)
	for i, col := range cols {
		align := "L"
		if i >= 6 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, truncate(col, widths[i]), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

// truncate keeps cell content inside its column; gofpdf does not clip
// CellFormat text.
func truncate(value string, width float64) string {
	limit := int(width / 1.8)
	if limit < 4 || len(value) <= limit {
		return value
	}
	return strings.TrimSpace(value[:limit-3]) + "..."
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
