// Package excel renders contractor rosters as xlsx workbooks.
package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Banana-Clint/Bricool/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(roster model.ContractorRoster) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, roster); err != nil {
		return nil, err
	}

	detailSheet := "Contractors"
	if _, err := file.NewSheet(detailSheet); err != nil {
		return nil, err
	}
	if err := g.writeDetail(file, detailSheet, roster); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, roster model.ContractorRoster) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Generated at")
	set("B1", formatDateTime(roster.GeneratedAt))
	set("A2", "Contractors in roster")
	set("B2", len(roster.Contractors))
	set("A3", "Total contractors")
	set("B3", roster.Stats.TotalContractors)
	set("A4", "Active contractors")
	set("B4", roster.Stats.ActiveContractors)
	set("A5", "Inactive contractors")
	set("B5", roster.Stats.InactiveContractors)
	set("A6", "Average rating")
	set("B6", roster.Stats.AverageRating)
	set("A7", "Total jobs")
	set("B7", roster.Stats.TotalJobs)
	set("A8", "Completed jobs")
	set("B8", roster.Stats.CompletedJobs)
	set("A9", "Completion rate, %")
	set("B9", roster.Stats.CompletionRate)

	_ = file.SetColWidth(sheet, "A", "A", 28)
	_ = file.SetColWidth(sheet, "B", "B", 22)
	return nil
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, roster model.ContractorRoster) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"ID",
		"Company",
		"Contact",
		"Email",
		"Phone",
		"Type",
		"Status",
		"Active",
		"Rating",
		"Total jobs",
		"Completed jobs",
		"Specialities",
		"City",
		"State",
		"Created at",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, c := range roster.Contractors {
		row := i + 2
		set(fmt.Sprintf("A%d", row), c.ID)
		set(fmt.Sprintf("B%d", row), c.CompanyName)
		set(fmt.Sprintf("C%d", row), c.ContactName)
		set(fmt.Sprintf("D%d", row), c.Email)
		set(fmt.Sprintf("E%d", row), c.Phone)
		set(fmt.Sprintf("F%d", row), c.ContractorType)
		set(fmt.Sprintf("G%d", row), string(c.Status))
		set(fmt.Sprintf("H%d", row), c.IsActive)
		set(fmt.Sprintf("I%d", row), c.Rating)
		set(fmt.Sprintf("J%d", row), c.TotalJobs)
		set(fmt.Sprintf("K%d", row), c.CompletedJobs)
		set(fmt.Sprintf("L%d", row), strings.Join(c.Specialities, ", "))
		set(fmt.Sprintf("M%d", row), c.City)
		set(fmt.Sprintf("N%d", row), c.State)
		set(fmt.Sprintf("O%d", row), formatDateTime(c.CreatedAt))
	}

	_ = file.SetColWidth(sheet, "A", "A", 8)
	_ = file.SetColWidth(sheet, "B", "E", 28)
	_ = file.SetColWidth(sheet, "F", "K", 14)
	_ = file.SetColWidth(sheet, "L", "L", 32)
	_ = file.SetColWidth(sheet, "M", "O", 18)
	return nil
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
