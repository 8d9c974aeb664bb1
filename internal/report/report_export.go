package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	sheetSummary    = "Summary"
	sheetDepartment = "Departments"
	sheetTrend      = "Monthly Trend"
)

var typeColumns = []string{"Casual", "Sick", "Duty", "Other"}

// ExportSummary renders the same summary as Summary into an xlsx workbook and
// returns the file bytes with a suggested file name.
func (s *service) ExportSummary(ctx context.Context, rng string) ([]byte, string, error) {
	summary, err := s.Summary(ctx, rng)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, "", fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	writeSummarySheet(f, summary, headerStyle)

	if _, err := f.NewSheet(sheetDepartment); err != nil {
		return nil, "", fmt.Errorf("create sheet: %w", err)
	}
	writeBreakdownHeader(f, sheetDepartment, "Department", headerStyle)
	for i, d := range summary.ByDepartment {
		writeBreakdownRow(f, sheetDepartment, i+2, d.Department, d.TypeDays)
	}

	if _, err := f.NewSheet(sheetTrend); err != nil {
		return nil, "", fmt.Errorf("create sheet: %w", err)
	}
	writeBreakdownHeader(f, sheetTrend, "Month", headerStyle)
	for i, m := range summary.MonthlyTrend {
		writeBreakdownRow(f, sheetTrend, i+2, m.Month, m.TypeDays)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write report workbook failed", zap.Error(err))
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	filename := fmt.Sprintf("leave_summary_%s_%s.xlsx", summary.Range, summary.To.Format("20060102"))
	return buf.Bytes(), filename, nil
}

func writeSummarySheet(f *excelize.File, summary SummaryResponse, headerStyle int) {
	f.SetColWidth(sheetSummary, "A", "A", 22)
	f.SetColWidth(sheetSummary, "B", "B", 14)

	f.SetCellValue(sheetSummary, "A1", "Leave Summary")
	f.SetCellStyle(sheetSummary, "A1", "B1", headerStyle)
	f.MergeCell(sheetSummary, "A1", "B1")

	rows := [][]interface{}{
		{"Range", summary.Range},
		{"From", summary.From.Format("2006-01-02")},
		{"To", summary.To.Format("2006-01-02")},
		{"Total leaves", summary.Totals.Leaves},
		{"Total days", summary.Totals.Days},
		{"Teachers on leave", summary.Totals.Teachers},
		{"Pending", summary.Totals.Pending},
	}
	for _, t := range summary.ByType {
		rows = append(rows, []interface{}{t.Name + " days", t.Days})
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheetSummary, cell, &row)
	}
}

func writeBreakdownHeader(f *excelize.File, sheet, label string, headerStyle int) {
	f.SetColWidth(sheet, "A", "A", 20)
	header := append([]interface{}{label}, toInterfaces(typeColumns)...)
	f.SetSheetRow(sheet, "A1", &header)
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	f.SetCellStyle(sheet, "A1", last, headerStyle)
}

func writeBreakdownRow(f *excelize.File, sheet string, row int, label string, d TypeDays) {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	values := []interface{}{label, d.Casual, d.Sick, d.Duty, d.Other}
	f.SetSheetRow(sheet, cell, &values)
}

func toInterfaces(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
