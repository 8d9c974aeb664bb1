package report_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leave"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/report"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/teacher"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

type stubLeaves struct {
	items []leave.Leave
	err   error
}

func (s stubLeaves) FindAll(context.Context) ([]leave.Leave, error) {
	return s.items, s.err
}

type stubTeachers struct {
	items []teacher.Teacher
	err   error
}

func (s stubTeachers) FindAll(context.Context) ([]teacher.Teacher, error) {
	return s.items, s.err
}

var reportNow = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

func sampleTeachers() stubTeachers {
	return stubTeachers{items: []teacher.Teacher{
		{ID: 1, TeacherCode: "TCH-1", Name: "Sarah Johnson", Department: "Mathematics"},
		{ID: 2, TeacherCode: "TCH-2", Name: "Michael Brown", Department: "Science"},
		{ID: 3, TeacherCode: "TCH-3", Name: "Ann Lee", Department: "Mathematics"},
		{ID: 4, TeacherCode: "TCH-4", Name: "Nimal Perera", Department: "English"},
	}}
}

func sampleLeaves() stubLeaves {
	return stubLeaves{items: []leave.Leave{
		{ID: 1, TeacherID: 1, LeaveType: "casual", Days: 2, Status: leave.StatusPending, SubmittedAt: time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)},
		{ID: 2, TeacherID: 2, LeaveType: "sick", Days: 3, Status: leave.StatusApproved, SubmittedAt: time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC)},
		{ID: 3, TeacherID: 3, LeaveType: "duty", Days: 4, Status: leave.StatusPending, SubmittedAt: time.Date(2023, 11, 1, 8, 0, 0, 0, time.UTC)},
		{ID: 4, TeacherID: 1, LeaveType: "other", Days: 1, Status: leave.StatusPending, SubmittedAt: time.Date(2024, 6, 20, 8, 0, 0, 0, time.UTC)},
	}}
}

func newReportService(leaves stubLeaves, teachers stubTeachers, now time.Time) report.Service {
	return report.NewService(leaves, teachers, report.WithClock(func() time.Time { return now }))
}

func TestReportService_Summary(t *testing.T) {
	svc := newReportService(sampleLeaves(), sampleTeachers(), reportNow)

	resp, err := svc.Summary(context.Background(), "")

	assert.NoError(t, err)
	assert.Equal(t, report.Range6Months, resp.Range)
	assert.Equal(t, time.Date(2023, 12, 15, 9, 0, 0, 0, time.UTC), resp.From)

	assert.Equal(t, report.Totals{Leaves: 2, Days: 5, Teachers: 2, Pending: 1}, resp.Totals)

	assert.Equal(t, []report.TypeSlice{
		{Name: "Casual", Days: 2},
		{Name: "Sick", Days: 3},
		{Name: "Duty", Days: 0},
		{Name: "Other", Days: 0},
	}, resp.ByType)

	assert.Equal(t, []report.DepartmentDays{
		{Department: "Mathematics", TypeDays: report.TypeDays{Casual: 2}},
		{Department: "Science", TypeDays: report.TypeDays{Sick: 3}},
		{Department: "English"},
	}, resp.ByDepartment)

	if assert.Len(t, resp.MonthlyTrend, 7) {
		assert.Equal(t, "Dec 2023", resp.MonthlyTrend[0].Month)
		assert.Equal(t, "Jan 2024", resp.MonthlyTrend[1].Month)
		assert.Equal(t, 3, resp.MonthlyTrend[1].Sick)
		assert.Equal(t, "Jun 2024", resp.MonthlyTrend[6].Month)
		assert.Equal(t, 2, resp.MonthlyTrend[6].Casual)
	}
}

func TestReportService_SummaryRanges(t *testing.T) {
	tests := []struct {
		name       string
		rng        string
		wantRange  string
		wantBucket int
	}{
		{name: "one month", rng: "1month", wantRange: report.Range1Month, wantBucket: 2},
		{name: "three months", rng: "3months", wantRange: report.Range3Months, wantBucket: 4},
		{name: "one year", rng: "1year", wantRange: report.Range1Year, wantBucket: 13},
		{name: "unknown falls back", rng: "fortnight", wantRange: report.Range6Months, wantBucket: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newReportService(stubLeaves{}, stubTeachers{}, reportNow)

			resp, err := svc.Summary(context.Background(), tt.rng)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRange, resp.Range)
			assert.Len(t, resp.MonthlyTrend, tt.wantBucket)
			assert.Empty(t, resp.ByDepartment)
			assert.Equal(t, report.Totals{}, resp.Totals)
		})
	}
}

func TestReportService_SummaryClampsMonthEnd(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	svc := newReportService(stubLeaves{}, stubTeachers{}, now)

	resp, err := svc.Summary(context.Background(), "1month")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), resp.From)
	assert.Equal(t, "Feb 2024", resp.MonthlyTrend[0].Month)
	assert.Equal(t, "Mar 2024", resp.MonthlyTrend[1].Month)
}

func TestReportService_SummarySourceErrors(t *testing.T) {
	svc := newReportService(stubLeaves{err: assert.AnError}, sampleTeachers(), reportNow)
	_, err := svc.Summary(context.Background(), "")
	assert.ErrorIs(t, err, assert.AnError)

	svc = newReportService(sampleLeaves(), stubTeachers{err: assert.AnError}, reportNow)
	_, err = svc.Summary(context.Background(), "")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestReportService_ExportSummary(t *testing.T) {
	svc := newReportService(sampleLeaves(), sampleTeachers(), reportNow)

	data, filename, err := svc.ExportSummary(context.Background(), "3months")

	assert.NoError(t, err)
	assert.Equal(t, "leave_summary_3months_20240615.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if !assert.NoError(t, err) {
		return
	}
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Departments", "Monthly Trend"}, f.GetSheetList())

	v, _ := f.GetCellValue("Summary", "A5")
	assert.Equal(t, "Total leaves", v)
	v, _ = f.GetCellValue("Summary", "B5")
	assert.Equal(t, "1", v)

	v, _ = f.GetCellValue("Departments", "A2")
	assert.Equal(t, "Mathematics", v)
	v, _ = f.GetCellValue("Departments", "B2")
	assert.Equal(t, "2", v)

	v, _ = f.GetCellValue("Monthly Trend", "A5")
	assert.Equal(t, "Jun 2024", v)
}
