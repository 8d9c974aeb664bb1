package report

import (
	"context"
	"time"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leave"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leaveusage"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/teacher"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Range1Month  = "1month"
	Range3Months = "3months"
	Range6Months = "6months"
	Range1Year   = "1year"
)

const monthKeyLayout = "Jan 2006"

// LeaveSource and TeacherSource are the read-only slices of the leave and
// teacher repositories the report needs.
type LeaveSource interface {
	FindAll(ctx context.Context) ([]leave.Leave, error)
}

type TeacherSource interface {
	FindAll(ctx context.Context) ([]teacher.Teacher, error)
}

type Service interface {
	Summary(ctx context.Context, rng string) (SummaryResponse, error)
	ExportSummary(ctx context.Context, rng string) ([]byte, string, error)
}

type service struct {
	leaves   LeaveSource
	teachers TeacherSource
	now      func() time.Time
	logger   *zap.Logger
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *service) {
		if l != nil {
			s.logger = l.Named("report.service")
		}
	}
}

func NewService(leaves LeaveSource, teachers TeacherSource, opts ...Option) Service {
	s := &service{
		leaves:   leaves,
		teachers: teachers,
		now:      time.Now,
		logger:   zap.L().Named("report.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NormalizeRange maps a range name to its month span. Unknown or empty names
// fall back to six months.
func NormalizeRange(rng string) (string, int) {
	switch rng {
	case Range1Month:
		return Range1Month, 1
	case Range3Months:
		return Range3Months, 3
	case Range1Year:
		return Range1Year, 12
	default:
		return Range6Months, 6
	}
}

func (s *service) Summary(ctx context.Context, rng string) (SummaryResponse, error) {
	name, months := NormalizeRange(rng)
	now := s.now()
	from := subMonths(now, months)

	leaves, err := s.leaves.FindAll(ctx)
	if err != nil {
		s.logger.Error("report list leaves failed", zap.Error(err))
		return SummaryResponse{}, err
	}
	teachers, err := s.teachers.FindAll(ctx)
	if err != nil {
		s.logger.Error("report list teachers failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	inRange := make([]leave.Leave, 0, len(leaves))
	for _, l := range leaves {
		if !l.SubmittedAt.Before(from) && !l.SubmittedAt.After(now) {
			inRange = append(inRange, l)
		}
	}

	return SummaryResponse{
		Range:        name,
		From:         from,
		To:           now,
		Totals:       buildTotals(inRange),
		ByType:       buildByType(inRange),
		ByDepartment: buildByDepartment(inRange, teachers),
		MonthlyTrend: buildMonthlyTrend(inRange, now, months),
	}, nil
}

func buildTotals(leaves []leave.Leave) Totals {
	t := Totals{Leaves: len(leaves)}
	seen := make(map[uint]struct{})
	for _, l := range leaves {
		t.Days += l.Days
		seen[l.TeacherID] = struct{}{}
		if l.Status == leave.StatusPending {
			t.Pending++
		}
	}
	t.Teachers = len(seen)
	return t
}

func buildByType(leaves []leave.Leave) []TypeSlice {
	var sum TypeDays
	for _, l := range leaves {
		sum.add(l.LeaveType, l.Days)
	}

	title := cases.Title(language.English)
	out := make([]TypeSlice, 0, len(leaveusage.Types))
	for _, category := range leaveusage.Types {
		out = append(out, TypeSlice{Name: title.String(category), Days: sum.get(category)})
	}
	return out
}

// buildByDepartment lists every department that has a teacher, in order of
// first appearance, including departments with no leave in range.
func buildByDepartment(leaves []leave.Leave, teachers []teacher.Teacher) []DepartmentDays {
	out := make([]DepartmentDays, 0)
	index := make(map[string]int)
	deptOf := make(map[uint]string, len(teachers))

	for _, t := range teachers {
		deptOf[t.ID] = t.Department
		if _, ok := index[t.Department]; ok {
			continue
		}
		index[t.Department] = len(out)
		out = append(out, DepartmentDays{Department: t.Department})
	}

	for _, l := range leaves {
		dept, ok := deptOf[l.TeacherID]
		if !ok {
			continue
		}
		out[index[dept]].add(l.LeaveType, l.Days)
	}
	return out
}

// buildMonthlyTrend returns months+1 buckets, oldest first, ending with the
// current month.
func buildMonthlyTrend(leaves []leave.Leave, now time.Time, months int) []MonthDays {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	out := make([]MonthDays, months+1)
	index := make(map[string]int, months+1)
	for i := 0; i <= months; i++ {
		key := first.AddDate(0, -i, 0).Format(monthKeyLayout)
		pos := months - i
		out[pos] = MonthDays{Month: key}
		index[key] = pos
	}

	for _, l := range leaves {
		key := l.SubmittedAt.In(now.Location()).Format(monthKeyLayout)
		if pos, ok := index[key]; ok {
			out[pos].add(l.LeaveType, l.Days)
		}
	}
	return out
}

// subMonths steps back n calendar months, clamping the day to the length of
// the target month (Mar 31 minus one month is Feb 28 or 29).
func subMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, -n, 0)
	lastDay := target.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return target.AddDate(0, 0, day-1)
}
