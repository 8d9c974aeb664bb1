package report

import (
	"time"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leaveusage"
)

// TypeDays holds leave days per category.
type TypeDays struct {
	Casual int `json:"casual"`
	Sick   int `json:"sick"`
	Duty   int `json:"duty"`
	Other  int `json:"other"`
}

func (d *TypeDays) add(category string, days int) {
	switch category {
	case leaveusage.TypeCasual:
		d.Casual += days
	case leaveusage.TypeSick:
		d.Sick += days
	case leaveusage.TypeDuty:
		d.Duty += days
	case leaveusage.TypeOther:
		d.Other += days
	}
}

func (d TypeDays) get(category string) int {
	switch category {
	case leaveusage.TypeCasual:
		return d.Casual
	case leaveusage.TypeSick:
		return d.Sick
	case leaveusage.TypeDuty:
		return d.Duty
	case leaveusage.TypeOther:
		return d.Other
	default:
		return 0
	}
}

type Totals struct {
	Leaves   int `json:"leaves"`
	Days     int `json:"days"`
	Teachers int `json:"teachers"`
	Pending  int `json:"pending"`
}

type TypeSlice struct {
	Name string `json:"name"`
	Days int    `json:"days"`
}

type DepartmentDays struct {
	Department string `json:"department"`
	TypeDays
}

type MonthDays struct {
	Month string `json:"month"`
	TypeDays
}

type SummaryResponse struct {
	Range        string           `json:"range"`
	From         time.Time        `json:"from"`
	To           time.Time        `json:"to"`
	Totals       Totals           `json:"totals"`
	ByType       []TypeSlice      `json:"byType"`
	ByDepartment []DepartmentDays `json:"byDepartment"`
	MonthlyTrend []MonthDays      `json:"monthlyTrend"`
}
