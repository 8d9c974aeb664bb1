package leaveusage

// Leave categories. The set is closed; anything else is rejected at validation.
const (
	TypeCasual = "casual"
	TypeSick   = "sick"
	TypeDuty   = "duty"
	TypeOther  = "other"
)

// Types lists every category in display order.
var Types = []string{TypeCasual, TypeSick, TypeDuty, TypeOther}

// IsValidType reports whether t is one of the fixed categories (case-sensitive).
func IsValidType(t string) bool {
	switch t {
	case TypeCasual, TypeSick, TypeDuty, TypeOther:
		return true
	default:
		return false
	}
}

// LeaveUsage is the running per-category total of days a teacher has taken.
// There is at most one row per teacher.
type LeaveUsage struct {
	ID         uint `gorm:"primaryKey"`
	TeacherID  uint `gorm:"not null;uniqueIndex:uq_leave_usage_teacher_id"`
	CasualUsed int  `gorm:"not null;default:0"`
	SickUsed   int  `gorm:"not null;default:0"`
	DutyUsed   int  `gorm:"not null;default:0"`
	OtherUsed  int  `gorm:"not null;default:0"`
}

func (LeaveUsage) TableName() string {
	return "leave_usage"
}

// Used returns the counter for category, 0 for unknown categories.
func (u LeaveUsage) Used(category string) int {
	switch category {
	case TypeCasual:
		return u.CasualUsed
	case TypeSick:
		return u.SickUsed
	case TypeDuty:
		return u.DutyUsed
	case TypeOther:
		return u.OtherUsed
	default:
		return 0
	}
}

// Limits is the annual allowance per category, in days.
type Limits struct {
	Casual int
	Sick   int
	Duty   int
	Other  int
}

func DefaultLimits() Limits {
	return Limits{Casual: 12, Sick: 15, Duty: 10, Other: 5}
}

func (l Limits) For(category string) int {
	switch category {
	case TypeCasual:
		return l.Casual
	case TypeSick:
		return l.Sick
	case TypeDuty:
		return l.Duty
	case TypeOther:
		return l.Other
	default:
		return 0
	}
}
