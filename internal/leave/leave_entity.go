package leave

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// FilterAll is the leave type query value meaning "every category".
const FilterAll = "all"

// Leave is one submitted leave request. Days is taken verbatim from the
// submission; it is never derived from the date range.
type Leave struct {
	ID          uint      `gorm:"primaryKey"`
	TeacherID   uint      `gorm:"not null;index:idx_leaves_teacher_type"`
	LeaveType   string    `gorm:"type:varchar(20);not null;index:idx_leaves_teacher_type"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	Days        int       `gorm:"not null"`
	Reason      string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	ApprovedBy  *string   `gorm:"type:text"`
	Notes       *string   `gorm:"type:text"`
	SubmittedAt time.Time `gorm:"not null;index:idx_leaves_submitted_at"`
}

// Patch holds the fields a partial update may change. Nil fields are left
// alone. Identity, owner and SubmittedAt are not patchable.
type Patch struct {
	LeaveType  *string
	StartDate  *time.Time
	EndDate    *time.Time
	Days       *int
	Reason     *string
	Status     *string
	ApprovedBy *string
	Notes      *string
}

func (p Patch) ApplyTo(l *Leave) {
	if p.LeaveType != nil {
		l.LeaveType = *p.LeaveType
	}
	if p.StartDate != nil {
		l.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		l.EndDate = *p.EndDate
	}
	if p.Days != nil {
		l.Days = *p.Days
	}
	if p.Reason != nil {
		l.Reason = *p.Reason
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.ApprovedBy != nil {
		l.ApprovedBy = p.ApprovedBy
	}
	if p.Notes != nil {
		l.Notes = p.Notes
	}
}

// DaysInRange counts calendar days from start to end, both inclusive. It is a
// convenience for clients filling in Days; 0 when end precedes start.
func DaysInRange(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
