package memory

import (
	"context"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leaveusage"

	"gorm.io/gorm"
)

type usageRepo struct {
	s *Store
}

func (r *usageRepo) FindByTeacher(_ context.Context, teacherID uint) (*leaveusage.LeaveUsage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.findUsageLocked(teacherID)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *u
	return &out, nil
}

// Apply adds days to one category outside of leave creation, creating the
// usage record if needed. A zero-day call just initializes it.
func (r *usageRepo) Apply(_ context.Context, teacherID uint, category string, days int) (*leaveusage.LeaveUsage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u := r.s.applyLocked(teacherID, category, days)
	return &u, nil
}

func (r *usageRepo) TeacherExists(_ context.Context, teacherID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.s.teacherExistsLocked(teacherID), nil
}
