package memory

import (
	"context"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leave"

	"gorm.io/gorm"
)

type leaveRepo struct {
	s *Store
}

// Create stores the request and folds its days into the teacher's usage
// under the same lock.
func (r *leaveRepo) Create(_ context.Context, l *leave.Leave) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.teacherExistsLocked(l.TeacherID) {
		return gorm.ErrForeignKeyViolated
	}

	l.ID = r.s.leaveSeq.Next()
	l.SubmittedAt = r.s.now().UTC()
	r.s.leaveIndex[l.ID] = len(r.s.leaves)
	r.s.leaves = append(r.s.leaves, *l)

	r.s.applyLocked(l.TeacherID, l.LeaveType, l.Days)
	return nil
}

func (r *leaveRepo) FindAll(_ context.Context) ([]leave.Leave, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]leave.Leave, len(r.s.leaves))
	copy(out, r.s.leaves)
	return out, nil
}

func (r *leaveRepo) FindByID(_ context.Context, id uint) (*leave.Leave, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i, ok := r.s.leaveIndex[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	l := r.s.leaves[i]
	return &l, nil
}

func (r *leaveRepo) FindByTeacher(_ context.Context, teacherID uint) ([]leave.Leave, error) {
	return r.filter(func(l leave.Leave) bool {
		return l.TeacherID == teacherID
	}), nil
}

func (r *leaveRepo) FindByTeacherAndType(_ context.Context, teacherID uint, leaveType string) ([]leave.Leave, error) {
	return r.filter(func(l leave.Leave) bool {
		return l.TeacherID == teacherID && l.LeaveType == leaveType
	}), nil
}

// Update never revisits usage totals.
func (r *leaveRepo) Update(_ context.Context, id uint, patch leave.Patch) (*leave.Leave, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i, ok := r.s.leaveIndex[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	patch.ApplyTo(&r.s.leaves[i])
	l := r.s.leaves[i]
	return &l, nil
}

func (r *leaveRepo) TeacherExists(_ context.Context, teacherID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.s.teacherExistsLocked(teacherID), nil
}

func (r *leaveRepo) filter(keep func(leave.Leave) bool) []leave.Leave {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]leave.Leave, 0)
	for _, l := range r.s.leaves {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}
