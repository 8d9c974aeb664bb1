package memory

import (
	"context"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/teacher"
	teachererrors "github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/teacher/errors"

	"gorm.io/gorm"
)

type teacherRepo struct {
	s *Store
}

func (r *teacherRepo) Create(_ context.Context, t *teacher.Teacher) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.teachers {
		if existing.TeacherCode == t.TeacherCode {
			return teachererrors.ErrTeacherCodeExists
		}
	}

	t.ID = r.s.teacherSeq.Next()
	r.s.teacherIndex[t.ID] = len(r.s.teachers)
	r.s.teachers = append(r.s.teachers, *t)
	return nil
}

func (r *teacherRepo) FindAll(_ context.Context) ([]teacher.Teacher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]teacher.Teacher, len(r.s.teachers))
	copy(out, r.s.teachers)
	return out, nil
}

func (r *teacherRepo) FindByID(_ context.Context, id uint) (*teacher.Teacher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	i, ok := r.s.teacherIndex[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	t := r.s.teachers[i]
	return &t, nil
}

func (r *teacherRepo) FindByCode(_ context.Context, code string) (*teacher.Teacher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.teachers {
		if t.TeacherCode == code {
			found := t
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *teacherRepo) Search(_ context.Context, query string) ([]teacher.Teacher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]teacher.Teacher, 0)
	for _, t := range r.s.teachers {
		if teacher.Matches(t, query) {
			out = append(out, t)
		}
	}
	return out, nil
}
