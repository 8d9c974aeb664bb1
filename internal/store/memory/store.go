// Package memory is the default, process-local backing store. A single mutex
// guards every collection and id sequence, so each operation is atomic with
// respect to all others.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leave"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leaveusage"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/counter"
	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/teacher"

	"go.uber.org/zap"
)

type Store struct {
	mu sync.Mutex

	teachers     []teacher.Teacher
	teacherIndex map[uint]int
	leaves       []leave.Leave
	leaveIndex   map[uint]int
	usage        map[uint]*leaveusage.LeaveUsage // keyed by usage id

	teacherSeq counter.Sequence
	leaveSeq   counter.Sequence
	usageSeq   counter.Sequence

	now    func() time.Time
	logger *zap.Logger
}

type Option func(*Store)

// WithClock overrides the clock used to stamp SubmittedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l.Named("store.memory")
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		teacherIndex: make(map[uint]int),
		leaveIndex:   make(map[uint]int),
		usage:        make(map[uint]*leaveusage.LeaveUsage),
		now:          time.Now,
		logger:       zap.L().Named("store.memory"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Teachers() teacher.Repository {
	return &teacherRepo{s: s}
}

func (s *Store) Leaves() leave.Repository {
	return &leaveRepo{s: s}
}

func (s *Store) Usage() leaveusage.Repository {
	return &usageRepo{s: s}
}

// Seed loads the sample teachers, each with an all-zero usage record.
func (s *Store) Seed(ctx context.Context) error {
	repo := s.Teachers()
	samples := teacher.SampleTeachers()
	for i := range samples {
		t := samples[i]
		if err := repo.Create(ctx, &t); err != nil {
			return err
		}
		if _, err := s.Usage().Apply(ctx, t.ID, leaveusage.TypeCasual, 0); err != nil {
			return err
		}
	}
	s.logger.Info("sample data loaded", zap.Int("teachers", len(samples)))
	return nil
}

func (s *Store) teacherExistsLocked(id uint) bool {
	_, ok := s.teacherIndex[id]
	return ok
}

// usageForLocked scans for the teacher's usage row, creating a zeroed one on
// first use.
func (s *Store) usageForLocked(teacherID uint) *leaveusage.LeaveUsage {
	for _, u := range s.usage {
		if u.TeacherID == teacherID {
			return u
		}
	}
	u := &leaveusage.LeaveUsage{ID: s.usageSeq.Next(), TeacherID: teacherID}
	s.usage[u.ID] = u
	return u
}

func (s *Store) findUsageLocked(teacherID uint) (*leaveusage.LeaveUsage, bool) {
	for _, u := range s.usage {
		if u.TeacherID == teacherID {
			return u, true
		}
	}
	return nil, false
}

func (s *Store) applyLocked(teacherID uint, category string, days int) leaveusage.LeaveUsage {
	u := s.usageForLocked(teacherID)
	if !leaveusage.Apply(u, category, days) {
		s.logger.Warn("unknown leave category ignored",
			zap.Uint("teacher_id", teacherID),
			zap.String("leave_type", category),
		)
	}
	return *u
}
