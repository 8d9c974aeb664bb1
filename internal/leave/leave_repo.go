package leave

import (
	"context"
	"time"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/leaveusage"

	"gorm.io/gorm"
)

// Repository reports missing rows with gorm.ErrRecordNotFound, whatever the
// backing store. Create stamps SubmittedAt and applies the request to the
// teacher's usage totals as one atomic step; no other method touches usage.
//
//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, l *Leave) error
	FindAll(ctx context.Context) ([]Leave, error)
	FindByID(ctx context.Context, id uint) (*Leave, error)
	FindByTeacher(ctx context.Context, teacherID uint) ([]Leave, error)
	FindByTeacherAndType(ctx context.Context, teacherID uint, leaveType string) ([]Leave, error)
	Update(ctx context.Context, id uint, patch Patch) (*Leave, error)
	TeacherExists(ctx context.Context, teacherID uint) (bool, error)
}

type repository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db, now: time.Now}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l.SubmittedAt = r.now().UTC()
		if err := tx.Create(l).Error; err != nil {
			return err
		}
		_, err := leaveusage.ApplyTx(tx, l.TeacherID, l.LeaveType, l.Days)
		return err
	})
}

func (r *repository) FindAll(ctx context.Context) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindByTeacher(ctx context.Context, teacherID uint) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("id ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByTeacherAndType(ctx context.Context, teacherID uint, leaveType string) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("teacher_id = ? AND leave_type = ?", teacherID, leaveType).
		Order("id ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) Update(ctx context.Context, id uint, patch Patch) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&l, "id = ?", id).Error; err != nil {
			return err
		}
		patch.ApplyTo(&l)
		return tx.Save(&l).Error
	})
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) TeacherExists(ctx context.Context, teacherID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("teachers").
		Where("id = ?", teacherID).
		Count(&count).Error
	return count > 0, err
}
