package leaveusage

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository reports a missing usage row with gorm.ErrRecordNotFound, whatever
// the backing store.
//
//go:generate mockgen -source=leaveusage_repo.go -destination=mock/leaveusage_repo_mock.go -package=mock
type Repository interface {
	FindByTeacher(ctx context.Context, teacherID uint) (*LeaveUsage, error)
	Apply(ctx context.Context, teacherID uint, category string, days int) (*LeaveUsage, error)
	TeacherExists(ctx context.Context, teacherID uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByTeacher(ctx context.Context, teacherID uint) (*LeaveUsage, error) {
	var u LeaveUsage
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Apply(ctx context.Context, teacherID uint, category string, days int) (*LeaveUsage, error) {
	var out *LeaveUsage
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := ApplyTx(tx, teacherID, category, days)
		out = u
		return err
	})
	return out, err
}

func (r *repository) TeacherExists(ctx context.Context, teacherID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("teachers").
		Where("id = ?", teacherID).
		Count(&count).Error
	return count > 0, err
}

// ApplyTx runs the accounting step inside an open transaction. The usage row
// is created if missing and then locked, so concurrent submissions for one
// teacher serialize even before the first row exists.
func ApplyTx(tx *gorm.DB, teacherID uint, category string, days int) (*LeaveUsage, error) {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "teacher_id"}},
		DoNothing: true,
	}).Create(&LeaveUsage{TeacherID: teacherID}).Error
	if err != nil {
		return nil, err
	}

	var u LeaveUsage
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("teacher_id = ?", teacherID).
		First(&u).Error
	if err != nil {
		return nil, err
	}

	Apply(&u, category, days)

	if err := tx.Save(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
