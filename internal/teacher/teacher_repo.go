package teacher

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Repository reports missing rows with gorm.ErrRecordNotFound, whatever the
// backing store. List results are in insertion (id) order.
//
//go:generate mockgen -source=teacher_repo.go -destination=mock/teacher_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *Teacher) error
	FindAll(ctx context.Context) ([]Teacher, error)
	FindByID(ctx context.Context, id uint) (*Teacher, error)
	FindByCode(ctx context.Context, code string) (*Teacher, error)
	Search(ctx context.Context, query string) ([]Teacher, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Teacher) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Teacher, error) {
	var teachers []Teacher
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&teachers).Error
	return teachers, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Teacher, error) {
	var t Teacher
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Teacher, error) {
	var t Teacher
	err := r.db.WithContext(ctx).First(&t, "teacher_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Search(ctx context.Context, query string) ([]Teacher, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	var teachers []Teacher
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(teacher_code) LIKE ?", pattern, pattern).
		Order("id ASC").
		Find(&teachers).Error
	return teachers, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Matches is the in-process equivalent of Search: case-insensitive substring
// match against name or code.
func Matches(t Teacher, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(strings.ToLower(t.TeacherCode), q)
}
