package teacher

import (
	"errors"
	"strings"

	teachererrors "github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/teacher/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueTeacherCodeConstraint = "uq_teachers_teacher_code"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return teachererrors.ErrTeacherNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == uniqueTeacherCodeConstraint {
			return teachererrors.ErrTeacherCodeExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueTeacherCodeConstraint) {
		return teachererrors.ErrTeacherCodeExists
	}

	return err
}
