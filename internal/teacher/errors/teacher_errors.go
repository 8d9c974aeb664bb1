package teachererrors

import (
	"net/http"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/apperror"
)

var (
	ErrTeacherNotFound = apperror.New(
		apperror.CodeNotFound,
		"Teacher not found",
		http.StatusNotFound,
	)
	ErrInvalidTeacherID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid teacher ID",
		http.StatusBadRequest,
	)
	ErrTeacherCodeExists = apperror.New(
		apperror.CodeInvalidInput,
		"Teacher ID already exists",
		http.StatusBadRequest,
	)
	ErrSearchQueryRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Search query is required",
		http.StatusBadRequest,
	)
)
