package leaveusageerrors

import (
	"net/http"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/apperror"
)

var (
	ErrUsageNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave usage not found",
		http.StatusNotFound,
	)
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
)
