package leaveerrors

import (
	"net/http"

	"github.com/Anoma-Geethika/BCG-Leave-Management-System/internal/shared/apperror"
)

var (
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave ID",
		http.StatusBadRequest,
	)
	ErrInvalidTeacherID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid teacher ID",
		http.StatusBadRequest,
	)
	ErrDaysRequired = apperror.New(
		apperror.CodeInvalidInput,
		"At least one day is required",
		http.StatusBadRequest,
	)
	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"Start Date must be a valid date",
		http.StatusBadRequest,
	)
	ErrInvalidEndDate = apperror.New(
		apperror.CodeInvalidInput,
		"End Date must be a valid date",
		http.StatusBadRequest,
	)
	ErrTeacherNotFound = apperror.New(
		apperror.CodeNotFound,
		"Teacher not found",
		http.StatusNotFound,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave not found",
		http.StatusNotFound,
	)
)
