package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" is invalid", http.StatusBadRequest)
}

func MinLengthField(field, min string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s must be at least %s characters", field, min), http.StatusBadRequest)
}

func MinValueField(field, min string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s must be at least %s", field, min), http.StatusBadRequest)
}

func OneOfField(field, allowed string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s must be one of: %s", field, allowed), http.StatusBadRequest)
}
