package apperror

import (
	"errors"
	"net/http"
)

const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeOutOfStock    = "OUT_OF_STOCK"
	CodeInternalError = "INTERNAL_ERROR"
)

// AppError is a user-facing error carrying the HTTP status it maps to.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    any
}

func (e *AppError) Error() string {
	return e.Message
}

// Is matches on code and message so sentinel errors survive WithDetails copies.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// WithDetails returns a copy of e carrying details for the response body.
func (e *AppError) WithDetails(details any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

var ErrInternal = New(CodeInternalError, "internal server error", http.StatusInternalServerError)

var statusByCode = map[string]int{}

// Init registers the default status for every known code. ToHTTP falls back to
// it when an AppError was built without an explicit status.
func Init() {
	statusByCode[CodeInvalidInput] = http.StatusBadRequest
	statusByCode[CodeNotFound] = http.StatusNotFound
	statusByCode[CodeConflict] = http.StatusConflict
	statusByCode[CodeOutOfStock] = http.StatusConflict
	statusByCode[CodeInternalError] = http.StatusInternalServerError
}
