package apperror

import (
	"errors"
	"net/http"
)

// Error codes exposed to API clients.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInvalidMemberID  = "INVALID_MEMBER_ID"
	CodeMemberNotMatched = "MEMBER_NOT_MATCHED"
	CodeInvalidAdminCode = "INVALID_ADMIN_CODE"
	CodeMemberNotAdmin   = "MEMBER_NOT_ADMIN"
	CodeMemberNotFound   = "MEMBER_NOT_FOUND"
	CodeDuplicateEmail   = "DUPLICATE_EMAIL"
	CodeInternalError    = "INTERNAL_ERROR"
)

var (
	ErrInvalidMemberID  = New(CodeInvalidMemberID, "member id must be a positive integer", http.StatusBadRequest)
	ErrMemberNotMatched = New(CodeMemberNotMatched, "member id in path does not match request body", http.StatusBadRequest)
	ErrInvalidAdminCode = New(CodeInvalidAdminCode, "invalid administrator code", http.StatusForbidden)
	ErrMemberNotAdmin   = New(CodeMemberNotAdmin, "member is not an administrator", http.StatusForbidden)
	ErrMemberNotFound   = New(CodeMemberNotFound, "member not found", http.StatusNotFound)
	ErrDuplicateEmail   = New(CodeDuplicateEmail, "email already registered", http.StatusConflict)
)

// AppError is a domain error that knows how it should be presented over HTTP.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    any
}

// New builds an AppError.
func New(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// InvalidInput reports a rejected request value.
func InvalidInput(message string, details any) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

func (e *AppError) Error() string {
	return e.Message
}

// Is matches any AppError carrying the same code.
func (e *AppError) Is(target error) bool {
	var other *AppError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// HTTPError is the resolved presentation of an error.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP resolves err into a status, code and client-safe message.
// Errors outside the catalogue collapse to a generic 500.
func ToHTTP(err error) *HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "internal server error",
	}
}
