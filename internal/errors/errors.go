package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileExists is returned when a user already owns a profile.
	ErrProfileExists = errors.New("profile already exists")
	// ErrCompanyNotFound is returned when a company is not found.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrJobNotFound is returned when a job is not found.
	ErrJobNotFound = errors.New("job not found")
	// ErrApplicationNotFound is returned when an application is not found.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrAlreadyApplied is returned when a profile applies to the same job twice.
	ErrAlreadyApplied = errors.New("already applied to this job")
	// ErrConsultantNotFound is returned when a consultant registration is not found.
	ErrConsultantNotFound = errors.New("consultant not found")
	// ErrHandleTaken is returned when a consultant handle is already in use.
	ErrHandleTaken = errors.New("handle already taken")
	// ErrEmailNotVerified is returned when an operation requires a verified email.
	ErrEmailNotVerified = errors.New("email not verified")
	// ErrInvalidOTP is returned when an email verification code is wrong or expired.
	ErrInvalidOTP = errors.New("invalid or expired verification code")
	// ErrForbidden is returned when the caller's role does not allow the operation.
	ErrForbidden = errors.New("operation not allowed for this role")
	// ErrInvalidUpload is returned when an upload request violates type or size limits.
	ErrInvalidUpload = errors.New("invalid upload")
	// ErrUploadTicketExpired is returned when an upload target is unknown or expired.
	ErrUploadTicketExpired = errors.New("upload ticket expired")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrProfileNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROFILE_NOT_FOUND")
	case ErrProfileExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "PROFILE_EXISTS")
	case ErrCompanyNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMPANY_NOT_FOUND")
	case ErrJobNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "JOB_NOT_FOUND")
	case ErrApplicationNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "APPLICATION_NOT_FOUND")
	case ErrAlreadyApplied:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_APPLIED")
	case ErrConsultantNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CONSULTANT_NOT_FOUND")
	case ErrHandleTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "HANDLE_TAKEN")
	case ErrEmailNotVerified:
		return NewHTTPError(http.StatusForbidden, err.Error(), "EMAIL_NOT_VERIFIED")
	case ErrInvalidOTP:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_OTP")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrInvalidUpload:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_UPLOAD")
	case ErrUploadTicketExpired:
		return NewHTTPError(http.StatusGone, err.Error(), "UPLOAD_TICKET_EXPIRED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
