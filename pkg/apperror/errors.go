package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Configuration (CFG) ----

func ErrMissingCloudCredentials() *AppError {
	return New("CFG_001", "Cloud credentials (app key, app secret, base URL) are not configured", http.StatusInternalServerError)
}

// ---- Upstream Cloud (UP / NET) ----

// ErrUpstream maps a non-2xx cloud response to a 502 that carries the
// upstream status and body for diagnostics.
func ErrUpstream(status int, body string, err error) *AppError {
	return Wrap("UP_001", fmt.Sprintf("Cloud API error %d: %s", status, body), http.StatusBadGateway, err)
}

func ErrCloudUnreachable(err error) *AppError {
	return Wrap("NET_001", "Cloud API unreachable", http.StatusGatewayTimeout, err)
}

// ---- Callbacks (CB) ----

func ErrUnsupportedCallback(callbackType string) *AppError {
	return New("CB_001", fmt.Sprintf("Unsupported callback_type %q", callbackType), http.StatusBadRequest)
}

// ---- System & Validation (SYS / VAL) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
