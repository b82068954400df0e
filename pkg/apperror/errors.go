package apperror

import (
	"errors"
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

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Instruction validation (VAL) ----

const (
	CodeValidation          = "VAL_000"
	CodeEmptyField          = "VAL_001"
	CodeInvalidIdentifier   = "VAL_002"
	CodeUnknownBankCode     = "VAL_003"
	CodeAccountTypeMismatch = "VAL_004"
	CodeInvalidAmount       = "VAL_005"
	CodeInvalidField        = "VAL_006"
	CodeTrackingKeyReserved = "VAL_007"
)

// Validation returns a generic request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrEmptyField(field string) *AppError {
	return New(CodeEmptyField, fmt.Sprintf("%s must not be empty", field), http.StatusBadRequest)
}

func ErrInvalidIdentifier(field string, reason string) *AppError {
	return New(CodeInvalidIdentifier, fmt.Sprintf("%s is not a valid account: %s", field, reason), http.StatusBadRequest)
}

func ErrUnknownBankCode(field string, code string) *AppError {
	return New(CodeUnknownBankCode, fmt.Sprintf("%s: %s does not belong to a known bank", field, code), http.StatusBadRequest)
}

func ErrAccountTypeMismatch(field string, given, derived int) *AppError {
	return New(CodeAccountTypeMismatch,
		fmt.Sprintf("%s: account type %d does not match account (expected %d)", field, given, derived),
		http.StatusBadRequest)
}

func ErrInvalidAmount(reason string) *AppError {
	return New(CodeInvalidAmount, fmt.Sprintf("monto: %s", reason), http.StatusBadRequest)
}

func ErrInvalidField(field string, reason string) *AppError {
	return New(CodeInvalidField, fmt.Sprintf("%s: %s", field, reason), http.StatusBadRequest)
}

func ErrTrackingKeyReserved(claveRastreo string) *AppError {
	return New(CodeTrackingKeyReserved, fmt.Sprintf("claveRastreo %s was already used", claveRastreo), http.StatusConflict)
}

// ---- Key material & signing (CRY) ----

const (
	CodeInvalidPassphrase = "CRY_001"
	CodeKeyLoad           = "CRY_002"
	CodeSigning           = "CRY_003"
)

func ErrInvalidPassphrase(err error) *AppError {
	return Wrap(CodeInvalidPassphrase, "Private key passphrase is invalid", http.StatusInternalServerError, err)
}

func ErrKeyLoad(err error) *AppError {
	return Wrap(CodeKeyLoad, "Private key could not be loaded", http.StatusInternalServerError, err)
}

func ErrSigningFailure(err error) *AppError {
	return Wrap(CodeSigning, "Signing failed", http.StatusInternalServerError, err)
}

// ---- Authentication & rate limiting ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrStorage(err error) *AppError {
	return Wrap("SYS_002", "Internal storage error", http.StatusInternalServerError, err)
}

func ErrGatewayUnavailable(err error) *AppError {
	return Wrap("SYS_003", "STP gateway unavailable", http.StatusBadGateway, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
