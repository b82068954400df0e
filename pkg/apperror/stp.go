package apperror

import (
	"fmt"
	"net/http"
)

// STP error kinds. Every classified response carries exactly one of these.
const (
	KindStpmexException          = "STP_000"
	KindNoServiceResponse        = "STP_001"
	KindInvalidAccountType       = "STP_002"
	KindSignatureValidationError = "STP_003"
	KindClaveRastreoAlreadyInUse = "STP_004"
	KindPldRejected              = "STP_005"
	KindBankCodeClabeMismatch    = "STP_006"
	KindSameAccount              = "STP_007"
	KindInvalidTrackingKey       = "STP_008"
	KindDuplicatedAccount        = "STP_009"
	KindInvalidField             = "STP_010"
	KindInvalidRfcOrCurp         = "STP_011"
)

// StpError is an error response returned by STP. The raw id and description
// are kept verbatim for audit.
type StpError struct {
	*AppError
	Endpoint    string `json:"endpoint"`
	ID          int    `json:"stp_id"`
	Description string `json:"stp_descripcion"`
	Field       string `json:"field,omitempty"` // set for KindInvalidField
}

func (e *StpError) Error() string {
	return fmt.Sprintf("[%s] %s (endpoint=%s id=%d): %s", e.Code, e.Message, e.Endpoint, e.ID, e.Description)
}

// Unwrap exposes the embedded AppError so errors.As works for both types.
func (e *StpError) Unwrap() error {
	return e.AppError
}

// Kind returns the error kind code.
func (e *StpError) Kind() string {
	return e.Code
}

func stp(code, message string, status int, endpoint string, id int, desc string) *StpError {
	return &StpError{
		AppError:    New(code, message, status),
		Endpoint:    endpoint,
		ID:          id,
		Description: desc,
	}
}

func ErrStpmexException(endpoint string, id int, desc string) *StpError {
	return stp(KindStpmexException, "STP rejected the request", http.StatusBadGateway, endpoint, id, desc)
}

func ErrNoServiceResponse(endpoint string, id int, desc string) *StpError {
	return stp(KindNoServiceResponse, "No response from STP service", http.StatusBadGateway, endpoint, id, desc)
}

func ErrInvalidAccountType(endpoint string, id int, desc string) *StpError {
	return stp(KindInvalidAccountType, "Invalid account type", http.StatusUnprocessableEntity, endpoint, id, desc)
}

func ErrSignatureValidation(endpoint string, id int, desc string) *StpError {
	return stp(KindSignatureValidationError, "STP could not validate the signature", http.StatusBadGateway, endpoint, id, desc)
}

func ErrClaveRastreoAlreadyInUse(endpoint string, id int, desc string) *StpError {
	return stp(KindClaveRastreoAlreadyInUse, "Tracking key already in use", http.StatusConflict, endpoint, id, desc)
}

func ErrPldRejected(endpoint string, id int, desc string) *StpError {
	return stp(KindPldRejected, "Rejected by anti money laundering rules", http.StatusUnprocessableEntity, endpoint, id, desc)
}

func ErrBankCodeClabeMismatch(endpoint string, id int, desc string) *StpError {
	return stp(KindBankCodeClabeMismatch, "Bank code does not match CLABE", http.StatusUnprocessableEntity, endpoint, id, desc)
}

func ErrSameAccount(endpoint string, id int, desc string) *StpError {
	return stp(KindSameAccount, "Originator and beneficiary accounts are the same", http.StatusUnprocessableEntity, endpoint, id, desc)
}

func ErrInvalidTrackingKey(endpoint string, id int, desc string) *StpError {
	return stp(KindInvalidTrackingKey, "Invalid tracking key", http.StatusUnprocessableEntity, endpoint, id, desc)
}

func ErrDuplicatedAccount(endpoint string, id int, desc string) *StpError {
	return stp(KindDuplicatedAccount, "Account already registered", http.StatusConflict, endpoint, id, desc)
}

func ErrStpInvalidField(endpoint string, id int, desc string, field string) *StpError {
	e := stp(KindInvalidField, fmt.Sprintf("Field %s rejected by STP", field), http.StatusUnprocessableEntity, endpoint, id, desc)
	e.Field = field
	return e
}

func ErrInvalidRfcOrCurp(endpoint string, id int, desc string) *StpError {
	return stp(KindInvalidRfcOrCurp, "Invalid RFC or CURP", http.StatusUnprocessableEntity, endpoint, id, desc)
}
