package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   ErrEmptyField("conceptoPago"),
			expected: "[VAL_001] conceptoPago must not be empty",
		},
		{
			name:     "with wrapped error",
			appErr:   ErrKeyLoad(fmt.Errorf("no PEM block")),
			expected: "[CRY_002] Private key could not be loaded: no PEM block",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := ErrInvalidPassphrase(inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, ErrEmptyField("x").Unwrap())
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Validation", Validation("bad body"), CodeValidation, 400},
		{"EmptyField", ErrEmptyField("nombreBeneficiario"), CodeEmptyField, 400},
		{"InvalidIdentifier", ErrInvalidIdentifier("cuentaBeneficiario", "bad checksum"), CodeInvalidIdentifier, 400},
		{"UnknownBankCode", ErrUnknownBankCode("institucionContraparte", "99999"), CodeUnknownBankCode, 400},
		{"AccountTypeMismatch", ErrAccountTypeMismatch("tipoCuentaBeneficiario", 3, 40), CodeAccountTypeMismatch, 400},
		{"InvalidAmount", ErrInvalidAmount("must be positive"), CodeInvalidAmount, 400},
		{"InvalidField", ErrInvalidField("rfcCurp", "too long"), CodeInvalidField, 400},
		{"TrackingKeyReserved", ErrTrackingKeyReserved("CR1"), CodeTrackingKeyReserved, 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestCryptoErrors(t *testing.T) {
	inner := fmt.Errorf("pkcs8: decryption failed")

	assert.Equal(t, CodeInvalidPassphrase, ErrInvalidPassphrase(inner).Code)
	assert.Equal(t, CodeKeyLoad, ErrKeyLoad(inner).Code)
	assert.Equal(t, CodeSigning, ErrSigningFailure(inner).Code)
	assert.Equal(t, http.StatusInternalServerError, ErrSigningFailure(inner).HTTPStatus)
}

func TestStpError_UnwrapsToAppError(t *testing.T) {
	var err error = ErrClaveRastreoAlreadyInUse("/ordenPago/registra", -1, "ya fue utilizada")

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, KindClaveRastreoAlreadyInUse, appErr.Code)

	var stpErr *StpError
	require.True(t, errors.As(err, &stpErr))
	assert.Equal(t, -1, stpErr.ID)
	assert.Equal(t, "ya fue utilizada", stpErr.Description)
	assert.Equal(t, KindClaveRastreoAlreadyInUse, CodeOf(err))
}

func TestStpError_ErrorString(t *testing.T) {
	err := ErrStpmexException("/cuentaModule/fisica", 9999999, "unknown code")

	assert.Equal(t, "[STP_000] STP rejected the request (endpoint=/cuentaModule/fisica id=9999999): unknown code", err.Error())
	assert.Equal(t, KindStpmexException, err.Kind())
}

func TestStpInvalidField_KeepsFieldName(t *testing.T) {
	err := ErrStpInvalidField("/cuentaModule/fisica", 1, "El campo NOMBRE es invalido", "NOMBRE")

	assert.Equal(t, "NOMBRE", err.Field)
	assert.Contains(t, err.Message, "NOMBRE")
}

func TestCodeOf_NonAppError(t *testing.T) {
	assert.Equal(t, "", CodeOf(fmt.Errorf("plain")))
	assert.Equal(t, "SYS_001", CodeOf(fmt.Errorf("wrapped: %w", InternalError(nil))))
}
