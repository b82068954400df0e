package domain

import (
	"testing"

	"stp-signer/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAccount(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want TipoCuenta
	}{
		{"clabe", "072691004495711499", TipoCuentaClabe},
		{"clabe with spaces", " 646180110400000007 ", TipoCuentaClabe},
		{"card 16", "4111111111111111", TipoCuentaCard},
		{"card 15", "378282246310005", TipoCuentaCard},
		{"phone", "5512345678", TipoCuentaPhone},
		{"short", "12345", TipoCuentaUnknown},
		{"letters", "55123456AB", TipoCuentaUnknown},
		{"empty", "", TipoCuentaUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAccount(tt.id))
		})
	}
}

func TestClabeCheckDigit(t *testing.T) {
	tests := []struct {
		first17 string
		want    int
	}{
		{"64618011040000000", 7},
		{"07269100449571149", 9},
		{"64618015709999999", 3},
		{"00201007777777777", 1},
	}

	for _, tt := range tests {
		t.Run(tt.first17, func(t *testing.T) {
			got, err := ClabeCheckDigit(tt.first17)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ClabeCheckDigit("123")
	assert.Error(t, err)
}

func TestValidateClabe(t *testing.T) {
	valid := []string{
		"646180110400000007",
		"072691004495711499",
		"646180157099999993",
		"002010077777777771",
	}
	for _, id := range valid {
		assert.NoError(t, ValidateClabe("cuenta", id), id)
	}

	invalid := []struct {
		name string
		id   string
	}{
		{"bad check digit", "646180110400000008"},
		{"mutated body digit", "646180110400000107"},
		{"unknown bank prefix", "999000000000000001"},
		{"too short", "64618011040000000"},
		{"letters", "64618011040000000A"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClabe("cuenta", tt.id)
			require.Error(t, err)
			assert.Equal(t, apperror.CodeInvalidIdentifier, apperror.CodeOf(err))
		})
	}
}

func TestParseClabe_Zones(t *testing.T) {
	c, err := ParseClabe("072691004495711499")
	require.NoError(t, err)

	assert.Equal(t, "072", c.Prefix)
	assert.Equal(t, "40072", c.BankCode)
	assert.Equal(t, "691", c.Plaza)
	assert.Equal(t, "00449571149", c.Account)
	assert.Equal(t, 9, c.CheckDigit)
}

func TestValidateAccount(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		want     TipoCuenta
		wantCode string
	}{
		{"clabe", "646180110400000007", TipoCuentaClabe, ""},
		{"card", "4111111111111111", TipoCuentaCard, ""},
		{"phone", "5512345678", TipoCuentaPhone, ""},
		{"bad clabe", "646180110400000001", TipoCuentaUnknown, apperror.CodeInvalidIdentifier},
		{"unknown length", "123456789012", TipoCuentaUnknown, apperror.CodeInvalidIdentifier},
		{"not digits", "5512-345678", TipoCuentaUnknown, apperror.CodeInvalidIdentifier},
		{"empty", "  ", TipoCuentaUnknown, apperror.CodeEmptyField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAccount("cuentaBeneficiario", tt.id)
			assert.Equal(t, tt.want, got)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantCode, apperror.CodeOf(err))
		})
	}
}

func TestCheckAccountType(t *testing.T) {
	got, err := CheckAccountType("tipoCuentaBeneficiario", "072691004495711499", TipoCuentaClabe)
	require.NoError(t, err)
	assert.Equal(t, TipoCuentaClabe, got)

	_, err = CheckAccountType("tipoCuentaBeneficiario", "072691004495711499", TipoCuentaCard)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeAccountTypeMismatch, apperror.CodeOf(err))
	assert.Contains(t, err.Error(), "expected 40")
}

func TestTipoCuenta_String(t *testing.T) {
	assert.Equal(t, "clabe", TipoCuentaClabe.String())
	assert.Equal(t, "card", TipoCuentaCard.String())
	assert.Equal(t, "phone", TipoCuentaPhone.String())
	assert.Equal(t, "unknown", TipoCuentaUnknown.String())
	assert.Equal(t, "TipoCuenta(7)", TipoCuenta(7).String())
	assert.False(t, TipoCuentaUnknown.Valid())
	assert.True(t, TipoCuentaPhone.Valid())
}

func TestBanks(t *testing.T) {
	code, ok := BankCodeFromClabePrefix("646")
	require.True(t, ok)
	assert.Equal(t, STPBankCode, code)

	name, ok := BankName("40072")
	require.True(t, ok)
	assert.Equal(t, "Banorte/Ixe", name)

	_, ok = BankCodeFromClabePrefix("999")
	assert.False(t, ok)

	assert.NoError(t, ValidateBankCode("institucionContraparte", "40012"))
	assert.Equal(t, apperror.CodeUnknownBankCode, apperror.CodeOf(ValidateBankCode("institucionContraparte", "99999")))
	assert.Equal(t, apperror.CodeInvalidField, apperror.CodeOf(ValidateBankCode("institucionContraparte", "072")))
}

func TestBanks_EveryPrefixHasAName(t *testing.T) {
	for prefix, code := range clabePrefixes {
		_, ok := bankNames[code]
		assert.True(t, ok, "prefix %s maps to %s without a name", prefix, code)
	}
}
