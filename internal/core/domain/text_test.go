package domain

import (
	"strings"
	"testing"

	"stp-signer/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToASCII(t *testing.T) {
	assert.Equal(t, "Nandu", ToASCII("Ñandú"))
	assert.Equal(t, "Sanchez", ToASCII("Sánchez"))
	assert.Equal(t, "uro", ToASCII("€uro"))
	assert.Equal(t, "", ToASCII("日本"))
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"trims and folds", "  Ricardo Sánchez  ", 39, "Ricardo Sanchez"},
		{"plain", "Prueba", 39, "Prueba"},
		{"truncates", strings.Repeat("a", 50), 39, strings.Repeat("a", 39)},
		{"no trailing space after truncation", "abc def", 4, "abc"},
		{"drops unrepresentable runes", "Pago ☃ renta", 39, "Pago  renta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonicalize("conceptoPago", tt.input, tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalize_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "日本"} {
		_, err := Canonicalize("nombreBeneficiario", in, 39)
		require.Error(t, err, in)
		assert.Equal(t, apperror.CodeEmptyField, apperror.CodeOf(err))
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Ricardo Sánchez",
		"  José-María, Pérez.  ",
		strings.Repeat("é ", 30),
		"Ωmega Ⅻ ﬁn",
		"abc def",
	}

	for _, in := range inputs {
		once, err := Canonicalize("f", in, 10)
		require.NoError(t, err)
		twice, err := Canonicalize("f", once, 10)
		require.NoError(t, err)
		assert.Equal(t, once, twice, in)

		strictOnce, err := CanonicalizeStrict("f", in, 10)
		require.NoError(t, err)
		strictTwice, err := CanonicalizeStrict("f", strictOnce, 10)
		require.NoError(t, err)
		assert.Equal(t, strictOnce, strictTwice, in)
	}
}

func TestCanonicalizeStrict(t *testing.T) {
	got, err := CanonicalizeStrict("apellidoMaterno", "José-María, Pérez.", 50)
	require.NoError(t, err)
	assert.Equal(t, "JOSE MARIA  PEREZ", got)

	_, err = CanonicalizeStrict("nombre", " -.,", 50)
	assert.Equal(t, apperror.CodeEmptyField, apperror.CodeOf(err))
}
