package domain

import (
	"fmt"
	"strings"

	"stp-signer/pkg/apperror"
)

// TipoCuenta is the STP account type code. Values are the wire codes.
type TipoCuenta int

const (
	TipoCuentaUnknown TipoCuenta = 0
	TipoCuentaCard    TipoCuenta = 3
	TipoCuentaPhone   TipoCuenta = 10
	TipoCuentaClabe   TipoCuenta = 40
)

func (t TipoCuenta) String() string {
	switch t {
	case TipoCuentaCard:
		return "card"
	case TipoCuentaPhone:
		return "phone"
	case TipoCuentaClabe:
		return "clabe"
	case TipoCuentaUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("TipoCuenta(%d)", int(t))
	}
}

// Valid reports whether t is one of the concrete account types.
func (t TipoCuenta) Valid() bool {
	switch t {
	case TipoCuentaCard, TipoCuentaPhone, TipoCuentaClabe:
		return true
	default:
		return false
	}
}

const clabeLength = 18

var clabeWeights = [3]int{3, 7, 1}

// Clabe is an 18-digit CLABE split into its zones.
type Clabe struct {
	Prefix     string // first 3 digits, selects the bank
	BankCode   string // 5-digit institution code resolved from Prefix
	Plaza      string
	Account    string
	CheckDigit int
}

// ClassifyAccount derives the account type from the identifier's shape.
// Non-digit identifiers classify as TipoCuentaUnknown.
func ClassifyAccount(id string) TipoCuenta {
	id = strings.TrimSpace(id)
	if !isDigits(id) {
		return TipoCuentaUnknown
	}
	switch len(id) {
	case clabeLength:
		return TipoCuentaClabe
	case 15, 16:
		return TipoCuentaCard
	case 10:
		return TipoCuentaPhone
	default:
		return TipoCuentaUnknown
	}
}

// ValidateAccount classifies id and runs the checks for its type.
// An identifier that does not classify is an InvalidIdentifier error.
func ValidateAccount(field, id string) (TipoCuenta, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return TipoCuentaUnknown, apperror.ErrEmptyField(field)
	}
	if !isDigits(id) {
		return TipoCuentaUnknown, apperror.ErrInvalidIdentifier(field, "must contain digits only")
	}

	tipo := ClassifyAccount(id)
	switch tipo {
	case TipoCuentaClabe:
		if _, err := ParseClabe(id); err != nil {
			return TipoCuentaUnknown, apperror.ErrInvalidIdentifier(field, err.Error())
		}
	case TipoCuentaCard, TipoCuentaPhone:
	case TipoCuentaUnknown:
		return TipoCuentaUnknown, apperror.ErrInvalidIdentifier(field,
			fmt.Sprintf("length %d is not a CLABE, card or phone number", len(id)))
	}
	return tipo, nil
}

// ClabeCheckDigit computes the control digit for the first 17 digits of a CLABE.
func ClabeCheckDigit(first17 string) (int, error) {
	if len(first17) != clabeLength-1 || !isDigits(first17) {
		return 0, fmt.Errorf("expected %d digits, got %q", clabeLength-1, first17)
	}
	sum := 0
	for i := 0; i < len(first17); i++ {
		d := int(first17[i] - '0')
		sum += d * clabeWeights[i%3] % 10
	}
	return (10 - sum%10) % 10, nil
}

// ParseClabe validates the checksum and bank prefix of an 18-digit CLABE.
func ParseClabe(id string) (Clabe, error) {
	if len(id) != clabeLength || !isDigits(id) {
		return Clabe{}, fmt.Errorf("CLABE must be %d digits", clabeLength)
	}
	want, err := ClabeCheckDigit(id[:17])
	if err != nil {
		return Clabe{}, err
	}
	got := int(id[17] - '0')
	if got != want {
		return Clabe{}, fmt.Errorf("invalid CLABE check digit %d (expected %d)", got, want)
	}
	bankCode, ok := BankCodeFromClabePrefix(id[:3])
	if !ok {
		return Clabe{}, fmt.Errorf("CLABE prefix %s does not belong to a known bank", id[:3])
	}
	return Clabe{
		Prefix:     id[:3],
		BankCode:   bankCode,
		Plaza:      id[3:6],
		Account:    id[6:17],
		CheckDigit: got,
	}, nil
}

// ValidateClabe is ParseClabe without the decoded zones.
func ValidateClabe(field, id string) error {
	if _, err := ParseClabe(strings.TrimSpace(id)); err != nil {
		return apperror.ErrInvalidIdentifier(field, err.Error())
	}
	return nil
}

// CheckAccountType cross-checks an explicit account type against the one
// derived from id.
func CheckAccountType(field, id string, explicit TipoCuenta) (TipoCuenta, error) {
	derived := ClassifyAccount(id)
	if explicit != derived {
		return derived, apperror.ErrAccountTypeMismatch(field, int(explicit), int(derived))
	}
	return derived, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
