package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"stp-signer/pkg/apperror"
)

// Record is a loosely typed instruction as received from a caller, usually a
// decoded JSON object (decode with UseNumber to keep amounts exact).
type Record map[string]any

// Fields holds the values that already passed their rules, keyed by name.
type Fields map[string]any

// Rule validates and normalizes one value. It may read fields validated
// earlier in the same pipeline.
type Rule func(v any, validated Fields) (any, error)

// DefaultFunc produces the value of an absent field.
type DefaultFunc func(cc *Company, validated Fields) any

// FieldSpec is one step of a validation pipeline. A Default returning nil
// leaves the field absent. Absent optional fields are skipped and defaults go
// through Rules like any value.
type FieldSpec struct {
	Name     string
	Optional bool
	Default  DefaultFunc
	Rules    []Rule
}

// Validate runs specs in order over rec. The first failing rule aborts the
// run. Keys of rec that no spec names are rejected.
func Validate(specs []FieldSpec, rec Record, cc *Company) (Fields, error) {
	known := make(map[string]struct{}, len(specs))
	for _, s := range specs {
		known[s.Name] = struct{}{}
	}
	var unknown []string
	for k := range rec {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, apperror.ErrInvalidField(unknown[0], "unknown field")
	}

	validated := make(Fields, len(specs))
	for _, s := range specs {
		v, present := rec[s.Name]
		if (!present || v == nil) && s.Default != nil {
			v = s.Default(cc, validated)
		}
		if v == nil {
			if s.Optional {
				continue
			}
			return nil, apperror.ErrEmptyField(s.Name)
		}

		for _, rule := range s.Rules {
			out, err := rule(v, validated)
			if err != nil {
				return nil, err
			}
			v = out
		}
		validated[s.Name] = v
	}
	return validated, nil
}

// ---- rule constructors ----

// AsString accepts strings and JSON numbers rendered as their literal.
func AsString(field string) Rule {
	return func(v any, _ Fields) (any, error) {
		switch t := v.(type) {
		case string:
			return t, nil
		case json.Number:
			return t.String(), nil
		default:
			return nil, apperror.ErrInvalidField(field, fmt.Sprintf("expected string, got %T", v))
		}
	}
}

// AsInt accepts Go integers, integral floats and integer JSON numbers. Values
// outside the int range are rejected.
func AsInt(field string) Rule {
	return func(v any, _ Fields) (any, error) {
		switch t := v.(type) {
		case int:
			return t, nil
		case int32:
			return int(t), nil
		case int64:
			if t >= math.MinInt && t <= math.MaxInt {
				return int(t), nil
			}
		case TipoCuenta:
			return int(t), nil
		case Prioridad:
			return int(t), nil
		case float64:
			// -MinInt is 2^63 (2^31), the first float above MaxInt.
			if t == math.Trunc(t) && t >= float64(math.MinInt) && t < -float64(math.MinInt) {
				return int(t), nil
			}
		case json.Number:
			if n, err := strconv.Atoi(t.String()); err == nil {
				return n, nil
			}
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
				return n, nil
			}
		}
		return nil, apperror.ErrInvalidField(field, fmt.Sprintf("expected integer, got %v", v))
	}
}

// AsAmount accepts only decimal values: float64, decimal.Decimal or a JSON
// number literal with a fraction or exponent. Integers are rejected so an
// amount is never silently widened from an integer.
func AsAmount() Rule {
	return func(v any, _ Fields) (any, error) {
		switch t := v.(type) {
		case decimal.Decimal:
			return t, nil
		case float64:
			if math.IsNaN(t) || math.IsInf(t, 0) {
				return nil, apperror.ErrInvalidAmount("must be a finite number")
			}
			return decimal.NewFromFloat(t), nil
		case float32:
			return decimal.NewFromFloat32(t), nil
		case json.Number:
			s := t.String()
			if !strings.ContainsAny(s, ".eE") {
				return nil, apperror.ErrInvalidAmount("must be a decimal, got integer " + s)
			}
			d, err := decimal.NewFromString(s)
			if err != nil {
				return nil, apperror.ErrInvalidAmount(err.Error())
			}
			return d, nil
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return nil, apperror.ErrInvalidAmount(fmt.Sprintf("must be a decimal, got integer %v", t))
		default:
			return nil, apperror.ErrInvalidAmount(fmt.Sprintf("unsupported type %T", v))
		}
	}
}

// AsDecimal is AsAmount that also accepts integers.
func AsDecimal(field string) Rule {
	amount := AsAmount()
	return func(v any, validated Fields) (any, error) {
		switch t := v.(type) {
		case int:
			return decimal.NewFromInt(int64(t)), nil
		case int64:
			return decimal.NewFromInt(t), nil
		case json.Number:
			d, err := decimal.NewFromString(t.String())
			if err != nil {
				return nil, apperror.ErrInvalidField(field, err.Error())
			}
			return d, nil
		}
		return amount(v, validated)
	}
}

// Positive requires a decimal strictly greater than zero.
func Positive(field string) Rule {
	return func(v any, _ Fields) (any, error) {
		d := v.(decimal.Decimal)
		if !d.IsPositive() {
			if field == "monto" {
				return nil, apperror.ErrInvalidAmount("must be greater than zero")
			}
			return nil, apperror.ErrInvalidField(field, "must be greater than zero")
		}
		return d, nil
	}
}

// Text canonicalizes a string field to ASCII and at most max characters.
func Text(field string, max int) Rule {
	return func(v any, _ Fields) (any, error) {
		return Canonicalize(field, v.(string), max)
	}
}

// StrictText is Text with the identity-document rules.
func StrictText(field string, max int) Rule {
	return func(v any, _ Fields) (any, error) {
		return CanonicalizeStrict(field, v.(string), max)
	}
}

// Trimmed strips surrounding whitespace.
func Trimmed() Rule {
	return func(v any, _ Fields) (any, error) {
		return strings.TrimSpace(v.(string)), nil
	}
}

// NonEmpty rejects the empty string.
func NonEmpty(field string) Rule {
	return func(v any, _ Fields) (any, error) {
		if v.(string) == "" {
			return nil, apperror.ErrEmptyField(field)
		}
		return v, nil
	}
}

// MaxLen rejects strings longer than max characters.
func MaxLen(field string, max int) Rule {
	return func(v any, _ Fields) (any, error) {
		if s := v.(string); len([]rune(s)) > max {
			return nil, apperror.ErrInvalidField(field, fmt.Sprintf("longer than %d characters", max))
		}
		return v, nil
	}
}

// TruncateTo cuts strings to max characters without failing.
func TruncateTo(max int) Rule {
	return func(v any, _ Fields) (any, error) {
		if r := []rune(v.(string)); len(r) > max {
			return string(r[:max]), nil
		}
		return v, nil
	}
}

// Digits requires a numeric string of length in [min, max].
func Digits(field string, min, max int) Rule {
	return func(v any, _ Fields) (any, error) {
		s := v.(string)
		if !isDigits(s) || len(s) < min || len(s) > max {
			if min == max {
				return nil, apperror.ErrInvalidField(field, fmt.Sprintf("must be %d digits", min))
			}
			return nil, apperror.ErrInvalidField(field, fmt.Sprintf("must be %d to %d digits", min, max))
		}
		return s, nil
	}
}

// BankCode requires a known 5-digit institution code.
func BankCode(field string) Rule {
	return func(v any, _ Fields) (any, error) {
		if err := ValidateBankCode(field, v.(string)); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Account validates a CLABE, card or phone identifier.
func Account(field string) Rule {
	return func(v any, _ Fields) (any, error) {
		s := strings.TrimSpace(v.(string))
		if _, err := ValidateAccount(field, s); err != nil {
			return nil, err
		}
		return s, nil
	}
}

// ClabeAccount validates an 18-digit CLABE.
func ClabeAccount(field string) Rule {
	return func(v any, _ Fields) (any, error) {
		s := strings.TrimSpace(v.(string))
		if !isDigits(s) {
			return nil, apperror.ErrInvalidIdentifier(field, "must contain digits only")
		}
		if err := ValidateClabe(field, s); err != nil {
			return nil, err
		}
		return s, nil
	}
}

// MatchesAccount cross-checks an account type against the already validated
// identifier stored under accountField.
func MatchesAccount(field, accountField string) Rule {
	return func(v any, validated Fields) (any, error) {
		tipo := TipoCuenta(v.(int))
		id, ok := validated[accountField].(string)
		if !ok {
			return tipo, nil
		}
		return CheckAccountType(field, id, tipo)
	}
}

// Between requires lo < n < hi.
func Between(field string, lo, hi int) Rule {
	return func(v any, _ Fields) (any, error) {
		n := v.(int)
		if n <= lo || n >= hi {
			return nil, apperror.ErrInvalidField(field, fmt.Sprintf("must be between %d and %d exclusive", lo, hi))
		}
		return n, nil
	}
}

// OneOf restricts a string to a fixed set.
func OneOf(field string, allowed ...string) Rule {
	return func(v any, _ Fields) (any, error) {
		s := v.(string)
		for _, a := range allowed {
			if s == a {
				return s, nil
			}
		}
		return nil, apperror.ErrInvalidField(field, fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")))
	}
}
