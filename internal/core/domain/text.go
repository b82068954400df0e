package domain

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"stp-signer/pkg/apperror"
)

// ToASCII decomposes v (NFKD) and drops every rune outside ASCII, so
// accented letters keep their base letter and anything else disappears.
func ToASCII(v string) string {
	decomposed := norm.NFKD.String(v)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Canonicalize folds v to ASCII, trims it and truncates it to max characters.
// Empty results are an EmptyField error. Truncation is silent.
func Canonicalize(field, v string, max int) (string, error) {
	return finish(field, strings.TrimSpace(ToASCII(v)), max)
}

// CanonicalizeStrict is Canonicalize for identity-document fields: hyphens,
// commas and periods become spaces and the result is upper-cased.
func CanonicalizeStrict(field, v string, max int) (string, error) {
	s := strings.TrimSpace(ToASCII(v))
	s = strictReplacer.Replace(s)
	s = strings.ToUpper(s)
	return finish(field, strings.TrimSpace(s), max)
}

var strictReplacer = strings.NewReplacer("-", " ", ",", " ", ".", " ")

func finish(field, s string, max int) (string, error) {
	if s == "" {
		return "", apperror.ErrEmptyField(field)
	}
	if max > 0 && len(s) > max {
		// ASCII only at this point, bytes are characters.
		s = strings.TrimRight(s[:max], " \t\r\n\v\f")
	}
	return s, nil
}
