package service

import (
	"strings"

	"stp-signer/internal/core/domain"
)

// Join builds the cadena original of inst: the formatted fields separated by
// pipes and framed by "||". Embedded pipes are not escaped.
func Join(inst domain.Instruction, rules []FieldRule, cc *domain.Company) []byte {
	parts := make([]string, len(rules))
	for i, r := range rules {
		v, ok := r.Get(inst, cc)
		if !ok {
			v = nil
		}
		parts[i] = r.Format(v)
	}
	return []byte("||" + strings.Join(parts, "|") + "||")
}
