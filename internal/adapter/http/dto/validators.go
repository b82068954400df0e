package dto

import (
	"regexp"

	"stp-signer/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

// RegisterValidations adds the digits, bank_code and clabe tags to v.
func RegisterValidations(v *validator.Validate) {
	_ = v.RegisterValidation("digits", validateDigits)
	_ = v.RegisterValidation("bank_code", validateBankCode)
	_ = v.RegisterValidation("clabe", validateClabe)
}

func validateDigits(fl validator.FieldLevel) bool {
	return digitsRe.MatchString(fl.Field().String())
}

// validateBankCode accepts 5-digit institution codes known to SPEI.
func validateBankCode(fl validator.FieldLevel) bool {
	return domain.ValidateBankCode(fl.FieldName(), fl.Field().String()) == nil
}

// validateClabe accepts 18-digit CLABEs with a valid check digit and bank prefix.
func validateClabe(fl validator.FieldLevel) bool {
	return domain.ValidateClabe(fl.FieldName(), fl.Field().String()) == nil
}
