package service

import (
	"fmt"
	"strconv"
	"strings"

	"stp-signer/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Formatter renders one field of the cadena original. It receives nil for
// fields the instruction does not carry.
type Formatter func(v any) string

// Accessor reads a field value from the instruction or the company context.
type Accessor func(inst domain.Instruction, cc *domain.Company) (any, bool)

// FieldRule is one slot of the cadena original.
type FieldRule struct {
	Name   string
	Get    Accessor
	Format Formatter
}

// Identity renders strings and numbers in their natural form.
func Identity(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case decimal.Decimal:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// EnumCode renders an enum as its wire code.
func EnumCode(v any) string {
	switch t := v.(type) {
	case domain.TipoCuenta:
		return strconv.Itoa(int(t))
	case domain.Prioridad:
		return strconv.Itoa(int(t))
	case domain.Genero:
		return string(t)
	default:
		return Identity(v)
	}
}

// Decimal2 renders amounts with exactly two decimals.
func Decimal2(v any) string {
	if d, ok := v.(decimal.Decimal); ok {
		return d.StringFixed(2)
	}
	return Identity(v)
}

// BankCodePad left-pads institution codes with zeros to five digits.
func BankCodePad(v any) string {
	s := Identity(v)
	if n := len(s); n < 5 {
		s = strings.Repeat("0", 5-n) + s
	}
	return s
}

// EmptyIfAbsent renders absent values as the empty string.
func EmptyIfAbsent(next Formatter) Formatter {
	return func(v any) string {
		if v == nil {
			return ""
		}
		return next(v)
	}
}

func instructionField(name string, format Formatter) FieldRule {
	return FieldRule{
		Name: name,
		Get: func(inst domain.Instruction, _ *domain.Company) (any, bool) {
			return inst.Value(name)
		},
		Format: EmptyIfAbsent(format),
	}
}

func companyEmpresa() FieldRule {
	return FieldRule{
		Name: "empresa",
		Get: func(_ domain.Instruction, cc *domain.Company) (any, bool) {
			return cc.Empresa, cc.Empresa != ""
		},
		Format: EmptyIfAbsent(Identity),
	}
}

// ordenFields is the cadena original of ordenPago/registra. Order is part of
// the wire contract STP verifies against.
var ordenFields = []FieldRule{
	instructionField("institucionContraparte", BankCodePad),
	companyEmpresa(),
	instructionField("fechaOperacion", Identity),
	instructionField("folioOrigen", Identity),
	instructionField("claveRastreo", Identity),
	instructionField("institucionOperante", BankCodePad),
	instructionField("monto", Decimal2),
	instructionField("tipoPago", Identity),
	instructionField("tipoCuentaOrdenante", EnumCode),
	instructionField("nombreOrdenante", Identity),
	instructionField("cuentaOrdenante", Identity),
	instructionField("rfcCurpOrdenante", Identity),
	instructionField("tipoCuentaBeneficiario", EnumCode),
	instructionField("nombreBeneficiario", Identity),
	instructionField("cuentaBeneficiario", Identity),
	instructionField("rfcCurpBeneficiario", Identity),
	instructionField("emailBeneficiario", Identity),
	instructionField("tipoCuentaBeneficiario2", EnumCode),
	instructionField("nombreBeneficiario2", Identity),
	instructionField("cuentaBeneficiario2", Identity),
	instructionField("rfcCurpBeneficiario2", Identity),
	instructionField("conceptoPago", Identity),
	instructionField("conceptoPago2", Identity),
	instructionField("claveCatUsuario1", Identity),
	instructionField("claveCatUsuario2", Identity),
	instructionField("clavePago", Identity),
	instructionField("referenciaCobranza", Identity),
	instructionField("referenciaNumerica", Identity),
	instructionField("tipoOperacion", Identity),
	instructionField("topologia", Identity),
	instructionField("usuario", Identity),
	instructionField("medioEntrega", Identity),
	instructionField("prioridad", EnumCode),
	instructionField("iva", Decimal2),
}

var cuentaFields = []FieldRule{
	companyEmpresa(),
	instructionField("cuenta", Identity),
	instructionField("rfcCurp", Identity),
}

// FieldsFor returns the ordered field rules of an instruction kind. The
// returned slice is shared and must not be modified.
func FieldsFor(kind domain.InstructionKind) ([]FieldRule, error) {
	switch kind {
	case domain.KindOrden:
		return ordenFields, nil
	case domain.KindCuenta:
		return cuentaFields, nil
	default:
		return nil, fmt.Errorf("no field registry for instruction kind %q", kind)
	}
}
