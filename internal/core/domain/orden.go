package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"stp-signer/pkg/apperror"
)

// InstructionKind selects the field registry used to sign an instruction.
type InstructionKind string

const (
	KindOrden  InstructionKind = "orden"
	KindCuenta InstructionKind = "cuenta"
)

// Instruction is a validated record ready to be joined and signed.
type Instruction interface {
	Kind() InstructionKind
	// Value returns the typed value stored under an STP field name.
	// Fields the instruction does not carry report false.
	Value(name string) (any, bool)
	// Payload is the flat JSON body without empresa and firma.
	Payload() map[string]any
}

// Prioridad is the SPEI priority of an order.
type Prioridad int

const (
	PrioridadNormal Prioridad = 0
	PrioridadAlta   Prioridad = 1
)

const (
	maxNombre       = 39
	maxConcepto     = 39
	maxClaveRastreo = 29
	maxRfcCurp      = 18
	maxReferencia   = 10_000_000
	minReferencia   = 1_000_000

	defaultRfcCurp      = "ND"
	defaultMedioEntrega = 3
	defaultTipoPago     = 1
	defaultTopologia    = "T"
)

// Orden is an outbound SPEI payment order.
type Orden struct {
	Monto                  decimal.Decimal
	ConceptoPago           string
	CuentaBeneficiario     string
	NombreBeneficiario     string
	InstitucionContraparte string
	CuentaOrdenante        string
	NombreOrdenante        *string
	InstitucionOperante    string
	TipoCuentaBeneficiario TipoCuenta
	TipoCuentaOrdenante    TipoCuenta
	ClaveRastreo           string
	ReferenciaNumerica     int
	RfcCurpBeneficiario    string
	RfcCurpOrdenante       *string
	MedioEntrega           int
	Prioridad              *Prioridad
	TipoPago               int
	Topologia              string
	Iva                    *decimal.Decimal
	ID                     *int // set once STP accepted the order
}

var ordenSpecs = []FieldSpec{
	// monto first: integer amounts fail before any text is touched.
	{Name: "monto", Rules: []Rule{AsAmount(), Positive("monto")}},
	{Name: "conceptoPago", Rules: []Rule{AsString("conceptoPago"), Text("conceptoPago", maxConcepto)}},
	{Name: "cuentaBeneficiario", Rules: []Rule{AsString("cuentaBeneficiario"), Account("cuentaBeneficiario")}},
	{Name: "nombreBeneficiario", Rules: []Rule{AsString("nombreBeneficiario"), Text("nombreBeneficiario", maxNombre)}},
	{Name: "institucionContraparte", Rules: []Rule{AsString("institucionContraparte"), Trimmed(), BankCode("institucionContraparte")}},
	{
		Name: "cuentaOrdenante",
		Default: func(cc *Company, _ Fields) any {
			if cc.CuentaOrdenante == "" {
				return nil
			}
			return cc.CuentaOrdenante
		},
		Rules: []Rule{AsString("cuentaOrdenante"), ClabeAccount("cuentaOrdenante")},
	},
	{Name: "nombreOrdenante", Optional: true, Rules: []Rule{AsString("nombreOrdenante"), Text("nombreOrdenante", maxNombre)}},
	{
		Name:    "institucionOperante",
		Default: func(cc *Company, _ Fields) any { return cc.BankCode },
		Rules:   []Rule{AsString("institucionOperante"), Trimmed(), BankCode("institucionOperante")},
	},
	{
		Name: "tipoCuentaBeneficiario",
		Default: func(_ *Company, f Fields) any {
			return ClassifyAccount(f["cuentaBeneficiario"].(string))
		},
		Rules: []Rule{AsInt("tipoCuentaBeneficiario"), MatchesAccount("tipoCuentaBeneficiario", "cuentaBeneficiario")},
	},
	{
		Name:    "tipoCuentaOrdenante",
		Default: func(_ *Company, _ Fields) any { return TipoCuentaClabe },
		Rules:   []Rule{AsInt("tipoCuentaOrdenante"), MatchesAccount("tipoCuentaOrdenante", "cuentaOrdenante")},
	},
	{
		Name:    "claveRastreo",
		Default: func(cc *Company, _ Fields) any { return cc.nextClaveRastreo() },
		Rules:   []Rule{AsString("claveRastreo"), Text("claveRastreo", maxClaveRastreo)},
	},
	{
		Name: "referenciaNumerica",
		Default: func(cc *Company, _ Fields) any {
			return minReferencia + cc.intn(maxReferencia-minReferencia)
		},
		Rules: []Rule{AsInt("referenciaNumerica"), Between("referenciaNumerica", 0, maxReferencia)},
	},
	{
		Name:    "rfcCurpBeneficiario",
		Default: func(_ *Company, _ Fields) any { return defaultRfcCurp },
		Rules:   []Rule{AsString("rfcCurpBeneficiario"), Trimmed(), NonEmpty("rfcCurpBeneficiario"), MaxLen("rfcCurpBeneficiario", maxRfcCurp)},
	},
	{Name: "rfcCurpOrdenante", Optional: true, Rules: []Rule{AsString("rfcCurpOrdenante"), Trimmed(), NonEmpty("rfcCurpOrdenante"), MaxLen("rfcCurpOrdenante", maxRfcCurp)}},
	{
		Name:    "medioEntrega",
		Default: func(_ *Company, _ Fields) any { return defaultMedioEntrega },
		Rules:   []Rule{AsInt("medioEntrega")},
	},
	{Name: "prioridad", Optional: true, Rules: []Rule{AsInt("prioridad"), asPrioridad()}},
	{
		Name:    "tipoPago",
		Default: func(_ *Company, _ Fields) any { return defaultTipoPago },
		Rules:   []Rule{AsInt("tipoPago")},
	},
	{
		Name:    "topologia",
		Default: func(_ *Company, _ Fields) any { return defaultTopologia },
		Rules:   []Rule{AsString("topologia"), Trimmed(), OneOf("topologia", "T", "V")},
	},
	{Name: "iva", Optional: true, Rules: []Rule{AsDecimal("iva")}},
	{Name: "id", Optional: true, Rules: []Rule{AsInt("id")}},
}

func asPrioridad() Rule {
	return func(v any, _ Fields) (any, error) {
		p := Prioridad(v.(int))
		if p != PrioridadNormal && p != PrioridadAlta {
			return nil, apperror.ErrInvalidField("prioridad", "must be 0 or 1")
		}
		return p, nil
	}
}

// NewOrden validates rec against the order pipeline and fills the defaults
// from cc. No field is canonicalized before monto has been checked.
func NewOrden(rec Record, cc *Company) (*Orden, error) {
	f, err := Validate(ordenSpecs, rec, cc)
	if err != nil {
		return nil, err
	}

	o := &Orden{
		Monto:                  f["monto"].(decimal.Decimal),
		ConceptoPago:           f["conceptoPago"].(string),
		CuentaBeneficiario:     f["cuentaBeneficiario"].(string),
		NombreBeneficiario:     f["nombreBeneficiario"].(string),
		InstitucionContraparte: f["institucionContraparte"].(string),
		CuentaOrdenante:        f["cuentaOrdenante"].(string),
		InstitucionOperante:    f["institucionOperante"].(string),
		TipoCuentaBeneficiario: f["tipoCuentaBeneficiario"].(TipoCuenta),
		TipoCuentaOrdenante:    f["tipoCuentaOrdenante"].(TipoCuenta),
		ClaveRastreo:           f["claveRastreo"].(string),
		ReferenciaNumerica:     f["referenciaNumerica"].(int),
		RfcCurpBeneficiario:    f["rfcCurpBeneficiario"].(string),
		MedioEntrega:           f["medioEntrega"].(int),
		TipoPago:               f["tipoPago"].(int),
		Topologia:              f["topologia"].(string),
	}
	if v, ok := f["nombreOrdenante"].(string); ok {
		o.NombreOrdenante = &v
	}
	if v, ok := f["rfcCurpOrdenante"].(string); ok {
		o.RfcCurpOrdenante = &v
	}
	if v, ok := f["prioridad"].(Prioridad); ok {
		o.Prioridad = &v
	}
	if v, ok := f["iva"].(decimal.Decimal); ok {
		o.Iva = &v
	}
	if v, ok := f["id"].(int); ok {
		o.ID = &v
	}
	return o, nil
}

func (o *Orden) Kind() InstructionKind { return KindOrden }

func (o *Orden) Value(name string) (any, bool) {
	switch name {
	case "monto":
		return o.Monto, true
	case "conceptoPago":
		return o.ConceptoPago, true
	case "cuentaBeneficiario":
		return o.CuentaBeneficiario, true
	case "nombreBeneficiario":
		return o.NombreBeneficiario, true
	case "institucionContraparte":
		return o.InstitucionContraparte, true
	case "cuentaOrdenante":
		return o.CuentaOrdenante, true
	case "nombreOrdenante":
		return deref(o.NombreOrdenante)
	case "institucionOperante":
		return o.InstitucionOperante, true
	case "tipoCuentaBeneficiario":
		return o.TipoCuentaBeneficiario, true
	case "tipoCuentaOrdenante":
		return o.TipoCuentaOrdenante, true
	case "claveRastreo":
		return o.ClaveRastreo, true
	case "referenciaNumerica":
		return o.ReferenciaNumerica, true
	case "rfcCurpBeneficiario":
		return o.RfcCurpBeneficiario, true
	case "rfcCurpOrdenante":
		return deref(o.RfcCurpOrdenante)
	case "medioEntrega":
		return o.MedioEntrega, true
	case "prioridad":
		return deref(o.Prioridad)
	case "tipoPago":
		return o.TipoPago, true
	case "topologia":
		return o.Topologia, true
	case "iva":
		return deref(o.Iva)
	}
	return nil, false
}

func (o *Orden) Payload() map[string]any {
	p := map[string]any{
		"monto":                  json.Number(o.Monto.StringFixed(2)),
		"conceptoPago":           o.ConceptoPago,
		"cuentaBeneficiario":     o.CuentaBeneficiario,
		"nombreBeneficiario":     o.NombreBeneficiario,
		"institucionContraparte": o.InstitucionContraparte,
		"cuentaOrdenante":        o.CuentaOrdenante,
		"institucionOperante":    o.InstitucionOperante,
		"tipoCuentaBeneficiario": int(o.TipoCuentaBeneficiario),
		"tipoCuentaOrdenante":    int(o.TipoCuentaOrdenante),
		"claveRastreo":           o.ClaveRastreo,
		"referenciaNumerica":     o.ReferenciaNumerica,
		"rfcCurpBeneficiario":    o.RfcCurpBeneficiario,
		"medioEntrega":           o.MedioEntrega,
		"tipoPago":               o.TipoPago,
		"topologia":              o.Topologia,
	}
	if o.NombreOrdenante != nil {
		p["nombreOrdenante"] = *o.NombreOrdenante
	}
	if o.RfcCurpOrdenante != nil {
		p["rfcCurpOrdenante"] = *o.RfcCurpOrdenante
	}
	if o.Prioridad != nil {
		p["prioridad"] = int(*o.Prioridad)
	}
	if o.Iva != nil {
		p["iva"] = json.Number(o.Iva.StringFixed(2))
	}
	return p
}

// BankName returns the display name of the counterpart institution.
func (o *Orden) BankName() string {
	name, _ := BankName(o.InstitucionContraparte)
	return name
}

func deref[T any](p *T) (any, bool) {
	if p == nil {
		return nil, false
	}
	return *p, true
}
