package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"stp-signer/pkg/apperror"
)

// Genero as accepted by the STP account registry.
type Genero string

const (
	GeneroMujer  Genero = "M"
	GeneroHombre Genero = "H"
)

// FechaLayout is the YYYYMMDD date format used on the wire.
const FechaLayout = "20060102"

const (
	maxNombreCuenta = 50
	maxEmail        = 150
)

var curpPattern = regexp.MustCompile(`^[A-Z]{4}[0-9]{6}[A-Z]{6}[A-Z|0-9][0-9]$`)

// CuentaFisica registers an individual's account with STP so it can receive
// transfers.
type CuentaFisica struct {
	Nombre             string
	ApellidoPaterno    string
	ApellidoMaterno    *string
	Cuenta             string
	RfcCurp            string
	FechaNacimiento    *time.Time
	Genero             *Genero
	EntidadFederativa  *int
	ActividadEconomica *int
	Email              *string
}

var (
	cuentaSpec  = FieldSpec{Name: "cuenta", Rules: []Rule{AsString("cuenta"), ClabeAccount("cuenta")}}
	rfcCurpSpec = FieldSpec{Name: "rfcCurp", Rules: []Rule{AsString("rfcCurp"), Trimmed(), rfcCurp()}}
)

var cuentaSpecs = []FieldSpec{
	{Name: "nombre", Rules: []Rule{AsString("nombre"), StrictText("nombre", maxNombreCuenta)}},
	{Name: "apellidoPaterno", Rules: []Rule{AsString("apellidoPaterno"), StrictText("apellidoPaterno", maxNombreCuenta)}},
	{Name: "apellidoMaterno", Optional: true, Rules: []Rule{AsString("apellidoMaterno"), StrictText("apellidoMaterno", maxNombreCuenta)}},
	cuentaSpec,
	rfcCurpSpec,
	{Name: "fechaNacimiento", Optional: true, Rules: []Rule{fecha("fechaNacimiento")}},
	{Name: "genero", Optional: true, Rules: []Rule{AsString("genero"), Trimmed(), OneOf("genero", string(GeneroMujer), string(GeneroHombre))}},
	{Name: "entidadFederativa", Optional: true, Rules: []Rule{AsInt("entidadFederativa"), Between("entidadFederativa", 0, 33)}},
	{Name: "actividadEconomica", Optional: true, Rules: []Rule{AsInt("actividadEconomica"), Between("actividadEconomica", 0, 100)}},
	{Name: "email", Optional: true, Rules: []Rule{AsString("email"), Trimmed(), MaxLen("email", maxEmail), email()}},
}

var cuentaBajaSpecs = []FieldSpec{cuentaSpec, rfcCurpSpec}

// rfcCurp accepts an 18 character CURP or a 12-13 character RFC.
func rfcCurp() Rule {
	return func(v any, _ Fields) (any, error) {
		s := v.(string)
		switch {
		case len(s) == 18:
			if !curpPattern.MatchString(s) {
				return nil, apperror.ErrInvalidField("rfcCurp", "not a valid CURP")
			}
		case len(s) == 12 || len(s) == 13:
		default:
			return nil, apperror.ErrInvalidField("rfcCurp", "must be a CURP (18) or RFC (12-13)")
		}
		return s, nil
	}
}

func fecha(field string) Rule {
	return func(v any, _ Fields) (any, error) {
		switch t := v.(type) {
		case time.Time:
			return t, nil
		case string:
			d, err := time.Parse(FechaLayout, strings.TrimSpace(t))
			if err != nil {
				return nil, apperror.ErrInvalidField(field, "expected YYYYMMDD")
			}
			return d, nil
		default:
			return nil, apperror.ErrInvalidField(field, fmt.Sprintf("expected YYYYMMDD string, got %T", v))
		}
	}
}

// fieldValidator is safe for concurrent use and caches its tag parsing.
var fieldValidator = validator.New()

func email() Rule {
	return func(v any, _ Fields) (any, error) {
		s := v.(string)
		if err := fieldValidator.Var(s, "required,email"); err != nil {
			return nil, apperror.ErrInvalidField("email", "not a valid address")
		}
		return s, nil
	}
}

// NewCuentaFisica validates an account registration record.
func NewCuentaFisica(rec Record, cc *Company) (*CuentaFisica, error) {
	f, err := Validate(cuentaSpecs, rec, cc)
	if err != nil {
		return nil, err
	}

	c := &CuentaFisica{
		Nombre:          f["nombre"].(string),
		ApellidoPaterno: f["apellidoPaterno"].(string),
		Cuenta:          f["cuenta"].(string),
		RfcCurp:         f["rfcCurp"].(string),
	}
	if v, ok := f["apellidoMaterno"].(string); ok {
		c.ApellidoMaterno = &v
	}
	if v, ok := f["fechaNacimiento"].(time.Time); ok {
		c.FechaNacimiento = &v
	}
	if v, ok := f["genero"].(string); ok {
		g := Genero(v)
		c.Genero = &g
	}
	if v, ok := f["entidadFederativa"].(int); ok {
		c.EntidadFederativa = &v
	}
	if v, ok := f["actividadEconomica"].(int); ok {
		c.ActividadEconomica = &v
	}
	if v, ok := f["email"].(string); ok {
		c.Email = &v
	}
	return c, nil
}

// NewCuentaBaja validates the key fields needed to deregister an account.
func NewCuentaBaja(rec Record, cc *Company) (*CuentaFisica, error) {
	f, err := Validate(cuentaBajaSpecs, rec, cc)
	if err != nil {
		return nil, err
	}
	return &CuentaFisica{
		Cuenta:  f["cuenta"].(string),
		RfcCurp: f["rfcCurp"].(string),
	}, nil
}

func (c *CuentaFisica) Kind() InstructionKind { return KindCuenta }

func (c *CuentaFisica) Value(name string) (any, bool) {
	switch name {
	case "cuenta":
		return c.Cuenta, true
	case "rfcCurp":
		return c.RfcCurp, true
	case "nombre":
		return c.Nombre, c.Nombre != ""
	case "apellidoPaterno":
		return c.ApellidoPaterno, c.ApellidoPaterno != ""
	case "apellidoMaterno":
		return deref(c.ApellidoMaterno)
	case "genero":
		return deref(c.Genero)
	}
	return nil, false
}

func (c *CuentaFisica) Payload() map[string]any {
	p := map[string]any{
		"cuenta":  c.Cuenta,
		"rfcCurp": c.RfcCurp,
	}
	if c.Nombre != "" {
		p["nombre"] = c.Nombre
	}
	if c.ApellidoPaterno != "" {
		p["apellidoPaterno"] = c.ApellidoPaterno
	}
	if c.ApellidoMaterno != nil {
		p["apellidoMaterno"] = *c.ApellidoMaterno
	}
	if c.FechaNacimiento != nil {
		p["fechaNacimiento"] = c.FechaNacimiento.Format(FechaLayout)
	}
	if c.Genero != nil {
		p["genero"] = string(*c.Genero)
	}
	if c.EntidadFederativa != nil {
		p["entidadFederativa"] = *c.EntidadFederativa
	}
	if c.ActividadEconomica != nil {
		p["actividadEconomica"] = *c.ActividadEconomica
	}
	if c.Email != nil {
		p["email"] = *c.Email
	}
	return p
}
