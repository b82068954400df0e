package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"stp-signer/pkg/apperror"
)

// STP endpoints, relative to the configured base URL.
const (
	EndpointRegistraOrden = "/ordenPago/registra"
	EndpointCuentaFisica  = "/cuentaModule/fisica"
)

// StpResponse is an STP reply decoded from either of its two shapes:
// {"resultado":{"id":N,"descripcionError":"..."}} for orders and
// {"id":N,"descripcion":"..."} for the account module.
type StpResponse struct {
	ID          int
	Descripcion string
	Resultado   bool // decoded from the resultado shape
	hasID       bool
}

type rawResponse struct {
	Resultado *struct {
		ID               *int   `json:"id"`
		DescripcionError string `json:"descripcionError"`
	} `json:"resultado"`
	ID          *int   `json:"id"`
	Descripcion string `json:"descripcion"`
}

// DecodeResponse reads an STP response body.
func DecodeResponse(body []byte) (StpResponse, error) {
	var raw rawResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return StpResponse{}, err
	}
	if raw.Resultado != nil {
		r := StpResponse{Descripcion: raw.Resultado.DescripcionError, Resultado: true}
		if raw.Resultado.ID != nil {
			r.ID, r.hasID = *raw.Resultado.ID, true
		}
		return r, nil
	}
	r := StpResponse{Descripcion: raw.Descripcion}
	if raw.ID != nil {
		r.ID, r.hasID = *raw.ID, true
	}
	return r, nil
}

// IsSuccess reports whether STP accepted the request: a positive
// resultado.id without descripcionError, or a top-level id of 0.
func (r StpResponse) IsSuccess() bool {
	if !r.hasID {
		return false
	}
	if r.Resultado {
		return r.ID > 0 && r.Descripcion == ""
	}
	return r.ID == 0
}

type exactRule struct {
	id       int
	fragment string // required substring of the description, "" for any
	build    func(endpoint string, id int, desc string) *apperror.StpError
}

// Exact ids first. Id 0 is shared, so its rules also need a fragment.
var exactRules = []exactRule{
	{0, "No se recibió respuesta", apperror.ErrNoServiceResponse},
	{0, "Error validando la firma", apperror.ErrSignatureValidation},
	{-11, "", apperror.ErrInvalidAccountType},
	{-1, "", apperror.ErrClaveRastreoAlreadyInUse},
	{-200, "", apperror.ErrPldRejected},
	{-22, "", apperror.ErrBankCodeClabeMismatch},
	{-24, "", apperror.ErrSameAccount},
	{-34, "", apperror.ErrInvalidTrackingKey},
}

var (
	invalidFieldPattern = regexp.MustCompile(`El campo (.+?) es inv[aá]lid[oa]`)
	rfcCurpPattern      = regexp.MustCompile(`(?i)rfc/curp inv[aá]lido`)
)

// Classify maps an STP error id and description to its error kind. It is
// total: anything unrecognised becomes a generic STP_000 that keeps the raw
// id and description.
func Classify(endpoint string, id int, descripcion string) *apperror.StpError {
	for _, r := range exactRules {
		if r.id == id && strings.Contains(descripcion, r.fragment) {
			return r.build(endpoint, id, descripcion)
		}
	}

	switch {
	case strings.Contains(descripcion, "Cuenta Duplicada"):
		return apperror.ErrDuplicatedAccount(endpoint, id, descripcion)
	case rfcCurpPattern.MatchString(descripcion):
		return apperror.ErrInvalidRfcOrCurp(endpoint, id, descripcion)
	}
	if m := invalidFieldPattern.FindStringSubmatch(descripcion); m != nil {
		return apperror.ErrStpInvalidField(endpoint, id, descripcion, m[1])
	}

	return apperror.ErrStpmexException(endpoint, id, descripcion)
}

// ClassifyBody decodes body and classifies it. It returns nil when the body
// is a success response. Undecodable bodies are generic errors carrying the
// raw text.
func ClassifyBody(endpoint string, body []byte) *apperror.StpError {
	resp, err := DecodeResponse(body)
	if err != nil {
		return apperror.ErrStpmexException(endpoint, 0, strings.TrimSpace(string(body)))
	}
	if resp.IsSuccess() {
		return nil
	}
	return Classify(endpoint, resp.ID, resp.Descripcion)
}
