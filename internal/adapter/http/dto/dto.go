package dto

import (
	"encoding/json"
	"time"

	"stp-signer/internal/core/domain"
)

// ClasificarRequest is the request body for classifying a raw STP response.
type ClasificarRequest struct {
	Endpoint  string          `json:"endpoint" binding:"required,oneof=/ordenPago/registra /cuentaModule/fisica"`
	Respuesta json.RawMessage `json:"respuesta" binding:"required"`
}

// ClasificarResponse describes a classified STP response.
type ClasificarResponse struct {
	Success     bool   `json:"success"`
	ErrorCode   string `json:"error_code,omitempty"`
	Message     string `json:"message,omitempty"`
	StpID       *int   `json:"stp_id,omitempty"`
	Descripcion string `json:"stp_descripcion,omitempty"`
	Field       string `json:"field,omitempty"`
}

// ClabeRequest binds the CLABE path parameter.
type ClabeRequest struct {
	Clabe string `uri:"clabe" binding:"required,digits,clabe"`
}

// ClabeResponse is a CLABE split into its zones.
type ClabeResponse struct {
	Clabe      string `json:"clabe"`
	BankCode   string `json:"bank_code"`
	BankName   string `json:"bank_name"`
	Plaza      string `json:"plaza"`
	Account    string `json:"account"`
	CheckDigit int    `json:"check_digit"`
}

// BancoRequest binds the institution code path parameter.
type BancoRequest struct {
	Code string `uri:"code" binding:"required,digits,bank_code"`
}

// BancoResponse is an institution code with its display name.
type BancoResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SignedInstructionResponse is the response body for every signing route.
type SignedInstructionResponse struct {
	Kind         string         `json:"kind"`
	Cadena       string         `json:"cadena"`
	Firma        string         `json:"firma"`
	Payload      map[string]any `json:"payload"`
	ClaveRastreo string         `json:"clave_rastreo,omitempty"`
	ID           *int           `json:"id,omitempty"`
	SignedAt     int64          `json:"signed_at"` // Unix timestamp
}

// FromSignedInstruction maps the domain result to its response body.
func FromSignedInstruction(s *domain.SignedInstruction) SignedInstructionResponse {
	signedAt := s.SignedAt
	if signedAt.IsZero() {
		signedAt = time.Now()
	}
	return SignedInstructionResponse{
		Kind:         string(s.Kind),
		Cadena:       s.Cadena,
		Firma:        s.Firma,
		Payload:      s.Payload,
		ClaveRastreo: s.ClaveRastreo,
		ID:           s.ID,
		SignedAt:     signedAt.Unix(),
	}
}
