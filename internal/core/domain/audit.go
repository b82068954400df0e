package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionFirma         AuditAction = "FIRMA"
	AuditActionRegistraOrden AuditAction = "REGISTRA_ORDEN"
	AuditActionAltaCuenta    AuditAction = "ALTA_CUENTA"
	AuditActionBajaCuenta    AuditAction = "BAJA_CUENTA"
)

// AuditLog records one signed instruction and, when it was submitted, what
// STP answered. It is an audit trail, not payment state.
type AuditLog struct {
	ID           uuid.UUID       `json:"id"`
	Action       AuditAction     `json:"action"`
	Kind         InstructionKind `json:"kind"`
	Empresa      string          `json:"empresa"`
	ClaveRastreo string          `json:"clave_rastreo,omitempty"`
	Cuenta       string          `json:"cuenta,omitempty"`
	Cadena       string          `json:"cadena"`
	Firma        string          `json:"firma"`
	StpID        *int            `json:"stp_id,omitempty"`
	ErrorCode    string          `json:"error_code,omitempty"`
	Subject      string          `json:"subject,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
