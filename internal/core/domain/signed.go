package domain

import (
	"fmt"
	"time"
)

// SignedInstruction is the result of preparing an instruction: the exact
// cadena original, its signature and the body to send to STP.
type SignedInstruction struct {
	Kind         InstructionKind `json:"kind"`
	Cadena       string          `json:"cadena"`
	Firma        string          `json:"firma"`
	Payload      map[string]any  `json:"payload"`
	ClaveRastreo string          `json:"claveRastreo,omitempty"`
	ID           *int            `json:"id,omitempty"`
	SignedAt     time.Time       `json:"signedAt"`
}

// BuildTrackingKeyReservation constructs the reservation key of a claveRastreo.
// Tracking keys are unique per company.
func BuildTrackingKeyReservation(empresa, claveRastreo string) string {
	return fmt.Sprintf("clave_rastreo:%s:%s", empresa, claveRastreo)
}
