package ports

import (
	"context"
	"time"

	"stp-signer/internal/core/domain"
	"stp-signer/pkg/apperror"

	"github.com/google/uuid"
)

// Signer produces the firma of a cadena original.
type Signer interface {
	Sign(msg []byte) (string, error)
}

// TokenService handles JWT token operations for API operators.
type TokenService interface {
	Generate(subject string, empresa string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Empresa string
	TokenID uuid.UUID
}

// TrackingKeyStore reserves claveRastreo values so a tracking key is never
// submitted twice for the same company.
type TrackingKeyStore interface {
	// Reserve atomically claims the key. Returns false if it was already taken.
	Reserve(ctx context.Context, empresa string, claveRastreo string, ttl time.Duration) (bool, error)
	// Release frees a key whose instruction was never sent.
	Release(ctx context.Context, empresa string, claveRastreo string) error
}

// StpGateway submits signed payloads to STP. Error responses come back as
// *apperror.StpError.
type StpGateway interface {
	RegistraOrden(ctx context.Context, payload map[string]any) (int, error)
	AltaCuenta(ctx context.Context, payload map[string]any) error
	BajaCuenta(ctx context.Context, payload map[string]any) error
}

// AuditService records signed instructions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// InstructionService validates, signs and optionally submits instructions.
type InstructionService interface {
	PrepareOrden(ctx context.Context, rec domain.Record) (*domain.SignedInstruction, error)
	RegistraOrden(ctx context.Context, rec domain.Record) (*domain.SignedInstruction, error)
	PrepareCuenta(ctx context.Context, rec domain.Record) (*domain.SignedInstruction, error)
	AltaCuenta(ctx context.Context, rec domain.Record) (*domain.SignedInstruction, error)
	BajaCuenta(ctx context.Context, rec domain.Record) (*domain.SignedInstruction, error)
	// Classify turns a raw STP response body into its error kind, nil on success.
	Classify(endpoint string, body []byte) *apperror.StpError
}

// HealthChecker is implemented by stores the API depends on. /health reports
// each one by Name.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
