package ports

import (
	"context"

	"stp-signer/internal/core/domain"

	"github.com/google/uuid"
)

// AuditRepository persists the signature audit trail.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AuditLog, error)
	ListByClaveRastreo(ctx context.Context, empresa, claveRastreo string) ([]domain.AuditLog, error)
}
