package service

import (
	"context"

	"stp-signer/internal/core/domain"
	"stp-signer/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, audit logs are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Log records an audit entry asynchronously (fire-and-forget). The caller's
// context is not used for persistence since the request may already be done.
func (s *auditService) Log(_ context.Context, entry *domain.AuditLog) {
	go func() {
		ev := s.log.Info().
			Str("action", string(entry.Action)).
			Str("kind", string(entry.Kind)).
			Str("empresa", entry.Empresa).
			Str("subject", entry.Subject)
		if entry.ClaveRastreo != "" {
			ev = ev.Str("clave_rastreo", entry.ClaveRastreo)
		}
		if entry.Cuenta != "" {
			ev = ev.Str("cuenta", entry.Cuenta)
		}
		if entry.StpID != nil {
			ev = ev.Int("stp_id", *entry.StpID)
		}
		if entry.ErrorCode != "" {
			ev = ev.Str("error_code", entry.ErrorCode)
		}
		ev.Msg("audit")

		if s.repo != nil {
			if err := s.repo.Create(context.Background(), entry); err != nil {
				s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
			}
		}
	}()
}
