package postgres

import (
	"context"
	"errors"
	"fmt"

	"stp-signer/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AuditRepo implements ports.AuditRepository on the firma_audit table.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a PostgreSQL-backed AuditRepository.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

const auditColumns = `id, action, kind, empresa, clave_rastreo, cuenta, cadena, firma, stp_id, error_code, subject, created_at`

// Create inserts one audit entry.
func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	query := `INSERT INTO firma_audit (` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		log.ID, string(log.Action), string(log.Kind), log.Empresa,
		log.ClaveRastreo, log.Cuenta, log.Cadena, log.Firma,
		log.StpID, log.ErrorCode, log.Subject, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert firma audit: %w", err)
	}
	return nil
}

// GetByID fetches one entry. Returns nil, nil when it does not exist.
func (r *AuditRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuditLog, error) {
	query := `SELECT ` + auditColumns + ` FROM firma_audit WHERE id = $1`

	log, err := scanAudit(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get firma audit by id: %w", err)
	}
	return log, nil
}

// ListByClaveRastreo returns every entry recorded for a tracking key,
// oldest first.
func (r *AuditRepo) ListByClaveRastreo(ctx context.Context, empresa, claveRastreo string) ([]domain.AuditLog, error) {
	query := `SELECT ` + auditColumns + ` FROM firma_audit
		WHERE empresa = $1 AND clave_rastreo = $2
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, empresa, claveRastreo)
	if err != nil {
		return nil, fmt.Errorf("list firma audit: %w", err)
	}
	defer rows.Close()

	var logs []domain.AuditLog
	for rows.Next() {
		log, err := scanAudit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan firma audit: %w", err)
		}
		logs = append(logs, *log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate firma audit: %w", err)
	}
	return logs, nil
}

func scanAudit(row pgx.Row) (*domain.AuditLog, error) {
	var (
		log          domain.AuditLog
		action, kind string
	)
	err := row.Scan(
		&log.ID, &action, &kind, &log.Empresa,
		&log.ClaveRastreo, &log.Cuenta, &log.Cadena, &log.Firma,
		&log.StpID, &log.ErrorCode, &log.Subject, &log.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	log.Action = domain.AuditAction(action)
	log.Kind = domain.InstructionKind(kind)
	return &log, nil
}

// Name identifies the repository in health reports.
func (r *AuditRepo) Name() string {
	return "postgresql"
}

// Ping checks that the audit table is reachable, not just the server.
func (r *AuditRepo) Ping(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, "SELECT 1 FROM firma_audit LIMIT 1"); err != nil {
		return fmt.Errorf("ping firma audit: %w", err)
	}
	return nil
}
