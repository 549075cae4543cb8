package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/impresthq/imprest_backend/internal/core/domain"
	portsrepo "github.com/impresthq/imprest_backend/internal/core/ports/repositories"
	"github.com/impresthq/imprest_backend/internal/models"
	"github.com/impresthq/imprest_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	pool *pgxpool.Pool
}

// NewPgxAuditRepository creates a new repository for audit log data.
func NewPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepository {
	return &PgxAuditRepository{pool: pool}
}

func (r *PgxAuditRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	m := mapping.ToModelAuditLog(entry)

	var details []byte
	if m.Details != nil {
		var err error
		details, err = json.Marshal(m.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal audit details: %w", err)
		}
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO audit_logs (audit_id, user_id, action, entity_type, entity_id, details, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`, m.AuditID, m.UserID, m.Action, m.EntityType, m.EntityID, details, m.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to save audit log %s: %w", entry.AuditID, err)
	}
	return nil
}

func (r *PgxAuditRepository) ListAuditLogs(ctx context.Context, limit, offset int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT audit_id, user_id, action, entity_type, entity_id, details, timestamp
		FROM audit_logs
		ORDER BY timestamp DESC
		LIMIT $1 OFFSET $2;
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AuditLog, error) {
		var m models.AuditLog
		var details []byte
		err := row.Scan(&m.AuditID, &m.UserID, &m.Action, &m.EntityType, &m.EntityID, &details, &m.Timestamp)
		if err != nil {
			return m, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &m.Details); err != nil {
				return m, fmt.Errorf("failed to unmarshal audit details: %w", err)
			}
		}
		return m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit log rows: %w", err)
	}

	out := make([]domain.AuditLog, len(ms))
	for i := range ms {
		out[i] = mapping.ToDomainAuditLog(ms[i])
	}
	return out, nil
}
