package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

const defaultAuditLimit = 100

// AuditLogRepo persists the audit trail. Details go to a JSONB column.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository builds the adapter. Pass a pool or a tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

func (r *AuditLogRepo) Create(ctx context.Context, l *entity.AuditLog) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO audit_logs (id, user_id, action, table_name, record_id, details, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID, l.UserID, l.Action, l.TableName, l.RecordID, l.Details, l.IPAddress, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

func (r *AuditLogRepo) List(ctx context.Context, filter repository.AuditLogFilter) ([]*entity.AuditLog, error) {
	wb := &whereBuilder{}
	if filter.Action != "" {
		wb.add(`action = $%d`, filter.Action)
	}
	if filter.UserID != nil {
		wb.add(`user_id = $%d`, *filter.UserID)
	}
	if filter.From != nil {
		wb.add(`created_at >= $%d`, *filter.From)
	}
	if filter.To != nil {
		wb.add(`created_at <= $%d`, *filter.To)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAuditLimit
	}

	query := `
		SELECT id, user_id, action, table_name, record_id, details, ip_address, created_at
		FROM audit_logs` + wb.clause() + fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, limit)
	rows, err := r.q.Query(ctx, query, wb.args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var out []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.TableName, &l.RecordID,
			&l.Details, &l.IPAddress, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
