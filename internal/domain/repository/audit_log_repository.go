package repository

import (
	"context"
	"time"

	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
)

// AuditLogFilter narrows audit-log listings.
type AuditLogFilter struct {
	Action string
	UserID *int64
	From   *time.Time
	To     *time.Time
	Limit  int
}

// AuditLogRepository is the persistence port for the audit trail.
type AuditLogRepository interface {
	Create(ctx context.Context, l *entity.AuditLog) error
	List(ctx context.Context, filter AuditLogFilter) ([]*entity.AuditLog, error)
}
