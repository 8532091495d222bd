// Package audit writes the mutation trail. Recording is best effort: a failed
// insert is logged and swallowed so the operation it describes still succeeds.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
	"github.com/jhoicas/asset-ledger-api/pkg/logger"
)

const writeTimeout = 5 * time.Second

// Recorder persists audit entries asynchronously.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder builds a recorder.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record queues one audit entry. It returns immediately; the insert runs on
// its own context so a cancelled request cannot abort it.
func (r *Recorder) Record(userID int64, action, tableName string, recordID int64, details map[string]any, ip string) {
	entry := &entity.AuditLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    action,
		TableName: tableName,
		RecordID:  recordID,
		Details:   details,
		IPAddress: ip,
		CreatedAt: time.Now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := r.repo.Create(ctx, entry); err != nil {
			r.log.Error().Err(err).
				Str("action", action).
				Int64("user_id", userID).
				Msg("audit write failed")
		}
	}()
}

// List returns the trail for the admin endpoint.
func (r *Recorder) List(ctx context.Context, filter repository.AuditLogFilter) ([]*entity.AuditLog, error) {
	return r.repo.List(ctx, filter)
}
