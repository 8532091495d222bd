package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-ledger-api/internal/application/audit"
	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/repository"
	"github.com/jhoicas/asset-ledger-api/pkg/logger"
)

type captureAuditRepo struct {
	created chan *entity.AuditLog
}

func (c *captureAuditRepo) Create(_ context.Context, l *entity.AuditLog) error {
	c.created <- l
	return nil
}

func (c *captureAuditRepo) List(_ context.Context, _ repository.AuditLogFilter) ([]*entity.AuditLog, error) {
	return nil, nil
}

func TestRecord_WritesEntryAsynchronously(t *testing.T) {
	repo := &captureAuditRepo{created: make(chan *entity.AuditLog, 1)}
	rec := audit.NewRecorder(repo, logger.New(logger.Config{Env: "test", Level: "error"}))

	rec.Record(7, "CREATE_PURCHASE", "purchases", 42, map[string]any{"quantity": int64(10)}, "10.0.0.1")

	select {
	case entry := <-repo.created:
		require.NotEmpty(t, entry.ID)
		assert.Equal(t, int64(7), entry.UserID)
		assert.Equal(t, "CREATE_PURCHASE", entry.Action)
		assert.Equal(t, "purchases", entry.TableName)
		assert.Equal(t, int64(42), entry.RecordID)
		assert.Equal(t, "10.0.0.1", entry.IPAddress)
	case <-time.After(2 * time.Second):
		t.Fatal("audit entry was never written")
	}
}
