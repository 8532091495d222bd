package entity

import "time"

// AuditLog is one recorded mutation. Writes are fire-and-forget; a failed
// audit insert never fails the operation it describes.
type AuditLog struct {
	ID        string // uuid
	UserID    int64
	Action    string
	TableName string
	RecordID  int64
	Details   map[string]any
	IPAddress string
	CreatedAt time.Time
}
