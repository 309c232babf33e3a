package logging

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AuditEventType identifies a catalog mutation or lifecycle event.
type AuditEventType string

const (
	AuditBookAdd     AuditEventType = "book_add"
	AuditBookRemove  AuditEventType = "book_remove"
	AuditBookStatus  AuditEventType = "book_status"
	AuditCatalogLoad AuditEventType = "catalog_load"
)

// AuditEvent is one line of the append-only audit trail.
type AuditEvent struct {
	Timestamp  int64          `json:"ts"`
	EventType  AuditEventType `json:"event"`
	SessionID  string         `json:"session"`
	BookID     int            `json:"book_id,omitempty"`
	Target     string         `json:"target,omitempty"`
	Success    bool           `json:"success"`
	DurationMs int64          `json:"dur_ms"`
	Error      string         `json:"error,omitempty"`
}

var (
	auditMu   sync.Mutex
	auditFile *os.File
)

// InitAudit opens the audit trail for appending. Call once at startup;
// until then Audit is a silent no-op.
func InitAudit(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	auditMu.Lock()
	auditFile = f
	auditMu.Unlock()
	return nil
}

// CloseAudit flushes and closes the audit trail.
func CloseAudit() {
	auditMu.Lock()
	defer auditMu.Unlock()
	if auditFile != nil {
		_ = auditFile.Close()
		auditFile = nil
	}
}

// Audit appends one event to the trail. Failures are swallowed: the audit
// log must never break a catalog operation.
func Audit(eventType AuditEventType, bookID int, target string, start time.Time, opErr error) {
	auditMu.Lock()
	defer auditMu.Unlock()
	if auditFile == nil {
		return
	}

	ev := AuditEvent{
		Timestamp:  time.Now().Unix(),
		EventType:  eventType,
		SessionID:  sessionID,
		BookID:     bookID,
		Target:     target,
		Success:    opErr == nil,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if opErr != nil {
		ev.Error = opErr.Error()
	}

	line, err := json.Marshal(ev)
	if err != nil {
		return
	}
	line = append(line, '\n')
	_, _ = auditFile.Write(line)
}
