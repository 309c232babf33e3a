package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAuditTrail(t *testing.T) {
	auditPath := filepath.Join(t.TempDir(), "audit.jsonl")

	if err := InitAudit(auditPath); err != nil {
		t.Fatalf("InitAudit failed: %v", err)
	}

	start := time.Now()
	Audit(AuditBookAdd, 7, "Dune", start, nil)
	Audit(AuditBookRemove, 99, "", start, errors.New("book not found"))
	CloseAudit()

	content, err := os.ReadFile(auditPath)
	if err != nil {
		t.Fatalf("failed to read audit trail: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 audit lines, got %d:\n%s", len(lines), content)
	}

	var first, second AuditEvent
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first audit line is not valid JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("second audit line is not valid JSON: %v", err)
	}

	if first.EventType != AuditBookAdd || !first.Success || first.BookID != 7 || first.Target != "Dune" {
		t.Errorf("unexpected first event: %+v", first)
	}
	if first.SessionID != SessionID() {
		t.Errorf("first event session = %q, want %q", first.SessionID, SessionID())
	}
	if second.EventType != AuditBookRemove || second.Success || second.Error != "book not found" {
		t.Errorf("unexpected second event: %+v", second)
	}
}

func TestAuditTrail_AppendsAcrossInits(t *testing.T) {
	auditPath := filepath.Join(t.TempDir(), "audit.jsonl")

	if err := InitAudit(auditPath); err != nil {
		t.Fatalf("InitAudit failed: %v", err)
	}
	Audit(AuditCatalogLoad, 0, "library.json", time.Now(), nil)
	CloseAudit()

	if err := InitAudit(auditPath); err != nil {
		t.Fatalf("second InitAudit failed: %v", err)
	}
	Audit(AuditCatalogLoad, 0, "library.json", time.Now(), nil)
	CloseAudit()

	content, err := os.ReadFile(auditPath)
	if err != nil {
		t.Fatalf("failed to read audit trail: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 lines after two sessions, got %d", len(lines))
	}
}

func TestAudit_WithoutInitIsNoop(t *testing.T) {
	CloseAudit()
	// Must not panic or create anything.
	Audit(AuditBookStatus, 3, "", time.Now(), nil)
}
