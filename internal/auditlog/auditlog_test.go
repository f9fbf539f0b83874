package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRecordWritesJSONLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")

	l, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Record(Entry{
		Path:     "/home/alice/.cache/pip/wheel.whl",
		Size:     1024,
		Category: "cache",
		Safety:   "safe",
		Action:   "trash",
	})
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	line := string(data)
	for _, want := range []string{
		`"path":"/home/alice/.cache/pip/wheel.whl"`,
		`"size":1024`,
		`"category":"cache"`,
		`"safety":"safe"`,
		`"action":"trash"`,
		`"blocked":false`,
		`"time"`,
	} {
		if !strings.Contains(line, want) {
			t.Errorf("audit line missing %s\nline: %s", want, line)
		}
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Record(Entry{Path: "/x"})
	if err := l.Close(); err != nil {
		t.Errorf("Close on nil logger: %v", err)
	}
}
