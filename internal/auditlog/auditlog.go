// Package auditlog appends one structured line per deletion attempt.
// The log is write-only for the tool; nothing reads it back.
package auditlog

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Entry is one audit record.
type Entry struct {
	Path     string
	Size     int64
	Category string
	Safety   string
	Action   string // "trash" or "delete"
	Blocked  bool   // critical record admitted via unsafe override
	Failed   bool
}

// Logger writes JSON-lines audit entries to a rotating file.
type Logger struct {
	log    *slog.Logger
	writer *lumberjack.Logger
}

// DefaultPath returns the audit log location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "sweeper-audit.log")
	}
	return filepath.Join(dir, "sweeper", "audit.log")
}

// New opens (creating if needed) the audit log at path.
func New(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     365, // keep a year of audit history
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &Logger{log: slog.New(handler), writer: w}, nil
}

// Record appends one entry. Never fails from the caller's perspective.
func (l *Logger) Record(e Entry) {
	if l == nil {
		return
	}
	l.log.Info("deletion",
		slog.String("path", e.Path),
		slog.Int64("size", e.Size),
		slog.String("category", e.Category),
		slog.String("safety", e.Safety),
		slog.String("action", e.Action),
		slog.Bool("blocked", e.Blocked),
		slog.Bool("failed", e.Failed),
	)
}

// Close flushes and closes the underlying file.
func (l *Logger) Close() error {
	if l == nil || l.writer == nil {
		return nil
	}
	return l.writer.Close()
}
