// Package trash moves files to the OS recoverable-delete location.
// Every operation is per-record: one failure never aborts the batch.
package trash

import (
	"context"
	"errors"
	"os"

	"sweeper/internal/auditlog"
	"sweeper/internal/plan"
)

// ErrUnavailable means this platform has no usable trash mechanism.
// Callers degrade to an explicitly confirmed permanent delete.
var ErrUnavailable = errors.New("trash is not available on this platform")

// Result is the per-record outcome of an executed plan.
type Result struct {
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	Permanent bool   `json:"permanent"`
	Err       error  `json:"-"`
	ErrText   string `json:"error,omitempty"`
}

// Available reports whether a trash mechanism exists on this platform.
func Available() bool {
	return available()
}

// Move sends one file to the trash.
func Move(path string) error {
	return moveToTrash(path)
}

// Delete permanently removes one file.
func Delete(path string) error {
	return os.Remove(path)
}

// Execute runs a deletion plan. With permanent false each record is
// moved to the trash; true removes it outright. Every record is audited,
// including failures and overridden (blocked) records, so the log shows
// exactly what happened and under which safety level.
func Execute(ctx context.Context, p *plan.Plan, permanent bool, log *auditlog.Logger) []Result {
	if !permanent && !Available() {
		// The caller should have degraded already; refuse rather than
		// silently deleting.
		results := make([]Result, 0, len(p.Records))
		for _, r := range p.Records {
			results = append(results, Result{
				Path:    r.Classified.Record.Path,
				Size:    r.Classified.Record.Size,
				Err:     ErrUnavailable,
				ErrText: ErrUnavailable.Error(),
			})
		}
		return results
	}

	action := "trash"
	if permanent {
		action = "delete"
	}

	results := make([]Result, 0, len(p.Records))
	for _, r := range p.Records {
		if ctx.Err() != nil {
			break
		}

		rec := r.Classified.Record
		res := Result{Path: rec.Path, Size: rec.Size, Permanent: permanent}

		var err error
		if permanent {
			err = Delete(rec.Path)
		} else {
			err = Move(rec.Path)
		}
		if err != nil {
			res.Err = err
			res.ErrText = err.Error()
		}

		if log != nil {
			log.Record(auditlog.Entry{
				Path:     rec.Path,
				Size:     rec.Size,
				Category: r.Classified.CategoryName,
				Safety:   r.Classified.SafetyName,
				Action:   action,
				Blocked:  r.Blocked,
				Failed:   err != nil,
			})
		}
		results = append(results, res)
	}
	return results
}

// Freed sums the sizes of successfully removed records.
func Freed(results []Result) int64 {
	var total int64
	for _, r := range results {
		if r.Err == nil {
			total += r.Size
		}
	}
	return total
}
