// Package plan turns approved candidates into a validated deletion plan.
// Authorization is the TOCTOU boundary: everything the scan learned is
// re-checked against the live filesystem and a fresh process snapshot
// before anything is handed to the executor.
package plan

import (
	"context"
	"fmt"
	"os"
	"strings"

	"sweeper/internal/classify"
	"sweeper/internal/platform"
)

// Record is one plan entry. Blocked marks a critical record that was
// admitted only because the caller supplied the unsafe override; the
// audit log records the override alongside the deletion.
type Record struct {
	classify.Classified
	Blocked bool `json:"blocked"`
}

// Plan is the ordered set of records approved for deletion.
type Plan struct {
	Records []Record `json:"records"`

	// Stale lists candidate paths that no longer existed at authorization
	// time. Dropping them is not an error to the caller.
	Stale []string `json:"stale,omitempty"`
}

// TotalSize sums the sizes of all planned records.
func (p *Plan) TotalSize() int64 {
	var total int64
	for _, r := range p.Records {
		total += r.Record.Size
	}
	return total
}

// SafetyViolation reports critical candidates requested without the
// override flag. The violation blocks only those records: Plan carries
// the admissible remainder so the caller can still proceed with it.
type SafetyViolation struct {
	Paths []string
	Plan  *Plan
}

func (e *SafetyViolation) Error() string {
	return fmt.Sprintf("refusing to delete %d critical file(s) without override: %s",
		len(e.Paths), strings.Join(e.Paths, ", "))
}

// Authorize re-validates every candidate and builds the deletion plan.
//
// Each candidate is re-stat'ed (vanished files are dropped as stale) and
// the protected-path and active-use rules are re-run against the fresh
// process snapshot — a file may have been opened, or started being
// written to, since it was scanned. Candidates that are critical now
// fail with SafetyViolation unless allowCriticalOverride is set, in
// which case they enter the plan flagged Blocked.
func Authorize(ctx context.Context, candidates []classify.Classified, allowCriticalOverride bool, prof platform.Profile, open classify.OpenSet) (*Plan, error) {
	p := &Plan{}
	var violations []string

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return p, err
		}

		info, err := os.Lstat(c.Record.Path)
		if err != nil {
			// Deleted or made unreachable since the scan.
			p.Stale = append(p.Stale, c.Record.Path)
			continue
		}

		rec := c.Record
		rec.Size = info.Size()
		rec.ModTime = info.ModTime()

		critical := c.Safety == classify.SafetyCritical ||
			prof.IsProtected(rec.Path) ||
			rec.InUse ||
			(open != nil && open.IsOpen(rec.Path))

		if critical && !allowCriticalOverride {
			violations = append(violations, rec.Path)
			continue
		}

		entry := Record{Classified: c}
		entry.Classified.Record = rec
		if critical {
			entry.Blocked = true
			entry.Classified.Safety = classify.SafetyCritical
			entry.Classified.SafetyName = classify.SafetyCritical.String()
		}
		p.Records = append(p.Records, entry)
	}

	if len(violations) > 0 {
		return p, &SafetyViolation{Paths: violations, Plan: p}
	}
	return p, nil
}
