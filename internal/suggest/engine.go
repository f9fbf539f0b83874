// Package suggest aggregates classified records into ranked cleanup
// groups. Grouping is by fixed predicates evaluated in order — the same
// first-match-wins discipline as the classifier — so a file lands in at
// most one suggestion no matter how many predicates it satisfies.
package suggest

import (
	"sort"
	"time"

	"sweeper/internal/classify"
	"sweeper/internal/platform"
)

// Thresholds are the tunable cut-offs for the suggestion rules. They are
// configuration defaults, not invariants.
type Thresholds struct {
	TempAge       time.Duration `json:"temp_age"`
	BackupAge     time.Duration `json:"backup_age"`
	LargeDownload int64         `json:"large_download"`
	LargeMedia    int64         `json:"large_media"`
	LargeFile     int64         `json:"large_file"`
}

// DefaultThresholds returns the stock cut-offs: 7-day temp files, 30-day
// backups, 500 MB downloads, 1 GB media, 100 MB large-file report.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TempAge:       7 * 24 * time.Hour,
		BackupAge:     30 * 24 * time.Hour,
		LargeDownload: 500 << 20,
		LargeMedia:    1 << 30,
		LargeFile:     100 << 20,
	}
}

// Suggestion is one named, ranked cleanup group.
type Suggestion struct {
	Label     string                `json:"label"`
	Rationale string                `json:"rationale"`
	Records   []classify.Classified `json:"records"`
	TotalSize int64                 `json:"total_size"`

	// Safety is the dominant (most cautious) level among members.
	Safety     classify.SafetyLevel `json:"-"`
	SafetyName string               `json:"safety"`
}

// Engine builds suggestions from a classified record set.
type Engine struct {
	prof platform.Profile
	th   Thresholds

	// now is swappable for tests.
	now func() time.Time
}

// NewEngine creates an Engine with the given profile and thresholds.
func NewEngine(prof platform.Profile, th Thresholds) *Engine {
	return &Engine{prof: prof, th: th, now: time.Now}
}

// groupRule is one suggestion predicate. Rules are evaluated in order.
type groupRule struct {
	label     string
	rationale string
	match     func(e *Engine, c classify.Classified, now time.Time) bool
}

var groupRules = []groupRule{
	{
		label:     "Aged temp files",
		rationale: "temp file untouched for a week",
		match: func(e *Engine, c classify.Classified, now time.Time) bool {
			return c.Category == classify.CategoryTemp && c.Record.Age(now) >= e.th.TempAge
		},
	},
	{
		label:     "Cache files",
		rationale: "cache, regenerable",
		match: func(e *Engine, c classify.Classified, _ time.Time) bool {
			return c.Category == classify.CategoryCache
		},
	},
	{
		label:     "Aged backups",
		rationale: "backup copy older than a month",
		match: func(e *Engine, c classify.Classified, now time.Time) bool {
			return c.Category == classify.CategoryBackups && c.Record.Age(now) >= e.th.BackupAge
		},
	},
	{
		label:     "Large downloads",
		rationale: "large file sitting in Downloads",
		match: func(e *Engine, c classify.Classified, _ time.Time) bool {
			return e.prof.UnderDownloadRoot(c.Record.Path) && c.Record.Size >= e.th.LargeDownload
		},
	},
	{
		label:     "Crash dumps",
		rationale: "crash dump, diagnostic leftover",
		match: func(_ *Engine, c classify.Classified, _ time.Time) bool {
			return c.Category == classify.CategoryCrashDump
		},
	},
	{
		label:     "Large media",
		rationale: "media file over the size threshold",
		match: func(e *Engine, c classify.Classified, _ time.Time) bool {
			return c.Category == classify.CategoryMedia && c.Record.Size >= e.th.LargeMedia
		},
	},
}

// Suggest builds the ranked suggestion list. Critical records are never
// suggested; a record matching several predicates appears only under the
// first. Groups are ordered safest-and-largest first so suggestion #1 is
// always the cheapest-risk, highest-value action.
func (e *Engine) Suggest(records []classify.Classified) []Suggestion {
	now := e.now()
	groups := make([][]classify.Classified, len(groupRules))

	for _, c := range records {
		if c.Safety == classify.SafetyCritical {
			continue
		}
		for i, r := range groupRules {
			if r.match(e, c, now) {
				groups[i] = append(groups[i], c)
				break
			}
		}
	}

	var out []Suggestion
	for i, members := range groups {
		if len(members) == 0 {
			continue
		}
		s := Suggestion{
			Label:     groupRules[i].label,
			Rationale: groupRules[i].rationale,
			Records:   members,
		}
		for _, m := range members {
			s.TotalSize += m.Record.Size
			if m.Safety > s.Safety {
				s.Safety = m.Safety
			}
		}
		s.SafetyName = s.Safety.String()
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Safety != out[j].Safety {
			return out[i].Safety < out[j].Safety
		}
		return out[i].TotalSize > out[j].TotalSize
	})
	return out
}

// LargeFiles returns the records at or above the large-file threshold,
// largest first. Critical records are excluded like everywhere else.
func (e *Engine) LargeFiles(records []classify.Classified) []classify.Classified {
	var out []classify.Classified
	for _, c := range records {
		if c.Safety == classify.SafetyCritical {
			continue
		}
		if c.Record.Size >= e.th.LargeFile {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Record.Size > out[j].Record.Size
	})
	return out
}
