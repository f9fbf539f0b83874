package scan

import (
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Record is an immutable snapshot of one filesystem entry taken at scan
// time. It carries no live handle — the path is re-resolved, not trusted,
// when a deletion is authorized.
type Record struct {
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	Ext        string    `json:"ext"`
	ModTime    time.Time `json:"mod_time"`
	AccessTime time.Time `json:"access_time"`
	CreateTime time.Time `json:"create_time,omitempty"`
	MIME       string    `json:"mime,omitempty"`

	// InUse marks the file as held open by a running process at scan time.
	InUse bool `json:"in_use,omitempty"`

	// Broken marks a symlink whose target no longer resolves. Size is 0.
	Broken bool `json:"broken,omitempty"`
}

// Age returns how long ago the record was last modified.
func (r Record) Age(now time.Time) time.Duration {
	return now.Sub(r.ModTime)
}

// newRecord builds a Record from a stat result. path must be absolute.
func newRecord(path string, info os.FileInfo) Record {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	rec := Record{
		Path:    filepath.Clean(path),
		Size:    info.Size(),
		Ext:     ext,
		ModTime: info.ModTime(),
	}
	if ext != "" {
		rec.MIME = mime.TypeByExtension("." + ext)
	}

	atime, ctime := statTimes(info)
	rec.AccessTime = atime
	rec.CreateTime = ctime
	if rec.AccessTime.IsZero() {
		rec.AccessTime = rec.ModTime
	}
	return rec
}

// brokenRecord builds the placeholder Record for a symlink whose target
// cannot be resolved.
func brokenRecord(path string) Record {
	return Record{
		Path:   filepath.Clean(path),
		Ext:    strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")),
		Broken: true,
	}
}
