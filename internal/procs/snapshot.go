// Package procs captures which files are held open by running system
// processes. The snapshot is taken once per scan and treated as a fixed
// input for the whole pass; authorization takes a fresh one.
package procs

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/process"

	"sweeper/internal/platform"
)

// Snapshot is a point-in-time set of file paths held open by processes
// whose executable resides under a protected prefix. Restricting to
// system processes keeps a user's own editor from blocking cleanup of
// its scratch files while still protecting what the OS is touching.
type Snapshot struct {
	open  map[string]struct{}
	prof  platform.Profile
	taken time.Time
}

// Capture enumerates running processes and collects the open-file set.
// Per-process failures (permission denied, processes exiting mid-scan)
// are skipped; an empty snapshot is a valid result on platforms where
// process inspection is unavailable.
func Capture(ctx context.Context, prof platform.Profile) *Snapshot {
	snap := &Snapshot{
		open:  map[string]struct{}{},
		prof:  prof,
		taken: time.Now(),
	}

	procList, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return snap
	}

	for _, p := range procList {
		if ctx.Err() != nil {
			break
		}

		exe, err := p.ExeWithContext(ctx)
		if err != nil || exe == "" {
			continue
		}
		// Only processes running out of protected locations contribute.
		if !prof.IsProtected(exe) {
			continue
		}

		files, err := p.OpenFilesWithContext(ctx)
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.Path == "" {
				continue
			}
			snap.open[prof.Normalize(f.Path)] = struct{}{}
		}
	}

	return snap
}

// IsOpen reports whether path is in the snapshot. Safe on a nil receiver.
func (s *Snapshot) IsOpen(path string) bool {
	if s == nil || len(s.open) == 0 {
		return false
	}
	_, ok := s.open[s.prof.Normalize(path)]
	return ok
}

// Len returns the number of distinct open paths captured.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.open)
}

// Taken returns when the snapshot was captured.
func (s *Snapshot) Taken() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.taken
}
