package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
)

// Walker performs a parallel recursive walk of one or more root
// directories and emits one Record per regular file. Per-entry failures
// (permission denied, vanished files) are accumulated as warnings and
// never abort the walk.
type Walker struct {
	sem     chan struct{}
	exclude map[string]bool

	// OpenLookup, when set, marks records held open by a running process.
	// It is consulted once per record with the raw cleaned path.
	OpenLookup func(path string) bool

	mu       sync.Mutex
	warnings []string
	records  []Record
	seen     map[string]bool

	scannedCount atomic.Int64
}

// NewWalker creates a walker with bounded concurrency.
// exclude is a list of directory names (case-insensitive) to skip.
func NewWalker(maxConcurrency int, exclude []string) *Walker {
	if maxConcurrency <= 0 {
		maxConcurrency = 8
	}
	excMap := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excMap[strings.ToLower(e)] = true
	}
	return &Walker{
		sem:     make(chan struct{}, maxConcurrency),
		exclude: excMap,
		seen:    map[string]bool{},
	}
}

// Warnings returns the warnings accumulated so far.
func (w *Walker) Warnings() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.warnings...)
}

// Scanned returns the number of entries visited so far.
func (w *Walker) Scanned() int64 {
	return w.scannedCount.Load()
}

func (w *Walker) addWarning(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.warnings) < 500 {
		w.warnings = append(w.warnings, msg)
	}
}

// Walk scans the given roots and returns the collected records. Roots
// that overlap are deduplicated by path, so a file is recorded at most
// once per pass. Cancelling ctx stops the walk between entries; records
// gathered up to that point are returned alongside ctx.Err().
func (w *Walker) Walk(ctx context.Context, roots []string) ([]Record, error) {
	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return w.takeRecords(), err
		}

		root = filepath.Clean(root)
		info, err := os.Lstat(root)
		if err != nil {
			w.addWarning("cannot stat " + root + ": " + err.Error())
			continue
		}
		if !info.IsDir() {
			w.emit(root, info)
			continue
		}
		w.walkDir(ctx, root)
	}
	return w.takeRecords(), ctx.Err()
}

// walkDir recursively scans a directory, holding the semaphore only
// during the ReadDir I/O to prevent deadlocks from nested goroutine
// semaphore acquisition.
func (w *Walker) walkDir(ctx context.Context, dir string) {
	select {
	case w.sem <- struct{}{}:
	case <-ctx.Done():
		return
	}
	entries, err := os.ReadDir(dir)
	<-w.sem

	if err != nil {
		w.addWarning("cannot read " + dir + ": " + err.Error())
		return
	}

	var wg sync.WaitGroup

	for _, e := range entries {
		if ctx.Err() != nil {
			break
		}

		childPath := filepath.Join(dir, e.Name())
		w.scannedCount.Add(1)

		if e.IsDir() {
			if w.exclude[strings.ToLower(e.Name())] {
				continue
			}
			wg.Add(1)
			go func(d string) {
				defer wg.Done()
				w.walkDir(ctx, d)
			}(childPath)
			continue
		}

		// Symlinks are resolved to their target's metadata but never
		// followed into — a symlinked directory is not descended.
		if e.Type()&os.ModeSymlink != 0 {
			info, statErr := os.Stat(childPath)
			if statErr != nil {
				w.record(brokenRecord(childPath))
				continue
			}
			if info.IsDir() {
				continue
			}
			w.emit(childPath, info)
			continue
		}

		info, err := e.Info()
		if err != nil {
			// Permission denied or vanished between ReadDir and stat.
			w.addWarning("cannot stat " + childPath + ": " + err.Error())
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		w.emit(childPath, info)
	}

	wg.Wait()
}

func (w *Walker) emit(path string, info os.FileInfo) {
	rec := newRecord(path, info)
	if w.OpenLookup != nil && w.OpenLookup(rec.Path) {
		rec.InUse = true
	}
	w.record(rec)
}

func (w *Walker) record(rec Record) {
	key := rec.Path
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.seen[key] {
		return
	}
	w.seen[key] = true
	w.records = append(w.records, rec)
}

func (w *Walker) takeRecords() []Record {
	w.mu.Lock()
	defer w.mu.Unlock()
	recs := w.records
	w.records = nil
	return recs
}
