package scan

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWalk_CollectsRecords(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "movie.MP4"), 128)
	writeFile(t, filepath.Join(dir, "sub", "notes.txt"), 16)
	writeFile(t, filepath.Join(dir, "sub", "deep", "image.png"), 32)

	w := NewWalker(4, nil)
	recs, err := w.Walk(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}

	byPath := map[string]Record{}
	for _, r := range recs {
		byPath[r.Path] = r
	}

	movie, ok := byPath[filepath.Join(dir, "movie.MP4")]
	if !ok {
		t.Fatal("movie.MP4 not recorded")
	}
	if movie.Ext != "mp4" {
		t.Errorf("extension = %q, want lower-cased %q", movie.Ext, "mp4")
	}
	if movie.Size != 128 {
		t.Errorf("size = %d, want 128", movie.Size)
	}
	if movie.ModTime.IsZero() {
		t.Error("mod time must be set")
	}
	if movie.MIME == "" {
		t.Error("expected a MIME guess for .mp4")
	}
}

func TestWalk_OverlappingRootsDeduplicate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sub", "a.txt"), 8)

	w := NewWalker(2, nil)
	recs, err := w.Walk(context.Background(), []string{dir, filepath.Join(dir, "sub")})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1 (deduplicated)", len(recs))
	}
}

func TestWalk_ExcludedDirSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.txt"), 8)
	writeFile(t, filepath.Join(dir, "node_modules", "dep.js"), 8)

	w := NewWalker(2, []string{"node_modules"})
	recs, err := w.Walk(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if filepath.Base(recs[0].Path) != "keep.txt" {
		t.Errorf("unexpected record %q", recs[0].Path)
	}
}

func TestWalk_BrokenSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs privileges on Windows")
	}
	dir := t.TempDir()
	link := filepath.Join(dir, "gone.txt")
	if err := os.Symlink(filepath.Join(dir, "missing-target"), link); err != nil {
		t.Fatal(err)
	}

	w := NewWalker(2, nil)
	recs, err := w.Walk(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	r := recs[0]
	if !r.Broken {
		t.Error("broken symlink must be flagged")
	}
	if r.Size != 0 {
		t.Errorf("broken symlink size = %d, want 0", r.Size)
	}
}

func TestWalk_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), 8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWalker(2, nil)
	_, err := w.Walk(ctx, []string{dir})
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestWalk_OpenLookupMarksInUse(t *testing.T) {
	dir := t.TempDir()
	locked := filepath.Join(dir, "locked.log")
	writeFile(t, locked, 8)
	writeFile(t, filepath.Join(dir, "free.log"), 8)

	w := NewWalker(2, nil)
	w.OpenLookup = func(p string) bool { return p == locked }

	recs, err := w.Walk(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	var sawLocked, sawFree bool
	for _, r := range recs {
		switch filepath.Base(r.Path) {
		case "locked.log":
			sawLocked = true
			if !r.InUse {
				t.Error("locked.log must be marked in use")
			}
		case "free.log":
			sawFree = true
			if r.InUse {
				t.Error("free.log must not be marked in use")
			}
		}
	}
	if !sawLocked || !sawFree {
		t.Fatal("expected both records")
	}
}

func TestRecordAge(t *testing.T) {
	now := time.Now()
	r := Record{ModTime: now.Add(-48 * time.Hour)}
	if got := r.Age(now); got != 48*time.Hour {
		t.Errorf("Age = %v, want 48h", got)
	}
}
