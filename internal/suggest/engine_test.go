package suggest

import (
	"testing"
	"time"

	"sweeper/internal/classify"
	"sweeper/internal/platform"
	"sweeper/internal/scan"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testProfile() platform.Profile {
	return platform.Profile{
		OS:            "linux",
		DownloadRoots: []string{"/home/alice/Downloads"},
		UserRoots:     []string{"/home/alice/Downloads", "/home/alice/Documents"},
		CacheSegments: [][]string{{".cache"}},
	}
}

func testEngine() *Engine {
	e := NewEngine(testProfile(), DefaultThresholds())
	e.now = func() time.Time { return testNow }
	return e
}

func classified(path string, size int64, ageDays int, cat classify.Category, safety classify.SafetyLevel) classify.Classified {
	return classify.Classified{
		Record: scan.Record{
			Path:    path,
			Size:    size,
			ModTime: testNow.Add(-time.Duration(ageDays) * 24 * time.Hour),
		},
		Category:     cat,
		Safety:       safety,
		CategoryName: cat.String(),
		SafetyName:   safety.String(),
	}
}

func findSuggestion(t *testing.T, sugs []Suggestion, label string) Suggestion {
	t.Helper()
	for _, s := range sugs {
		if s.Label == label {
			return s
		}
	}
	t.Fatalf("no suggestion labeled %q", label)
	return Suggestion{}
}

func TestSuggest_Groups(t *testing.T) {
	e := testEngine()

	recs := []classify.Classified{
		classified("/tmp/old.tmp", 1<<20, 10, classify.CategoryTemp, classify.SafetySafe),
		classified("/tmp/fresh.tmp", 1<<20, 2, classify.CategoryTemp, classify.SafetySafe),
		classified("/home/alice/.cache/pip/wheel.whl", 50<<20, 10, classify.CategoryCache, classify.SafetySafe),
		classified("/home/alice/Documents/db.bak", 5<<20, 45, classify.CategoryBackups, classify.SafetyUser),
		classified("/home/alice/Documents/recent.bak", 5<<20, 3, classify.CategoryBackups, classify.SafetyUser),
		classified("/home/alice/Downloads/movie.mp4", 600<<20, 2, classify.CategoryMedia, classify.SafetyUser),
		classified("/var/crash/app.crash", 2<<20, 1, classify.CategoryCrashDump, classify.SafetySafe),
		classified("/home/alice/Documents/film.mkv", 2<<30, 1, classify.CategoryMedia, classify.SafetyUser),
	}

	sugs := e.Suggest(recs)

	aged := findSuggestion(t, sugs, "Aged temp files")
	if len(aged.Records) != 1 || aged.Records[0].Record.Path != "/tmp/old.tmp" {
		t.Errorf("aged temp group = %+v, want only /tmp/old.tmp", aged.Records)
	}

	cache := findSuggestion(t, sugs, "Cache files")
	if len(cache.Records) != 1 {
		t.Errorf("cache group size = %d, want 1", len(cache.Records))
	}

	backups := findSuggestion(t, sugs, "Aged backups")
	if len(backups.Records) != 1 || backups.Records[0].Record.Path != "/home/alice/Documents/db.bak" {
		t.Errorf("aged backups group = %+v, want only db.bak", backups.Records)
	}

	dumps := findSuggestion(t, sugs, "Crash dumps")
	if len(dumps.Records) != 1 {
		t.Errorf("crash dumps group size = %d, want 1", len(dumps.Records))
	}

	media := findSuggestion(t, sugs, "Large media")
	if len(media.Records) != 1 || media.Records[0].Record.Path != "/home/alice/Documents/film.mkv" {
		t.Errorf("large media group = %+v, want only film.mkv", media.Records)
	}
}

func TestSuggest_DownloadsScenario(t *testing.T) {
	e := testEngine()

	// 600 MB movie in Downloads modified 2 days ago: large-downloads group,
	// not aged-temp, not large-media (first match wins and it is <1 GB anyway).
	movie := classified("/home/alice/Downloads/movie.mp4", 600<<20, 2, classify.CategoryMedia, classify.SafetyUser)
	sugs := e.Suggest([]classify.Classified{movie})

	if len(sugs) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(sugs))
	}
	if sugs[0].Label != "Large downloads" {
		t.Errorf("label = %q, want Large downloads", sugs[0].Label)
	}
}

func TestSuggest_FirstMatchWins(t *testing.T) {
	e := testEngine()

	// An aged temp file under Downloads that is also huge: only one group.
	r := classified("/home/alice/Downloads/build.tmp", 600<<20, 10, classify.CategoryTemp, classify.SafetyUser)
	sugs := e.Suggest([]classify.Classified{r})

	total := 0
	for _, s := range sugs {
		total += len(s.Records)
	}
	if total != 1 {
		t.Fatalf("record appears %d times across suggestions, want 1", total)
	}
	if sugs[0].Label != "Aged temp files" {
		t.Errorf("label = %q, want the first matching rule (Aged temp files)", sugs[0].Label)
	}
}

func TestSuggest_CriticalNeverSuggested(t *testing.T) {
	e := testEngine()

	recs := []classify.Classified{
		classified("/usr/lib/libc.so", 2<<20, 100, classify.CategorySystem, classify.SafetyCritical),
		classified("/tmp/locked.tmp", 1<<20, 30, classify.CategoryTemp, classify.SafetyCritical),
		classified("/tmp/old.tmp", 1<<20, 30, classify.CategoryTemp, classify.SafetySafe),
	}
	sugs := e.Suggest(recs)

	for _, s := range sugs {
		for _, m := range s.Records {
			if m.Safety == classify.SafetyCritical {
				t.Fatalf("critical record %s leaked into suggestion %q", m.Record.Path, s.Label)
			}
		}
	}
}

func TestSuggest_Ordering(t *testing.T) {
	e := testEngine()

	recs := []classify.Classified{
		// safe group, 1 MB total.
		classified("/tmp/old.tmp", 1<<20, 10, classify.CategoryTemp, classify.SafetySafe),
		// safe group, 200 MB total.
		classified("/home/alice/.cache/big.blob", 200<<20, 1, classify.CategoryCache, classify.SafetySafe),
		// user group, 2 GB total.
		classified("/home/alice/Documents/film.mkv", 2<<30, 1, classify.CategoryMedia, classify.SafetyUser),
	}
	sugs := e.Suggest(recs)

	if len(sugs) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(sugs))
	}
	// Safety ascending first, then size descending within the same level.
	if sugs[0].Label != "Cache files" {
		t.Errorf("first suggestion = %q, want the largest safe group", sugs[0].Label)
	}
	if sugs[1].Label != "Aged temp files" {
		t.Errorf("second suggestion = %q, want the smaller safe group", sugs[1].Label)
	}
	if sugs[2].Label != "Large media" {
		t.Errorf("last suggestion = %q, want the user-level group", sugs[2].Label)
	}
}

func TestSuggest_AggregateFields(t *testing.T) {
	e := testEngine()

	recs := []classify.Classified{
		classified("/home/alice/.cache/a", 10, 1, classify.CategoryCache, classify.SafetySafe),
		classified("/home/alice/.cache/b", 30, 1, classify.CategoryCache, classify.SafetyUser),
	}
	sugs := e.Suggest(recs)

	if len(sugs) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(sugs))
	}
	if sugs[0].TotalSize != 40 {
		t.Errorf("total size = %d, want 40", sugs[0].TotalSize)
	}
	if sugs[0].Safety != classify.SafetyUser {
		t.Errorf("dominant safety = %v, want user (max over members)", sugs[0].Safety)
	}
}

func TestSuggest_UnmatchedRecordOmitted(t *testing.T) {
	e := testEngine()

	recs := []classify.Classified{
		classified("/home/alice/Documents/notes.txt", 1<<10, 1, classify.CategoryDocuments, classify.SafetyUser),
	}
	if sugs := e.Suggest(recs); len(sugs) != 0 {
		t.Errorf("got %d suggestions, want none for an unmatched record", len(sugs))
	}
}

func TestLargeFiles(t *testing.T) {
	e := testEngine()

	recs := []classify.Classified{
		classified("/data/big.iso", 300<<20, 1, classify.CategoryUnknown, classify.SafetyUnknown),
		classified("/data/small.txt", 1<<20, 1, classify.CategoryDocuments, classify.SafetyUnknown),
		classified("/data/huge.vhd", 900<<20, 1, classify.CategoryVirtualDisk, classify.SafetyUnknown),
		classified("/usr/lib/big.so", 500<<20, 1, classify.CategorySystem, classify.SafetyCritical),
	}
	large := e.LargeFiles(recs)

	if len(large) != 2 {
		t.Fatalf("got %d large files, want 2", len(large))
	}
	if large[0].Record.Path != "/data/huge.vhd" {
		t.Errorf("large files must be sorted largest first, got %s", large[0].Record.Path)
	}
}
