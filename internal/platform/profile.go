package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// Profile holds the static per-OS facts the classification engine needs:
// which path prefixes are untouchable, where temp and cache directories
// live, which extensions mark crash dumps, and whether a recoverable
// trash mechanism exists. One Profile is built at startup and passed by
// value into every call — there is no process-wide platform singleton.
type Profile struct {
	// OS is the runtime.GOOS value this profile was built for.
	OS string

	// CaseInsensitive enables case-folded path comparison (Windows, macOS).
	CaseInsensitive bool

	// ProtectedPrefixes are absolute path prefixes that must never be
	// deleted. Matching is segment-aware prefix comparison, never substring.
	ProtectedPrefixes []string

	// TempDirs are OS temp directory roots. Files under them classify safe.
	TempDirs []string

	// UserRoots are the user's content directories (Downloads, Documents,
	// Desktop, Pictures, Videos, Music). Files under them classify user.
	UserRoots []string

	// DownloadRoots distinguishes installers from plain executables and
	// feeds the large-downloads suggestion.
	DownloadRoots []string

	// CacheSegments are runs of consecutive path segments that identify a
	// regenerable location (package-manager caches, browser caches, crash
	// report folders). A run must match whole segments in order.
	CacheSegments [][]string

	// DumpExtensions are crash-dump file extensions for this OS,
	// lower-cased without dot.
	DumpExtensions []string

	// TrashAvailable marks whether a recoverable trash mechanism exists.
	TrashAvailable bool
}

// Detect builds the Profile for the current operating system.
func Detect() Profile {
	return newProfile()
}

// homeDir returns the user home directory, empty if undetectable.
func homeDir() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return h
}

// userContentRoots builds the standard user content directories under home.
// videos is "Videos" on Windows/Linux and "Movies" on macOS.
func userContentRoots(home, videos string) []string {
	if home == "" {
		return nil
	}
	names := []string{"Downloads", "Documents", "Desktop", "Pictures", videos, "Music"}
	roots := make([]string, 0, len(names))
	for _, n := range names {
		roots = append(roots, filepath.Join(home, n))
	}
	return roots
}

// IsAdmin reports whether the process runs with elevated privileges.
// The tool targets unprivileged use; callers only warn when this is true.
func (p Profile) IsAdmin() bool {
	return isAdmin()
}

// Concurrency returns the recommended walker pool size.
func Concurrency() int {
	n := runtime.NumCPU()
	if n < 2 {
		n = 2
	}
	return n
}
