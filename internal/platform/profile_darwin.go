//go:build darwin

package platform

import (
	"os"
	"path/filepath"
)

func newProfile() Profile {
	home := homeDir()

	temps := []string{os.TempDir(), "/tmp", "/private/tmp", "/private/var/tmp"}

	return Profile{
		OS:              "darwin",
		CaseInsensitive: true,
		ProtectedPrefixes: []string{
			"/System", "/Library", "/usr", "/bin", "/sbin",
			"/private/etc", "/private/var/db", "/Applications",
			"/cores",
		},
		TempDirs:      dedupe(temps),
		UserRoots:     userContentRoots(home, "Movies"),
		DownloadRoots: downloadRoots(home),
		CacheSegments: [][]string{
			{"Library", "Caches"},
			{".cache"},
			{"pip", "cache"},
			{".npm", "_cacache"},
			{"npm-cache"},
			{".gradle", "caches"},
			{".cargo", "registry", "cache"},
			{"go-build"},
			{"Cache"},
			{"Code Cache"},
			{"GPUCache"},
			{"DiagnosticReports"},
			{"CrashReporter"},
		},
		DumpExtensions: []string{"crash", "ips", "panic", "core"},
		TrashAvailable: true,
	}
}

func downloadRoots(home string) []string {
	if home == "" {
		return nil
	}
	return []string{filepath.Join(home, "Downloads")}
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	var out []string
	for _, p := range paths {
		c := filepath.Clean(p)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
