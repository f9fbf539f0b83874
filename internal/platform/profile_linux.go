//go:build linux

package platform

import (
	"os"
	"path/filepath"
)

func newProfile() Profile {
	home := homeDir()

	temps := []string{os.TempDir(), "/tmp", "/var/tmp"}
	if home != "" {
		// systemd-style per-user runtime dir, if present.
		if rt := os.Getenv("XDG_RUNTIME_DIR"); rt != "" {
			temps = append(temps, rt)
		}
	}

	return Profile{
		OS:              "linux",
		CaseInsensitive: false,
		ProtectedPrefixes: []string{
			"/usr", "/bin", "/sbin", "/lib", "/lib32", "/lib64",
			"/etc", "/boot", "/proc", "/sys", "/dev", "/run",
			"/snap", "/var/lib",
		},
		TempDirs:      dedupe(temps),
		UserRoots:     userContentRoots(home, "Videos"),
		DownloadRoots: downloadRoots(home),
		CacheSegments: [][]string{
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
			{".thumbnails"},
			{"crash"},
			{"core-dumps"},
		},
		DumpExtensions: []string{"core", "crash", "dmp"},
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
