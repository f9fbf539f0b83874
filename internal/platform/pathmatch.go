package platform

import "strings"

// Path matching is done on whole segments, never raw substrings. A
// substring test would flag /home/x/usrdata as protected because it
// contains "usr"; segment comparison does not.

// Normalize cleans a path for comparison: separators unified to "/",
// trailing separators dropped, case folded when the profile's filesystem
// is case-insensitive. The result is for matching only, never for I/O.
func (p Profile) Normalize(path string) string {
	s := strings.ReplaceAll(path, `\`, "/")
	if p.CaseInsensitive {
		s = strings.ToLower(s)
	}
	return strings.Join(splitSegments(s), "/")
}

// splitSegments splits a normalized path into its non-empty segments.
// A Windows drive letter ("c:") is an ordinary leading segment.
func splitSegments(s string) []string {
	parts := strings.Split(s, "/")
	segs := parts[:0]
	for _, part := range parts {
		if part != "" && part != "." {
			segs = append(segs, part)
		}
	}
	return segs
}

func (p Profile) segments(path string) []string {
	s := strings.ReplaceAll(path, `\`, "/")
	if p.CaseInsensitive {
		s = strings.ToLower(s)
	}
	return splitSegments(s)
}

// HasPathPrefix reports whether prefix's segments are a leading run of
// path's segments. "/usr" is a prefix of "/usr/lib/libc.so" but not of
// "/usrdata/file".
func (p Profile) HasPathPrefix(path, prefix string) bool {
	ps := p.segments(path)
	fs := p.segments(prefix)
	if len(fs) == 0 || len(fs) > len(ps) {
		return false
	}
	for i, seg := range fs {
		if ps[i] != seg {
			return false
		}
	}
	return true
}

// UnderAny reports whether path lies under any of the given prefixes.
func (p Profile) UnderAny(path string, prefixes []string) bool {
	for _, pre := range prefixes {
		if p.HasPathPrefix(path, pre) {
			return true
		}
	}
	return false
}

// IsProtected reports whether path lies under a protected prefix.
func (p Profile) IsProtected(path string) bool {
	return p.UnderAny(path, p.ProtectedPrefixes)
}

// UnderTempDir reports whether path lies under an OS temp directory.
func (p Profile) UnderTempDir(path string) bool {
	return p.UnderAny(path, p.TempDirs)
}

// UnderUserRoot reports whether path lies under a user content root.
func (p Profile) UnderUserRoot(path string) bool {
	return p.UnderAny(path, p.UserRoots)
}

// UnderDownloadRoot reports whether path lies under a Downloads root.
func (p Profile) UnderDownloadRoot(path string) bool {
	return p.UnderAny(path, p.DownloadRoots)
}

// hasSegmentRun reports whether run appears as consecutive whole segments
// anywhere in path.
func (p Profile) hasSegmentRun(path string, run []string) bool {
	segs := p.segments(path)
	folded := make([]string, len(run))
	for i, r := range run {
		if p.CaseInsensitive {
			folded[i] = strings.ToLower(r)
		} else {
			folded[i] = r
		}
	}
	if len(folded) == 0 || len(folded) > len(segs) {
		return false
	}
	for start := 0; start+len(folded) <= len(segs); start++ {
		match := true
		for i, seg := range folded {
			if segs[start+i] != seg {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// HasCacheSegments reports whether path contains any known regenerable
// directory run (e.g. ".cache", "AppData/Local/Temp", "pip/cache").
func (p Profile) HasCacheSegments(path string) bool {
	for _, run := range p.CacheSegments {
		if p.hasSegmentRun(path, run) {
			return true
		}
	}
	return false
}

// HasDumpExtension reports whether ext (lower-cased, no dot) is a crash
// dump extension on this platform.
func (p Profile) HasDumpExtension(ext string) bool {
	for _, d := range p.DumpExtensions {
		if d == ext {
			return true
		}
	}
	return false
}
