package platform

import "testing"

func linuxProfile() Profile {
	return Profile{
		OS:                "linux",
		CaseInsensitive:   false,
		ProtectedPrefixes: []string{"/usr", "/etc", "/boot"},
		TempDirs:          []string{"/tmp"},
		UserRoots:         []string{"/home/alice/Downloads", "/home/alice/Documents"},
		DownloadRoots:     []string{"/home/alice/Downloads"},
		CacheSegments:     [][]string{{".cache"}, {"pip", "cache"}},
	}
}

func windowsProfile() Profile {
	return Profile{
		OS:                "windows",
		CaseInsensitive:   true,
		ProtectedPrefixes: []string{`C:\Windows`, `C:\Program Files`},
		TempDirs:          []string{`C:\Users\alice\AppData\Local\Temp`},
		UserRoots:         []string{`C:\Users\alice\Downloads`},
		DownloadRoots:     []string{`C:\Users\alice\Downloads`},
		CacheSegments:     [][]string{{"AppData", "Local", "Temp"}, {"Code Cache"}},
	}
}

func TestHasPathPrefix_SegmentNotSubstring(t *testing.T) {
	p := linuxProfile()

	cases := []struct {
		path, prefix string
		want         bool
	}{
		{"/usr/lib/libc.so", "/usr", true},
		{"/usr", "/usr", true},
		{"/usrdata/file.txt", "/usr", false},
		{"/home/alice/usr/notes.txt", "/usr", false},
		{"/etc/passwd", "/etc", true},
		{"/etcetera/x", "/etc", false},
	}
	for _, c := range cases {
		if got := p.HasPathPrefix(c.path, c.prefix); got != c.want {
			t.Errorf("HasPathPrefix(%q, %q) = %v, want %v", c.path, c.prefix, got, c.want)
		}
	}
}

func TestHasPathPrefix_WindowsCaseFolding(t *testing.T) {
	p := windowsProfile()

	if !p.HasPathPrefix(`c:\windows\system32\kernel32.dll`, `C:\Windows`) {
		t.Error("expected case-insensitive prefix match on Windows paths")
	}
	if p.HasPathPrefix(`C:\Windows2\file.txt`, `C:\Windows`) {
		t.Error("C:\\Windows must not match C:\\Windows2 (segment boundary)")
	}
	if !p.IsProtected(`C:\WINDOWS\Temp\x.tmp`) {
		t.Error("expected protected match regardless of case")
	}
}

func TestHasCacheSegments(t *testing.T) {
	lp := linuxProfile()

	if !lp.HasCacheSegments("/home/alice/.cache/pip/wheel.whl") {
		t.Error("expected .cache segment to match")
	}
	if lp.HasCacheSegments("/home/alice/my.cache.txt") {
		t.Error("segment match must not fire on a file name containing the token")
	}
	if !lp.HasCacheSegments("/home/alice/.local/pip/cache/pkg") {
		t.Error("expected multi-segment run pip/cache to match")
	}
	if lp.HasCacheSegments("/home/alice/pip/x/cache/pkg") {
		t.Error("pip/cache run must be consecutive segments")
	}

	wp := windowsProfile()
	if !wp.HasCacheSegments(`C:\Users\alice\AppData\Local\Temp\setup.tmp`) {
		t.Error("expected AppData\\Local\\Temp run to match")
	}
	if !wp.HasCacheSegments(`C:\Users\alice\AppData\Local\Chrome\code cache\js`) {
		t.Error("expected case-folded Code Cache segment to match")
	}
}

func TestNormalize(t *testing.T) {
	wp := windowsProfile()
	a := wp.Normalize(`C:\Users\Alice\File.TXT`)
	b := wp.Normalize(`c:/users/alice/file.txt`)
	if a != b {
		t.Errorf("normalized forms differ: %q vs %q", a, b)
	}

	lp := linuxProfile()
	if lp.Normalize("/home/Alice/x") == lp.Normalize("/home/alice/x") {
		t.Error("case must be preserved on case-sensitive filesystems")
	}
}

func TestUnderRoots(t *testing.T) {
	p := linuxProfile()

	if !p.UnderDownloadRoot("/home/alice/Downloads/movie.mp4") {
		t.Error("expected Downloads membership")
	}
	if p.UnderDownloadRoot("/home/alice/DownloadsOld/movie.mp4") {
		t.Error("DownloadsOld must not match Downloads")
	}
	if !p.UnderUserRoot("/home/alice/Documents/notes.txt") {
		t.Error("expected user root membership")
	}
}
