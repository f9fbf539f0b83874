//go:build windows

package platform

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// winDir returns the Windows directory (e.g., C:\Windows).
// Falls back to C:\Windows only if %WINDIR% is not set.
func winDir() string {
	if w := os.Getenv("WINDIR"); w != "" {
		return w
	}
	return `C:\Windows`
}

// systemDrive returns the system drive with backslash (e.g., C:\).
func systemDrive() string {
	if d := os.Getenv("SYSTEMDRIVE"); d != "" {
		return d + `\`
	}
	return `C:\`
}

func programFiles() string {
	if p := os.Getenv("PROGRAMFILES"); p != "" {
		return p
	}
	return `C:\Program Files`
}

func programFilesX86() string {
	if p := os.Getenv("PROGRAMFILES(X86)"); p != "" {
		return p
	}
	return `C:\Program Files (x86)`
}

func programData() string {
	if p := os.Getenv("PROGRAMDATA"); p != "" {
		return p
	}
	return `C:\ProgramData`
}

func newProfile() Profile {
	home := homeDir()
	w := winDir()
	sd := systemDrive()
	local := os.Getenv("LOCALAPPDATA")

	tempDirs := []string{
		os.Getenv("TEMP"),
		os.Getenv("TMP"),
		filepath.Join(local, "Temp"),
		filepath.Join(w, "Temp"),
	}
	var temps []string
	for _, d := range tempDirs {
		if d != "" {
			temps = append(temps, d)
		}
	}

	return Profile{
		OS:              "windows",
		CaseInsensitive: true,
		ProtectedPrefixes: []string{
			w,
			filepath.Join(sd, "Boot"),
			filepath.Join(sd, "EFI"),
			filepath.Join(sd, "Recovery"),
			filepath.Join(sd, "System Volume Information"),
			programFiles(),
			programFilesX86(),
			programData(),
		},
		TempDirs:      temps,
		UserRoots:     userContentRoots(home, "Videos"),
		DownloadRoots: downloadRoots(home),
		CacheSegments: [][]string{
			{"AppData", "Local", "Temp"},
			{"pip", "cache"},
			{"pip", "Cache"},
			{"npm-cache"},
			{".nuget", "packages"},
			{".gradle", "caches"},
			{".cargo", "registry", "cache"},
			{"go-build"},
			{"Cache"},
			{"Code Cache"},
			{"GPUCache"},
			{"CachedData"},
			{"CrashDumps"},
			{"Minidump"},
			{"WER", "ReportArchive"},
			{"WER", "ReportQueue"},
			{".cache"},
		},
		DumpExtensions: []string{"dmp", "mdmp", "hdmp"},
		TrashAvailable: true,
	}
}

func downloadRoots(home string) []string {
	if home == "" {
		return nil
	}
	return []string{filepath.Join(home, "Downloads")}
}

// isAdmin reports whether the process token is elevated.
func isAdmin() bool {
	var sid *windows.SID
	err := windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&sid,
	)
	if err != nil {
		return false
	}
	defer windows.FreeSid(sid)

	token := windows.Token(0)
	member, err := token.IsMember(sid)
	return err == nil && member
}
