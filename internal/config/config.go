// Package config loads the static options struct the engine consumes.
// A missing config file is not an error: defaults apply, overridable
// from the file and from SWEEPER_* environment variables.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"sweeper/internal/auditlog"
	"sweeper/internal/platform"
	"sweeper/internal/suggest"
)

// Options is the fully resolved configuration.
type Options struct {
	// Thresholds, raw units as written in the config file.
	TempAgeDays     int
	BackupAgeDays   int
	LargeDownloadMB int64
	LargeMediaMB    int64
	LargeFileMB     int64

	// Scan path toggles, mirroring the user content roots.
	IncludeProfile   bool
	IncludeDownloads bool
	IncludeDocuments bool
	IncludeDesktop   bool
	IncludePictures  bool
	IncludeVideos    bool
	IncludeMusic     bool
	IncludeTemp      bool
	CustomRoots      []string

	Exclude     []string
	Concurrency int

	// PermanentDelete skips the trash and removes files outright.
	PermanentDelete bool

	AuditLogPath string
}

// Thresholds converts the raw option values into engine thresholds.
func (o Options) Thresholds() suggest.Thresholds {
	return suggest.Thresholds{
		TempAge:       time.Duration(o.TempAgeDays) * 24 * time.Hour,
		BackupAge:     time.Duration(o.BackupAgeDays) * 24 * time.Hour,
		LargeDownload: o.LargeDownloadMB << 20,
		LargeMedia:    o.LargeMediaMB << 20,
		LargeFile:     o.LargeFileMB << 20,
	}
}

// ScanRoots resolves the enabled scan roots against a profile, dropping
// paths that do not exist and deduplicating overlaps.
func (o Options) ScanRoots(prof platform.Profile) []string {
	home, _ := os.UserHomeDir()

	var roots []string
	if o.IncludeProfile && home != "" {
		roots = append(roots, home)
	}

	toggle := map[string]bool{
		"downloads": o.IncludeDownloads,
		"documents": o.IncludeDocuments,
		"desktop":   o.IncludeDesktop,
		"pictures":  o.IncludePictures,
		"videos":    o.IncludeVideos,
		"movies":    o.IncludeVideos,
		"music":     o.IncludeMusic,
	}
	for _, r := range prof.UserRoots {
		if toggle[strings.ToLower(filepath.Base(r))] {
			roots = append(roots, r)
		}
	}

	if o.IncludeTemp {
		roots = append(roots, prof.TempDirs...)
	}
	roots = append(roots, o.CustomRoots...)

	seen := make(map[string]bool, len(roots))
	var out []string
	for _, r := range roots {
		c := filepath.Clean(r)
		key := prof.Normalize(c)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if info, err := os.Stat(c); err != nil || !info.IsDir() {
			continue
		}
		out = append(out, c)
	}
	return out
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("thresholds.temp_age_days", 7)
	v.SetDefault("thresholds.backup_age_days", 30)
	v.SetDefault("thresholds.large_download_mb", 500)
	v.SetDefault("thresholds.large_media_mb", 1024)
	v.SetDefault("thresholds.large_file_mb", 100)

	v.SetDefault("paths.include_profile", true)
	v.SetDefault("paths.include_downloads", true)
	v.SetDefault("paths.include_documents", true)
	v.SetDefault("paths.include_desktop", true)
	v.SetDefault("paths.include_pictures", true)
	v.SetDefault("paths.include_videos", true)
	v.SetDefault("paths.include_music", true)
	v.SetDefault("paths.include_temp", true)
	v.SetDefault("paths.custom_roots", []string{})

	v.SetDefault("scan.exclude", []string{"node_modules", ".git"})
	v.SetDefault("scan.concurrency", 0) // 0 = one worker per logical core

	v.SetDefault("delete.permanent", false)
	v.SetDefault("audit.path", auditlog.DefaultPath())
}

// Load reads the configuration. file may be empty, in which case the
// standard location (user config dir) is searched.
func Load(file string) (Options, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SWEEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "sweeper"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file means defaults; anything else (explicit
		// file not readable, malformed yaml) is a real error.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Options{}, err
		}
	}

	return Options{
		TempAgeDays:     v.GetInt("thresholds.temp_age_days"),
		BackupAgeDays:   v.GetInt("thresholds.backup_age_days"),
		LargeDownloadMB: v.GetInt64("thresholds.large_download_mb"),
		LargeMediaMB:    v.GetInt64("thresholds.large_media_mb"),
		LargeFileMB:     v.GetInt64("thresholds.large_file_mb"),

		IncludeProfile:   v.GetBool("paths.include_profile"),
		IncludeDownloads: v.GetBool("paths.include_downloads"),
		IncludeDocuments: v.GetBool("paths.include_documents"),
		IncludeDesktop:   v.GetBool("paths.include_desktop"),
		IncludePictures:  v.GetBool("paths.include_pictures"),
		IncludeVideos:    v.GetBool("paths.include_videos"),
		IncludeMusic:     v.GetBool("paths.include_music"),
		IncludeTemp:      v.GetBool("paths.include_temp"),
		CustomRoots:      v.GetStringSlice("paths.custom_roots"),

		Exclude:     v.GetStringSlice("scan.exclude"),
		Concurrency: v.GetInt("scan.concurrency"),

		PermanentDelete: v.GetBool("delete.permanent"),
		AuditLogPath:    v.GetString("audit.path"),
	}, nil
}
