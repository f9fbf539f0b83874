//go:build linux

package trash

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// The freedesktop.org trash spec: files go to Trash/files, each with a
// matching Trash/info/<name>.trashinfo carrying origin and deletion time.

func available() bool {
	return trashDir() != ""
}

func trashDir() string {
	data := os.Getenv("XDG_DATA_HOME")
	if data == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		data = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(data, "Trash")
}

func moveToTrash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	root := trashDir()
	if root == "" {
		return ErrUnavailable
	}
	filesDir := filepath.Join(root, "files")
	infoDir := filepath.Join(root, "info")
	if err := os.MkdirAll(filesDir, 0o700); err != nil {
		return err
	}
	if err := os.MkdirAll(infoDir, 0o700); err != nil {
		return err
	}

	name := uniqueName(filesDir, infoDir, filepath.Base(abs))

	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		escapePath(abs), time.Now().Format("2006-01-02T15:04:05"))
	infoPath := filepath.Join(infoDir, name+".trashinfo")
	if err := os.WriteFile(infoPath, []byte(info), 0o600); err != nil {
		return err
	}

	if err := os.Rename(abs, filepath.Join(filesDir, name)); err != nil {
		_ = os.Remove(infoPath)
		return err
	}
	return nil
}

// uniqueName picks a trash entry name free in both files/ and info/.
func uniqueName(filesDir, infoDir, base string) string {
	name := base
	for i := 1; ; i++ {
		_, errF := os.Lstat(filepath.Join(filesDir, name))
		_, errI := os.Lstat(filepath.Join(infoDir, name+".trashinfo"))
		if os.IsNotExist(errF) && os.IsNotExist(errI) {
			return name
		}
		ext := filepath.Ext(base)
		name = fmt.Sprintf("%s.%d%s", base[:len(base)-len(ext)], i, ext)
	}
}

// escapePath percent-encodes the origin path per the trash spec.
func escapePath(p string) string {
	u := url.URL{Path: p}
	return u.EscapedPath()
}
