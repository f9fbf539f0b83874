//go:build darwin

package trash

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func available() bool {
	home, err := os.UserHomeDir()
	return err == nil && home != ""
}

// moveToTrash moves the file into ~/.Trash, renaming on collision the
// way Finder does (a time suffix).
func moveToTrash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ErrUnavailable
	}
	trash := filepath.Join(home, ".Trash")
	if _, err := os.Stat(trash); err != nil {
		return ErrUnavailable
	}

	dst := filepath.Join(trash, filepath.Base(abs))
	if _, err := os.Lstat(dst); err == nil {
		ext := filepath.Ext(dst)
		stem := dst[:len(dst)-len(ext)]
		dst = fmt.Sprintf("%s %s%s", stem, time.Now().Format("15.04.05"), ext)
	}
	return os.Rename(abs, dst)
}
