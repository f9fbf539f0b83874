//go:build darwin

package scan

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts access and birth times from the Darwin stat structure.
func statTimes(info os.FileInfo) (atime, ctime time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, time.Time{}
	}
	atime = time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec)
	ctime = time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	return atime, ctime
}
