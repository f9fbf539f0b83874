//go:build linux

package scan

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts access and change times from the underlying stat
// structure. Linux has no portable creation time; the inode change time
// is the closest available signal.
func statTimes(info os.FileInfo) (atime, ctime time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, time.Time{}
	}
	atime = time.Unix(st.Atim.Sec, st.Atim.Nsec)
	ctime = time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	return atime, ctime
}
