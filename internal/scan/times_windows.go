//go:build windows

package scan

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts last-access and creation times from the Win32 file
// attribute data.
func statTimes(info os.FileInfo) (atime, ctime time.Time) {
	st, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, time.Time{}
	}
	atime = time.Unix(0, st.LastAccessTime.Nanoseconds())
	ctime = time.Unix(0, st.CreationTime.Nanoseconds())
	return atime, ctime
}
