//go:build linux || darwin

package platform

import "golang.org/x/sys/unix"

// isAdmin reports whether the process runs as root.
func isAdmin() bool {
	return unix.Geteuid() == 0
}
