//go:build !windows

package system

import "os"

// IsElevated reports whether the process runs with root privileges, which
// writing under /etc requires.
func IsElevated() bool {
	return os.Geteuid() == 0
}
