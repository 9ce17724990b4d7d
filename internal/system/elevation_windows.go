//go:build windows

package system

import "golang.org/x/sys/windows/registry"

const machineEnvKey = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`

// IsElevated reports whether the machine environment hive can be opened for
// writing, the capability PATH reconciliation actually needs.
func IsElevated() bool {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, machineEnvKey, registry.SET_VALUE)
	if err != nil {
		return false
	}
	k.Close()
	return true
}
