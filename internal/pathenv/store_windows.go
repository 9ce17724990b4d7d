//go:build windows

package pathenv

import "golang.org/x/sys/windows/registry"

const machineEnvKey = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`

// machineStore reads and writes the machine PATH value in the registry.
type machineStore struct{}

// NewMachineStore returns the persistent machine-scope PATH store.
func NewMachineStore() Store { return machineStore{} }

func (machineStore) Load() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, machineEnvKey, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()
	v, _, err := k.GetStringValue("Path")
	if err == registry.ErrNotExist {
		return "", nil
	}
	return v, err
}

func (machineStore) Save(value string) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, machineEnvKey, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()
	// Keep %VAR% references in pre-existing segments expandable.
	return k.SetExpandStringValue("Path", value)
}
