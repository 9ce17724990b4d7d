//go:build !windows

package pathenv

import (
	"fmt"
	"os"
	"strings"
)

// DefaultDropInPath is the machine-scope drop-in consumed by login shells.
const DefaultDropInPath = "/etc/profile.d/devdoctor-path.sh"

// dropInStore persists PATH additions as a profile.d drop-in, the closest
// durable machine-scope equivalent of the windows environment hive. The
// stored value is the delimiter-joined segment list carried on the export
// line.
type dropInStore struct {
	path string
}

// NewMachineStore returns the persistent machine-scope PATH store.
func NewMachineStore() Store { return &dropInStore{path: DefaultDropInPath} }

// NewDropInStore returns a store over an explicit drop-in file.
func NewDropInStore(path string) Store { return &dropInStore{path: path} }

const exportPrefix = `export PATH="$PATH`

func (s *dropInStore) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, exportPrefix) {
			continue
		}
		v := strings.TrimSuffix(strings.TrimPrefix(line, exportPrefix), `"`)
		return strings.TrimPrefix(v, Delimiter), nil
	}
	return "", nil
}

func (s *dropInStore) Save(value string) error {
	content := fmt.Sprintf(
		"# Managed by devdoctor. Appends tool install directories to PATH.\n%s%s%s\"\n",
		exportPrefix, Delimiter, value,
	)
	return os.WriteFile(s.path, []byte(content), 0o644)
}
