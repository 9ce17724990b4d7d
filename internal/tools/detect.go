package tools

import (
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
)

// Detector resolves tool probes against the current process environment.
// The collaborators default to the real OS primitives and are injectable
// for tests.
type Detector struct {
	LookPath func(string) (string, error)
	Stat     func(string) (fs.FileInfo, error)
}

func NewDetector() *Detector {
	return &Detector{LookPath: exec.LookPath, Stat: os.Stat}
}

// Detect classifies probe as reachable, installed off PATH, or absent.
// Read-only and total: a failing or panicking primitive counts as "not
// resolved" and the scan continues, so detection never fails the run.
// Install dirs are only consulted when PATH resolution fails.
func (d *Detector) Detect(probe ToolProbe) InstallState {
	if loc, ok := d.resolve(probe.Command); ok {
		return InstallState{Kind: FoundOnPath, Location: loc}
	}
	for _, dir := range probe.InstallDirs {
		if d.isFile(filepath.Join(dir, probe.ExeName)) {
			return InstallState{Kind: FoundNotOnPath, Dir: dir}
		}
	}
	return InstallState{Kind: NotFound}
}

func (d *Detector) resolve(command string) (loc string, ok bool) {
	defer func() {
		if recover() != nil {
			loc, ok = "", false
		}
	}()
	p, err := d.LookPath(command)
	if err != nil {
		return "", false
	}
	if p == "" {
		// Resolver gave no path; still a truthful reachability signal.
		p = "resolved via PATH lookup"
	}
	return p, true
}

func (d *Detector) isFile(path string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	fi, err := d.Stat(path)
	return err == nil && !fi.IsDir()
}
