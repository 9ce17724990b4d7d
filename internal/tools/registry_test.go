package tools

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	tu "devdoctor/internal/testutil"
)

func TestProbesWellFormed(t *testing.T) {
	probes := Probes()
	if len(probes) != 2 {
		t.Fatalf("expected two probes, got %d", len(probes))
	}
	for _, p := range probes {
		if p.Command == "" || p.DisplayName == "" || p.InstallURL == "" {
			t.Fatalf("incomplete probe: %+v", p)
		}
		if !strings.HasPrefix(p.ExeName, p.Command) {
			t.Fatalf("exe name %q must derive from command %q", p.ExeName, p.Command)
		}
		if len(p.InstallDirs) == 0 {
			t.Fatalf("probe %s has no install dir candidates", p.ID)
		}
		for _, d := range p.InstallDirs {
			if d == "" {
				t.Fatalf("probe %s carries an empty install dir", p.ID)
			}
		}
	}
}

func TestGitProbeHonorsHomeOverride(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("user-local dir comes from LOCALAPPDATA on windows")
	}
	tmp := t.TempDir()
	defer tu.WithEnv(t, "HOME", tmp)()

	p := GitProbe()
	if p.InstallDirs[0] != filepath.Join(tmp, ".local", "bin") {
		t.Fatalf("expected the user-local dir first, got %v", p.InstallDirs)
	}
}

func TestOnlyGitIsFixable(t *testing.T) {
	for _, p := range Probes() {
		if (p.ID == ToolGit) != p.Fixable {
			t.Fatalf("reconciliation must be offered for git only: %s fixable=%v", p.ID, p.Fixable)
		}
	}
}
