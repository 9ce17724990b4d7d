package tools

import (
	"os"
	"path/filepath"
	"runtime"
)

// Probes returns the tools devdoctor checks, in check order. The install
// dir lists are priority-ordered: user-local locations before machine-wide
// 64-bit before machine-wide 32-bit.
func Probes() []ToolProbe {
	return []ToolProbe{GitProbe(), VSCodeProbe()}
}

// GitProbe describes the version-control client. It is the only probe with
// PATH reconciliation enabled.
func GitProbe() ToolProbe {
	var dirs []string
	if runtime.GOOS == "windows" {
		dirs = []string{
			localAppData("Programs", "Git", "cmd"),
			`C:\Program Files\Git\cmd`,
			`C:\Program Files (x86)\Git\cmd`,
		}
	} else {
		dirs = []string{
			homeDir(".local", "bin"),
			"/opt/homebrew/bin",
			"/usr/local/bin",
		}
	}
	return ToolProbe{
		ID:          ToolGit,
		DisplayName: "Git",
		Command:     "git",
		ExeName:     exeName("git"),
		InstallDirs: compact(dirs),
		VersionArgs: [][]string{{"--version"}, {"version"}},
		InstallURL:  "https://git-scm.com/downloads",
		Fixable:     true,
	}
}

// VSCodeProbe describes the editor. Installed-or-not only; no
// reconciliation is offered for it.
func VSCodeProbe() ToolProbe {
	var dirs []string
	if runtime.GOOS == "windows" {
		dirs = []string{
			localAppData("Programs", "Microsoft VS Code", "bin"),
			`C:\Program Files\Microsoft VS Code\bin`,
			`C:\Program Files (x86)\Microsoft VS Code\bin`,
		}
	} else {
		dirs = []string{
			"/opt/homebrew/bin",
			"/usr/local/bin",
			"/snap/bin",
		}
	}
	return ToolProbe{
		ID:          ToolVSCode,
		DisplayName: "VS Code",
		Command:     "code",
		ExeName:     exeName("code"),
		InstallDirs: compact(dirs),
		VersionArgs: [][]string{{"--version"}},
		InstallURL:  "https://code.visualstudio.com/download",
	}
}

func exeName(cmd string) string {
	if runtime.GOOS == "windows" {
		return cmd + ".exe"
	}
	return cmd
}

func localAppData(elem ...string) string {
	base := os.Getenv("LOCALAPPDATA")
	if base == "" {
		return ""
	}
	return filepath.Join(append([]string{base}, elem...)...)
}

func homeDir(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home}, elem...)...)
}

// compact drops candidates whose base env var was unset.
func compact(dirs []string) []string {
	out := dirs[:0]
	for _, d := range dirs {
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}
