package tools

// Tool identifiers and probe metadata
type ToolID string

const (
	ToolGit    ToolID = "git"
	ToolVSCode ToolID = "vscode"
)

// ToolProbe describes how one tool is found: a command resolved against the
// current PATH, and the install directories checked when resolution fails.
type ToolProbe struct {
	ID          ToolID
	DisplayName string
	Command     string     // bare command name resolved against PATH
	ExeName     string     // file probed inside InstallDirs (Command + ".exe" on windows)
	InstallDirs []string   // candidate install directories, highest priority first
	VersionArgs [][]string // tried in order once the tool resolves
	InstallURL  string
	Fixable     bool // PATH reconciliation offered when found off PATH
}

// StateKind classifies a detection result.
type StateKind int

const (
	NotFound StateKind = iota
	FoundNotOnPath
	FoundOnPath
)

func (k StateKind) String() string {
	switch k {
	case FoundOnPath:
		return "installed & reachable"
	case FoundNotOnPath:
		return "installed, not reachable"
	default:
		return "not installed"
	}
}

// InstallState is the outcome of one detection pass. Dir is set for
// FoundNotOnPath (the containing directory, not the executable); Location
// for FoundOnPath (the resolved executable path). Version is best-effort
// and never affects the Kind.
type InstallState struct {
	Kind     StateKind
	Dir      string
	Location string
	Version  string
}
