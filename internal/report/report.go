// Package report renders a doctor RunResult for the operator: styled
// terminal text, pretty JSON, or a markdown report.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"devdoctor/internal/doctor"
	"devdoctor/internal/tools"
)

var (
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4d9375"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e6cc77"))
	styleBad   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cb7676"))
	styleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("#dedcd590"))
)

func glyph(k tools.StateKind) string {
	switch k {
	case tools.FoundOnPath:
		return styleOK.Render("✓")
	case tools.FoundNotOnPath:
		return styleWarn.Render("!")
	default:
		return styleBad.Render("✗")
	}
}

// Render writes the human-readable summary of res to w.
func Render(w io.Writer, res doctor.RunResult) {
	nameW := 0
	for _, ts := range res.Tools {
		if n := runewidth.StringWidth(ts.Probe.DisplayName); n > nameW {
			nameW = n
		}
	}
	for _, ts := range res.Tools {
		line := fmt.Sprintf("%s %s  %s", glyph(ts.State.Kind), runewidth.FillRight(ts.Probe.DisplayName, nameW), ts.State.Kind)
		if ts.State.Version != "" {
			line += styleMuted.Render("  v" + tools.NormalizeVersion(ts.State.Version))
		}
		fmt.Fprintln(w, line)
		if ts.State.Kind == tools.FoundOnPath && ts.State.Location != "" {
			fmt.Fprintln(w, styleMuted.Render("    "+ts.State.Location))
		}
		if ts.Recommendation != "" {
			fmt.Fprintln(w, "    ↳ "+ts.Recommendation)
		}
	}
	if !res.Elevated && needsElevation(res) {
		fmt.Fprintln(w, styleWarn.Render("\nnot elevated: PATH repair needs an elevated session"))
	}
	fmt.Fprintln(w)
	if res.Healthy() {
		fmt.Fprintln(w, styleOK.Render("all tools installed and reachable"))
	} else {
		fmt.Fprintln(w, styleWarn.Render("some tools need attention; see recommendations above"))
	}
}

// needsElevation reports whether any remaining issue is a PATH repair.
func needsElevation(res doctor.RunResult) bool {
	for _, ts := range res.Tools {
		if ts.State.Kind == tools.FoundNotOnPath {
			return true
		}
	}
	return false
}

type toolJSON struct {
	Tool           string `json:"tool"`
	Command        string `json:"command"`
	Status         string `json:"status"`
	Location       string `json:"location,omitempty"`
	Directory      string `json:"directory,omitempty"`
	Version        string `json:"version,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

type reconciliationJSON struct {
	Outcome   string `json:"outcome"`
	Directory string `json:"directory"`
	NewPath   string `json:"newPath,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

type reportJSON struct {
	Healthy        bool                `json:"healthy"`
	Elevated       bool                `json:"elevated"`
	Tools          []toolJSON          `json:"tools"`
	Reconciliation *reconciliationJSON `json:"reconciliation,omitempty"`
}

// RenderJSON writes res to w as indented JSON.
func RenderJSON(w io.Writer, res doctor.RunResult) error {
	out := reportJSON{
		Healthy:  res.Healthy(),
		Elevated: res.Elevated,
		Tools:    make([]toolJSON, 0, len(res.Tools)),
	}
	for _, ts := range res.Tools {
		out.Tools = append(out.Tools, toolJSON{
			Tool:           string(ts.Probe.ID),
			Command:        ts.Probe.Command,
			Status:         ts.State.Kind.String(),
			Location:       ts.State.Location,
			Directory:      ts.State.Dir,
			Version:        ts.State.Version,
			Recommendation: ts.Recommendation,
		})
	}
	if res.Reconciliation != nil {
		out.Reconciliation = &reconciliationJSON{
			Outcome:   res.Reconciliation.Kind.String(),
			Directory: res.Reconciliation.Dir,
			NewPath:   res.Reconciliation.NewValue,
			Reason:    res.Reconciliation.Reason,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Markdown builds the markdown report source. Exported so tests can assert
// on it without a terminal renderer.
func Markdown(res doctor.RunResult) string {
	var b strings.Builder
	b.WriteString("# Workstation readiness\n\n")
	b.WriteString("| Tool | Status | Details |\n|---|---|---|\n")
	for _, ts := range res.Tools {
		detail := ts.State.Location
		if ts.State.Kind == tools.FoundNotOnPath {
			detail = ts.State.Dir
		}
		if ts.State.Version != "" {
			detail = strings.TrimSpace(detail + " v" + tools.NormalizeVersion(ts.State.Version))
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", ts.Probe.DisplayName, ts.State.Kind, detail)
	}
	if res.Reconciliation != nil {
		o := res.Reconciliation
		b.WriteString("\n## PATH reconciliation\n\n")
		fmt.Fprintf(&b, "- outcome: %s\n- directory: `%s`\n", o.Kind, o.Dir)
		if o.Reason != "" {
			fmt.Fprintf(&b, "- reason: %s\n", o.Reason)
		}
	}
	var recs []string
	for _, ts := range res.Tools {
		if ts.Recommendation != "" {
			recs = append(recs, ts.Recommendation)
		}
	}
	if len(recs) > 0 {
		b.WriteString("\n## Recommendations\n\n")
		for _, r := range recs {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}
	return b.String()
}
