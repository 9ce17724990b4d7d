package ui

import (
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"devdoctor/internal/tools"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n  " + styleTitle.Render("devdoctor") + styleMuted.Render("  workstation readiness") + "\n\n")

	if m.checking {
		b.WriteString(fmt.Sprintf("  %s probing tools…\n", m.spinner.View()))
	} else {
		nameW := 0
		for _, ts := range m.result.Tools {
			if w := runewidth.StringWidth(ts.Probe.DisplayName); w > nameW {
				nameW = w
			}
		}
		for _, ts := range m.result.Tools {
			glyph := styleBad.Render("✗")
			switch ts.State.Kind {
			case tools.FoundOnPath:
				glyph = styleOK.Render("✓")
			case tools.FoundNotOnPath:
				glyph = styleWarn.Render("!")
			}
			line := fmt.Sprintf("  %s %s  %s", glyph, runewidth.FillRight(ts.Probe.DisplayName, nameW), ts.State.Kind)
			if ts.State.Version != "" {
				line += styleMuted.Render("  v" + tools.NormalizeVersion(ts.State.Version))
			}
			b.WriteString(line + "\n")
			if ts.Recommendation != "" {
				b.WriteString(styleMuted.Render("      ↳ "+ts.Recommendation) + "\n")
			}
		}
		if !m.result.Elevated {
			for _, ts := range m.result.Tools {
				if ts.State.Kind == tools.FoundNotOnPath {
					b.WriteString("\n" + styleWarn.Render("  not elevated: run `devdoctor fix` from an elevated session") + "\n")
					break
				}
			}
		}
	}

	b.WriteString("\n" + styleHelp.Render("  r rerun · q quit") + "\n")
	return b.String()
}
