package report

import (
	"io"

	"github.com/charmbracelet/glamour"

	"devdoctor/internal/doctor"
)

// RenderMarkdown renders the markdown report through glamour for display in
// the terminal.
func RenderMarkdown(w io.Writer, res doctor.RunResult) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(Markdown(res))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
