package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"devdoctor/internal/doctor"
)

// Model for the doctor dashboard
type model struct {
	spinner  spinner.Model
	checking bool
	result   doctor.RunResult
	quitting bool
	width    int
	height   int
}

func initialModel() model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styleSpinner
	return model{spinner: sp, checking: true}
}

// InitialModel exposes the initial dashboard model to the app bootstrap.
func InitialModel() tea.Model { return initialModel() }

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, runDoctor)
}

// resultMsg carries a finished doctor pass into the update loop.
type resultMsg struct {
	result doctor.RunResult
}

// runDoctor executes a read-only doctor pass off the UI goroutine. Fixes
// stay CLI-only so the dashboard never mutates the machine PATH.
func runDoctor() tea.Msg {
	return resultMsg{result: doctor.NewRunner().Run(doctor.Options{Fix: false})}
}
