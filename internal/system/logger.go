package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger for diagnostic output.
// It prints to stderr with timestamps; the user-facing summary goes to
// stdout through internal/report.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})
