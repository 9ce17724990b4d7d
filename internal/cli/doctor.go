package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"devdoctor/internal/doctor"
	"devdoctor/internal/report"
	"devdoctor/internal/system"
)

var (
	doctorJSON   bool
	doctorReport bool
	doctorNoFix  bool
	doctorYes    bool
)

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output JSON report")
	doctorCmd.Flags().BoolVar(&doctorReport, "report", false, "render a markdown report")
	doctorCmd.Flags().BoolVar(&doctorNoFix, "no-fix", false, "probe only, never touch the persistent PATH")
	doctorCmd.Flags().BoolVarP(&doctorYes, "yes", "y", false, "skip the confirmation prompt before PATH changes")
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that Git and VS Code are installed and reachable",
	Long:  "Probes each tool against PATH and its known install directories, repairs\nthe persistent PATH for an installed-but-unreachable Git, and prints a\nfull summary with recommendations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := doctor.NewRunner()
		opts := doctor.Options{Fix: !doctorNoFix}
		if !doctorYes && !doctorJSON {
			opts.Confirm = confirmAppend
		}
		if !runner.Elevated() && !doctorNoFix {
			system.Logger.Warn("not elevated; a PATH repair attempt may fail")
		}
		res := runner.Run(opts)

		switch {
		case doctorJSON:
			if err := report.RenderJSON(os.Stdout, res); err != nil {
				return err
			}
		case doctorReport:
			if err := report.RenderMarkdown(os.Stdout, res); err != nil {
				return err
			}
		default:
			report.Render(os.Stdout, res)
		}
		if !res.Healthy() {
			// Summary already printed in full; flag the run for scripting.
			return errors.New("doctor found unresolved issues")
		}
		return nil
	},
}

// confirmAppend gates the persistent PATH write behind an interactive
// confirmation. Without a usable terminal the attempt proceeds and the
// write is allowed to fail on its own.
func confirmAppend(dir string) bool {
	ok := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Append %s to the machine PATH?", dir)).
			Description("Existing entries are preserved; requires elevation.").
			Affirmative("Append").
			Negative("Skip").
			Value(&ok),
	)).WithTheme(huh.ThemeCharm())
	if err := form.Run(); err != nil {
		return true
	}
	return ok
}
