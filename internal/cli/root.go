package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"devdoctor/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "devdoctor",
	Short: "devdoctor – workstation readiness checker",
	Long:  "devdoctor checks that Git and VS Code are installed and reachable on PATH,\nand can repair the persistent PATH when Git is installed but unreachable.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the TUI dashboard
		return app.Start()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
