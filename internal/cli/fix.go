package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"devdoctor/internal/pathenv"
	"devdoctor/internal/system"
	"devdoctor/internal/tools"
)

var fixYes bool

func init() {
	rootCmd.AddCommand(fixCmd)
	fixCmd.Flags().BoolVarP(&fixYes, "yes", "y", false, "skip the confirmation prompt")
}

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Repair the persistent PATH for an installed but unreachable Git",
	RunE: func(cmd *cobra.Command, args []string) error {
		probe := tools.GitProbe()
		st := tools.NewDetector().Detect(probe)
		switch st.Kind {
		case tools.FoundOnPath:
			fmt.Printf("%s is already reachable (%s); nothing to do\n", probe.DisplayName, st.Location)
			return nil
		case tools.NotFound:
			return fmt.Errorf("%s is not installed; install it first: %s", probe.DisplayName, probe.InstallURL)
		}
		if !system.IsElevated() {
			system.Logger.Warn("not elevated; the PATH write may fail")
		}
		if !fixYes && !confirmAppend(st.Dir) {
			fmt.Println("skipped")
			return nil
		}
		out := pathenv.NewReconciler(pathenv.NewMachineStore()).Reconcile(probe.Command, st.Dir)
		switch out.Kind {
		case pathenv.OutcomeAlreadyPresent:
			fmt.Printf("%s is already on the persistent PATH; open a new session to pick it up\n", st.Dir)
		case pathenv.OutcomeAppliedAndVerified:
			fmt.Printf("appended %s; %s is now reachable\n", st.Dir, probe.Command)
		case pathenv.OutcomeAppliedButUnverified:
			fmt.Printf("appended %s; open a new session for it to take effect\n", st.Dir)
		case pathenv.OutcomeFailed:
			return fmt.Errorf("could not update the persistent PATH: %s (rerun from an elevated session)", out.Reason)
		}
		return nil
	},
}
