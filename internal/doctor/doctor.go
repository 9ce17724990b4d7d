// Package doctor runs the readiness checks and aggregates the result.
package doctor

import (
	"fmt"

	"devdoctor/internal/pathenv"
	"devdoctor/internal/system"
	"devdoctor/internal/tools"
)

// ToolStatus is the reported state of one probed tool.
type ToolStatus struct {
	Probe          tools.ToolProbe
	State          tools.InstallState
	Recommendation string
}

// RunResult aggregates one full doctor pass. Read-only once produced; it is
// the sole input to the summary report.
type RunResult struct {
	Tools          []ToolStatus
	Reconciliation *pathenv.Outcome
	Elevated       bool
}

// Healthy reports whether every probed tool ended up reachable.
func (r RunResult) Healthy() bool {
	for _, ts := range r.Tools {
		if ts.State.Kind != tools.FoundOnPath {
			return false
		}
	}
	return true
}

// Options control a doctor pass.
type Options struct {
	// Fix enables PATH reconciliation for fixable tools found off PATH.
	Fix bool
	// Confirm gates the persistent write. Nil means always proceed; the
	// write itself is still attempted and allowed to fail (elevation is a
	// pre-warning, not a gate).
	Confirm func(dir string) bool
}

// Runner wires the detector and reconciler. Fields are injectable for
// tests and default to the real collaborators.
type Runner struct {
	Detector   *tools.Detector
	Reconciler *pathenv.Reconciler
	Probes     []tools.ToolProbe
	Version    func(tools.ToolProbe) string
	Elevated   func() bool
}

func NewRunner() *Runner {
	return &Runner{
		Detector:   tools.NewDetector(),
		Reconciler: pathenv.NewReconciler(pathenv.NewMachineStore()),
		Probes:     tools.Probes(),
		Version:    tools.ProbeVersion,
		Elevated:   system.IsElevated,
	}
}

// Run probes every registered tool, reconciling the persistent PATH for
// fixable tools found installed but unreachable. The pass is total: every
// failure folds into the result and the summary always covers all tools.
func (r *Runner) Run(opts Options) RunResult {
	res := RunResult{Elevated: r.Elevated()}
	for _, probe := range r.Probes {
		st := r.Detector.Detect(probe)
		system.Logger.Debug("detected", "tool", probe.ID, "state", st.Kind.String())

		var out *pathenv.Outcome
		if st.Kind == tools.FoundNotOnPath && probe.Fixable && opts.Fix {
			if opts.Confirm == nil || opts.Confirm(st.Dir) {
				o := r.Reconciler.Reconcile(probe.Command, st.Dir)
				out = &o
				res.Reconciliation = out
				system.Logger.Debug("reconciled", "tool", probe.ID, "dir", st.Dir, "outcome", o.Kind.String())
				if o.Kind == pathenv.OutcomeAppliedAndVerified {
					// The dir is now on the process PATH; re-detect so the
					// summary reflects the repaired state.
					st = r.Detector.Detect(probe)
				}
			}
		}
		if st.Kind == tools.FoundOnPath && r.Version != nil {
			st.Version = r.Version(probe)
		}
		res.Tools = append(res.Tools, ToolStatus{
			Probe:          probe,
			State:          st,
			Recommendation: recommend(probe, st, out),
		})
	}
	return res
}

// recommend derives the actionable next step for one tool, if any.
func recommend(probe tools.ToolProbe, st tools.InstallState, out *pathenv.Outcome) string {
	switch st.Kind {
	case tools.NotFound:
		return fmt.Sprintf("install %s: %s", probe.DisplayName, probe.InstallURL)
	case tools.FoundNotOnPath:
		if out == nil {
			if probe.Fixable {
				return fmt.Sprintf("add %s to PATH (run `devdoctor fix`)", st.Dir)
			}
			return fmt.Sprintf("add %s to PATH", st.Dir)
		}
		switch out.Kind {
		case pathenv.OutcomeAlreadyPresent:
			return "already on the persistent PATH; open a new session to pick it up"
		case pathenv.OutcomeAppliedButUnverified:
			return "PATH updated; open a new session to pick it up"
		case pathenv.OutcomeFailed:
			return fmt.Sprintf("could not update PATH (%s); rerun from an elevated session", out.Reason)
		}
	case tools.FoundOnPath:
		if out != nil && out.Kind == pathenv.OutcomeAppliedAndVerified {
			return "PATH updated and verified; new sessions inherit it"
		}
	}
	return ""
}
