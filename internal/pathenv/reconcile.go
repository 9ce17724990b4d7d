package pathenv

import (
	"fmt"
	"os"
	"os/exec"
)

// OutcomeKind classifies a reconciliation attempt.
type OutcomeKind int

const (
	OutcomeAlreadyPresent OutcomeKind = iota
	OutcomeAppliedAndVerified
	OutcomeAppliedButUnverified
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAlreadyPresent:
		return "already-present"
	case OutcomeAppliedAndVerified:
		return "applied-verified"
	case OutcomeAppliedButUnverified:
		return "applied-unverified"
	default:
		return "failed"
	}
}

// Outcome reports what one reconciliation attempt did. NewValue carries the
// stored value after a successful write; Reason is set for OutcomeFailed.
type Outcome struct {
	Kind     OutcomeKind
	Dir      string
	NewValue string
	Reason   string
}

// Reconciler appends directories to the persistent PATH store and verifies
// the change in the current process. Collaborators default to the real
// primitives and are injectable for tests.
type Reconciler struct {
	Store    Store
	LookPath func(string) (string, error)
	Getenv   func(string) string
	Setenv   func(string, string) error
}

func NewReconciler(store Store) *Reconciler {
	return &Reconciler{
		Store:    store,
		LookPath: exec.LookPath,
		Getenv:   os.Getenv,
		Setenv:   os.Setenv,
	}
}

// Reconcile makes command reachable by appending dir to the persistent
// PATH. Idempotent across runs: a dir already stored (case-insensitive
// segment match) is never appended again. Total: every collaborator failure
// lands in the returned outcome, nothing propagates, and a failed write
// leaves the stored value untouched.
//
// The stored value is re-read on every call, so the membership test always
// runs against the freshest value this process can see. A concurrent edit
// landing between Load and Save is still lost wholesale; accepted for an
// interactively invoked single-operator tool.
func (r *Reconciler) Reconcile(command, dir string) Outcome {
	current, err := r.Store.Load()
	if err != nil {
		return Outcome{Kind: OutcomeFailed, Dir: dir, Reason: fmt.Sprintf("read persistent PATH: %v", err)}
	}
	if Contains(current, dir) {
		return Outcome{Kind: OutcomeAlreadyPresent, Dir: dir}
	}
	next := Append(current, dir)
	if err := r.Store.Save(next); err != nil {
		return Outcome{Kind: OutcomeFailed, Dir: dir, Reason: fmt.Sprintf("write persistent PATH: %v", err)}
	}
	// Make the change visible to this process without a new session.
	_ = r.Setenv("PATH", Append(r.Getenv("PATH"), dir))
	if _, err := r.LookPath(command); err != nil {
		return Outcome{Kind: OutcomeAppliedButUnverified, Dir: dir, NewValue: next}
	}
	return Outcome{Kind: OutcomeAppliedAndVerified, Dir: dir, NewValue: next}
}
