package commands

import (
	"fmt"

	"pickleshop/internal/pkg/errs"
)

// SubmissionState represents the lifecycle of one order submission attempt.
// It implements a state machine with defined transitions so the pipeline
// cannot skip a stage or fail from the wrong one.
//
// State transitions:
//
//	Idle ──> Validating ──> Persisting ──> Notifying ──> GeneratingReceipt ──> Confirmed
//	                            │
//	                            └──> Failed
//
// Failed is reachable only from Persisting: validation halts before any side
// effect, and the stages after persistence never fail the submission itself.
type SubmissionState int

const (
	// Idle is the initial state before a submission attempt starts.
	Idle SubmissionState = iota

	// Validating checks the draft's required fields and value ranges.
	Validating

	// Persisting writes the order through the unit of work.
	Persisting

	// Notifying dispatches the operator email. The send is detached and
	// its outcome never affects the submission.
	Notifying

	// GeneratingReceipt renders the receipt artifact for the persisted order.
	GeneratingReceipt

	// Confirmed is the terminal success state.
	Confirmed

	// Failed is the terminal failure state, entered only when persistence fails.
	Failed
)

func getSubmissionStateStrings() map[SubmissionState]string {
	return map[SubmissionState]string{
		Idle:              "Idle",
		Validating:        "Validating",
		Persisting:        "Persisting",
		Notifying:         "Notifying",
		GeneratingReceipt: "GeneratingReceipt",
		Confirmed:         "Confirmed",
		Failed:            "Failed",
	}
}

// String returns the human-readable name of the state.
func (s SubmissionState) String() string {
	if str, ok := getSubmissionStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the value is one of the defined states.
func (s SubmissionState) Validate() error {
	if _, ok := getSubmissionStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"submission state is invalid",
			fmt.Errorf("%d is not a valid submission state", s),
		)
	}
	return nil
}

// IsTerminal reports whether no further transition is possible.
func (s SubmissionState) IsTerminal() bool {
	return s == Confirmed || s == Failed
}

// StartValidating transitions Idle -> Validating.
func (s SubmissionState) StartValidating() (SubmissionState, error) {
	if s != Idle {
		return 0, s.transitionError(Validating)
	}
	return Validating, nil
}

// StartPersisting transitions Validating -> Persisting.
func (s SubmissionState) StartPersisting() (SubmissionState, error) {
	if s != Validating {
		return 0, s.transitionError(Persisting)
	}
	return Persisting, nil
}

// StartNotifying transitions Persisting -> Notifying.
func (s SubmissionState) StartNotifying() (SubmissionState, error) {
	if s != Persisting {
		return 0, s.transitionError(Notifying)
	}
	return Notifying, nil
}

// StartGeneratingReceipt transitions Notifying -> GeneratingReceipt.
func (s SubmissionState) StartGeneratingReceipt() (SubmissionState, error) {
	if s != Notifying {
		return 0, s.transitionError(GeneratingReceipt)
	}
	return GeneratingReceipt, nil
}

// Confirm transitions GeneratingReceipt -> Confirmed.
func (s SubmissionState) Confirm() (SubmissionState, error) {
	if s != GeneratingReceipt {
		return 0, s.transitionError(Confirmed)
	}
	return Confirmed, nil
}

// Fail transitions Persisting -> Failed. No other state may fail.
func (s SubmissionState) Fail() (SubmissionState, error) {
	if s != Persisting {
		return 0, s.transitionError(Failed)
	}
	return Failed, nil
}

func (s SubmissionState) transitionError(to SubmissionState) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"submission state is invalid",
		fmt.Errorf("cannot transition from %s to %s", s.String(), to.String()),
	)
}
