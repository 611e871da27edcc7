package models

// SyncPhase names one step of an orchestration run
type SyncPhase string

const (
	PhaseCheckout       SyncPhase = "checkout"
	PhaseStash          SyncPhase = "stash"
	PhaseRebasePull     SyncPhase = "rebase-pull"
	PhaseStashPop       SyncPhase = "stash-pop"
	PhasePush           SyncPhase = "push"
	PhaseDivergencePull SyncPhase = "divergence-pull"
	PhaseCommit         SyncPhase = "commit"
	PhaseBranchPR       SyncPhase = "branch-pr"
)

// SyncOutcome is the result of a single phase
type SyncOutcome struct {
	Phase     SyncPhase
	Succeeded bool
	// Skipped phases had nothing to do; they count as successes
	Skipped bool
	Message string
}

// SyncReport collects the outcomes of one orchestration run, in execution order
type SyncReport struct {
	Outcomes []SyncOutcome
	// Stashed is true if this run created a stash entry
	Stashed bool
	// Aborted is true if a terminal failure stopped the run early
	Aborted bool
}

// Add appends an outcome
func (r *SyncReport) Add(phase SyncPhase, succeeded bool, message string) {
	r.Outcomes = append(r.Outcomes, SyncOutcome{Phase: phase, Succeeded: succeeded, Message: message})
}

// Skip records a phase that had nothing to do
func (r *SyncReport) Skip(phase SyncPhase, message string) {
	r.Outcomes = append(r.Outcomes, SyncOutcome{Phase: phase, Succeeded: true, Skipped: true, Message: message})
}

// Succeeded returns true if the run was not aborted and every phase succeeded
func (r SyncReport) Succeeded() bool {
	if r.Aborted {
		return false
	}
	for _, o := range r.Outcomes {
		if !o.Succeeded {
			return false
		}
	}
	return true
}

// Outcome returns the first outcome for phase, if any
func (r SyncReport) Outcome(phase SyncPhase) (SyncOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.Phase == phase {
			return o, true
		}
	}
	return SyncOutcome{}, false
}

// Attempted returns true if phase ran (was recorded and not skipped)
func (r SyncReport) Attempted(phase SyncPhase) bool {
	o, ok := r.Outcome(phase)
	return ok && !o.Skipped
}
