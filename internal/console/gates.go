package console

import (
	"fmt"
	"strings"

	"stagehand/internal/readiness"
	"stagehand/internal/show"
	"stagehand/internal/staffing"
)

// Gates is the readiness gate report for one production state.
type Gates struct {
	ReadyForRunLock      bool     `json:"readyForRunLock"`
	ReadyForPressHandoff bool     `json:"readyForPressHandoff"`
	RunLockReasons       []string `json:"runLockReasons,omitempty"`
	PressHandoffReasons  []string `json:"pressHandoffReasons,omitempty"`
}

// Evaluate recomputes both gates from current state.
func Evaluate(state *show.State) Gates {
	var gates Gates

	assigned := staffing.AssignedCount(state.StaffAssignments)
	total := len(state.StaffAssignments)
	if assigned < total {
		gates.RunLockReasons = append(gates.RunLockReasons,
			fmt.Sprintf("staffing incomplete (%d of %d roles assigned)", assigned, total))
	}

	if rollup := readiness.Rollup(state.TechChecklist); rollup != show.StepDone {
		gates.RunLockReasons = append(gates.RunLockReasons,
			fmt.Sprintf("technical checklist not done (%s)", rollup))
	}

	holds := 0
	crewed := 0
	for _, cue := range state.Cues {
		if cue.Status == show.CueHold {
			holds++
		}
		if strings.TrimSpace(cue.CrewMember) != "" {
			crewed++
		}
	}
	if holds > 0 {
		gates.RunLockReasons = append(gates.RunLockReasons,
			fmt.Sprintf("cues on hold (%d)", holds))
	}

	gates.ReadyForRunLock = len(gates.RunLockReasons) == 0

	gates.PressHandoffReasons = append(gates.PressHandoffReasons, gates.RunLockReasons...)
	if crewed == 0 {
		gates.PressHandoffReasons = append(gates.PressHandoffReasons,
			"no cues carry a crew assignment")
	}
	gates.ReadyForPressHandoff = len(gates.PressHandoffReasons) == 0

	return gates
}

// RefusalError is the user-facing refusal of a gated action. It lists the
// unmet conditions; it is informational, not a fault.
type RefusalError struct {
	Action  string
	Reasons []string
}

func (e *RefusalError) Error() string {
	return fmt.Sprintf("%s refused: %s", e.Action, strings.Join(e.Reasons, "; "))
}

// LockRunOfShow freezes the cue timeline and staffing when the run-lock gate
// is open, forcing the lock, technical sync, and press draft step statuses.
func LockRunOfShow(state *show.State) error {
	gates := Evaluate(state)
	if !gates.ReadyForRunLock {
		return &RefusalError{Action: "run-of-show lock", Reasons: gates.RunLockReasons}
	}
	forceStep(state, show.StepTechnicalSync, show.StepDone)
	forceStep(state, show.StepRunOfShowLock, show.StepDone)
	forceStep(state, show.StepPressDraft, show.StepHandoff)
	return nil
}

// HandoffToPress releases the production to press when the handoff gate is
// open.
func HandoffToPress(state *show.State) error {
	gates := Evaluate(state)
	if !gates.ReadyForPressHandoff {
		return &RefusalError{Action: "press handoff", Reasons: gates.PressHandoffReasons}
	}
	forceStep(state, show.StepPressDraft, show.StepHandoff)
	forceStep(state, show.StepPressApproval, show.StepInProgress)
	forceStep(state, show.StepPressDistribution, show.StepInProgress)
	return nil
}

// forceStep sets a step status directly, bypassing the sticky-done rule:
// explicit operator actions outrank inferred signals.
func forceStep(state *show.State, id string, status show.StepStatus) {
	if step := state.StepByID(id); step != nil {
		step.Status = status
	}
}
