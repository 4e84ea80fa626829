// Package steps advances the production workflow step list in response to
// intake signals, checklist readiness, and staffing changes.
//
// All transitions flow through one rule: a step that has reached done stays
// done unless the incoming status is blocked. That keeps redelivered emails
// and softer signals from regressing completed work while still letting a
// blocking report surface immediately.
package steps

import (
	"fmt"
	"strings"

	"stagehand/internal/intake"
	"stagehand/internal/show"
)

// Normalize reconciles a persisted step list against the canonical defaults
// by id, folding legacy ids. When the production type does not carry the
// stage workflow the list is empty.
func Normalize(persisted []show.WorkflowStep, applicable bool) []show.WorkflowStep {
	state := show.ReconcileState(show.State{WorkflowSteps: persisted}, applicable)
	return state.WorkflowSteps
}

// Apply sets a step's status under the sticky-done rule. It reports whether
// the step changed.
func Apply(step *show.WorkflowStep, status show.StepStatus) bool {
	if step == nil {
		return false
	}
	if step.Status == show.StepDone && status != show.StepBlocked {
		return false
	}
	if step.Status == status {
		return false
	}
	step.Status = status
	return true
}

// ApplyChecklistReadiness mirrors the checklist rollup onto the technical
// sync step. An untouched checklist (not_started rollup) leaves the step
// alone so signal-driven progress is not regressed. When technical sync
// reaches done and run-of-show lock has not started, the lock step is
// promoted to in_progress.
func ApplyChecklistReadiness(stepList []show.WorkflowStep, rollup show.StepStatus) {
	if rollup == show.StepNotStarted {
		return
	}
	var techSync, rosLock *show.WorkflowStep
	for i := range stepList {
		switch stepList[i].ID {
		case show.StepTechnicalSync:
			techSync = &stepList[i]
		case show.StepRunOfShowLock:
			rosLock = &stepList[i]
		}
	}
	if techSync == nil {
		return
	}
	Apply(techSync, rollup)
	if techSync.Status == show.StepDone && rosLock != nil && rosLock.Status == show.StepNotStarted {
		rosLock.Status = show.StepInProgress
	}
}

// signalRule maps one signal condition to a step group and target status.
// Rules run in order; the blocked rule runs last so it wins over softer
// statuses set in the same application.
type signalRule struct {
	when   func(intake.Signals) bool
	steps  []string
	status func(intake.Signals) show.StepStatus
}

func fixed(status show.StepStatus) func(intake.Signals) show.StepStatus {
	return func(intake.Signals) show.StepStatus { return status }
}

var signalRules = []signalRule{
	{
		when:   func(s intake.Signals) bool { return s.CuesUpdated || s.CrewUpdated },
		steps:  []string{show.StepEmailIntake},
		status: fixed(show.StepDone),
	},
	{
		when:   func(s intake.Signals) bool { return s.CuesUpdated || s.CrewUpdated },
		steps:  []string{show.StepIntakeValidation},
		status: fixed(show.StepInProgress),
	},
	{
		when:   func(s intake.Signals) bool { return s.CrewUpdated },
		steps:  []string{show.StepStaffingConfirmation},
		status: fixed(show.StepInProgress),
	},
	{
		when:  func(s intake.Signals) bool { return s.CuesUpdated },
		steps: []string{show.StepTechnicalSync},
		status: func(s intake.Signals) show.StepStatus {
			if s.CuesLocked {
				return show.StepDone
			}
			return show.StepInProgress
		},
	},
	{
		when:   func(s intake.Signals) bool { return s.CuesLocked || s.CallSheetSent },
		steps:  []string{show.StepRunOfShowLock},
		status: fixed(show.StepDone),
	},
	{
		when:   func(s intake.Signals) bool { return s.CuesLocked || s.CallSheetSent },
		steps:  []string{show.StepPressDraft},
		status: fixed(show.StepHandoff),
	},
	{
		when:   func(s intake.Signals) bool { return s.CallSheetSent },
		steps:  []string{show.StepPressApproval},
		status: fixed(show.StepInProgress),
	},
	{
		when:   func(s intake.Signals) bool { return s.ShowCompleted },
		steps:  []string{show.StepPerformanceExecution},
		status: fixed(show.StepDone),
	},
	{
		when:   func(s intake.Signals) bool { return s.ShowCompleted },
		steps:  []string{show.StepPostShowReport},
		status: fixed(show.StepInProgress),
	},
	{
		when:   func(s intake.Signals) bool { return s.HasBlockedLanguage },
		steps:  []string{show.StepIntakeValidation, show.StepStaffingConfirmation, show.StepTechnicalSync},
		status: fixed(show.StepBlocked),
	},
}

// ApplyEmailSignals runs the signal rule table over the step list.
func ApplyEmailSignals(stepList []show.WorkflowStep, signals intake.Signals) {
	index := make(map[string]*show.WorkflowStep, len(stepList))
	for i := range stepList {
		index[stepList[i].ID] = &stepList[i]
	}
	for _, rule := range signalRules {
		if !rule.when(signals) {
			continue
		}
		status := rule.status(signals)
		for _, id := range rule.steps {
			Apply(index[id], status)
		}
	}
}

// SyncOwnersFromStaff copies assignee names into step owners via the
// owner-role join. Steps whose role has no assignee keep their owner.
func SyncOwnersFromStaff(stepList []show.WorkflowStep, assignments []show.StaffAssignment) {
	byRole := make(map[string]show.StaffAssignment, len(assignments))
	for _, assignment := range assignments {
		byRole[normalizeRole(assignment.Role)] = assignment
	}
	for i := range stepList {
		assignment, ok := byRole[normalizeRole(stepList[i].OwnerRole)]
		if !ok || assignment.Assignee == "" {
			continue
		}
		stepList[i].Owner = fmt.Sprintf("%s (%s)", assignment.Assignee, assignment.Role)
	}
}

func normalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
