// Package readiness rolls the technical preflight checklist up into single
// readiness states, overall and per department.
package readiness

import "stagehand/internal/show"

// Rollup classifies a checklist as one readiness state. Issue dominates;
// otherwise the state follows how many items are ready. The result is a pure
// function of the multiset of statuses.
func Rollup(items []show.TechChecklistItem) show.StepStatus {
	if len(items) == 0 {
		return show.StepNotStarted
	}
	ready := 0
	for _, item := range items {
		switch item.Status {
		case show.CheckIssue:
			return show.StepBlocked
		case show.CheckReady:
			ready++
		}
	}
	switch ready {
	case 0:
		return show.StepNotStarted
	case len(items):
		return show.StepDone
	default:
		return show.StepInProgress
	}
}
