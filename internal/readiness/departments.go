package readiness

import "stagehand/internal/show"

// DepartmentState is a department's aggregated readiness classification.
type DepartmentState string

const (
	DeptNotUsed  DepartmentState = "Not Used"
	DeptPlanned  DepartmentState = "Planned"
	DeptActive   DepartmentState = "Active"
	DeptBlocked  DepartmentState = "Blocked"
	DeptComplete DepartmentState = "Complete"
)

// DepartmentView aggregates the cues and checklist items scoped to one
// department.
type DepartmentView struct {
	Department     show.Department `json:"department"`
	CueCount       int             `json:"cueCount"`
	ChecklistCount int             `json:"checklistCount"`
	Executed       int             `json:"executed"`
	Go             int             `json:"go"`
	Standby        int             `json:"standby"`
	Hold           int             `json:"hold"`
	IssueChecks    int             `json:"issueChecks"`
	Readiness      DepartmentState `json:"readiness"`
}

// DepartmentViews computes one view per known department, in canonical
// department order.
func DepartmentViews(cues []show.Cue, checklist []show.TechChecklistItem) []DepartmentView {
	views := make([]DepartmentView, 0, len(show.AllDepartments()))
	for _, dept := range show.AllDepartments() {
		view := DepartmentView{Department: dept}
		for _, cue := range cues {
			if cue.Department != dept {
				continue
			}
			view.CueCount++
			switch cue.Status {
			case show.CueExecuted:
				view.Executed++
			case show.CueGo:
				view.Go++
			case show.CueStandby:
				view.Standby++
			case show.CueHold:
				view.Hold++
			}
		}
		for _, item := range checklist {
			if item.Department != dept {
				continue
			}
			view.ChecklistCount++
			if item.Status == show.CheckIssue {
				view.IssueChecks++
			}
		}
		view.Readiness = classify(view)
		views = append(views, view)
	}
	return views
}

// classify orders the states by precedence: holds and checklist issues block,
// Complete requires every cue executed with a clean checklist, activity beats
// Planned, and a department with nothing scoped to it is Not Used.
func classify(view DepartmentView) DepartmentState {
	if view.CueCount == 0 && view.ChecklistCount == 0 {
		return DeptNotUsed
	}
	if view.Hold > 0 || view.IssueChecks > 0 {
		return DeptBlocked
	}
	if view.CueCount > 0 && view.Executed == view.CueCount {
		return DeptComplete
	}
	if view.Standby > 0 || view.Go > 0 || view.Executed > 0 {
		return DeptActive
	}
	return DeptPlanned
}
