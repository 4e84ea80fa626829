package readiness

import (
	"testing"

	"stagehand/internal/show"
)

func viewFor(t *testing.T, views []DepartmentView, dept show.Department) DepartmentView {
	t.Helper()
	for _, view := range views {
		if view.Department == dept {
			return view
		}
	}
	t.Fatalf("no view for department %s", dept)
	return DepartmentView{}
}

func TestDepartmentViewsCanonicalOrder(t *testing.T) {
	views := DepartmentViews(nil, nil)
	if len(views) != len(show.AllDepartments()) {
		t.Fatalf("expected one view per department, got %d", len(views))
	}
	for i, dept := range show.AllDepartments() {
		if views[i].Department != dept {
			t.Fatalf("view %d is %s, want %s", i, views[i].Department, dept)
		}
	}
}

func TestDepartmentClassification(t *testing.T) {
	cues := []show.Cue{
		{Department: show.DeptLX, Status: show.CueExecuted},
		{Department: show.DeptLX, Status: show.CueExecuted},
		{Department: show.DeptAudio, Status: show.CueStandby},
		{Department: show.DeptAudio, Status: show.CuePlanned},
		{Department: show.DeptDeck, Status: show.CuePlanned},
		{Department: show.DeptFly, Status: show.CueHold},
		{Department: show.DeptFly, Status: show.CueExecuted},
	}
	checklist := []show.TechChecklistItem{
		{Department: show.DeptLX, Status: show.CheckReady},
		{Department: show.DeptVideo, Status: show.CheckIssue},
	}

	views := DepartmentViews(cues, checklist)

	if got := viewFor(t, views, show.DeptLX).Readiness; got != DeptComplete {
		t.Errorf("LX: got %s, want Complete", got)
	}
	if got := viewFor(t, views, show.DeptAudio).Readiness; got != DeptActive {
		t.Errorf("AUDIO: got %s, want Active", got)
	}
	if got := viewFor(t, views, show.DeptDeck).Readiness; got != DeptPlanned {
		t.Errorf("DECK: got %s, want Planned", got)
	}
	if got := viewFor(t, views, show.DeptFly).Readiness; got != DeptBlocked {
		t.Errorf("FLY: got %s, want Blocked (hold outranks executed cues)", got)
	}
	if got := viewFor(t, views, show.DeptVideo).Readiness; got != DeptBlocked {
		t.Errorf("VIDEO: got %s, want Blocked (checklist issue)", got)
	}
	if got := viewFor(t, views, show.DeptFOH).Readiness; got != DeptNotUsed {
		t.Errorf("FOH: got %s, want Not Used", got)
	}
}

func TestDepartmentViewCounts(t *testing.T) {
	cues := []show.Cue{
		{Department: show.DeptAudio, Status: show.CueGo},
		{Department: show.DeptAudio, Status: show.CueHold},
		{Department: show.DeptAudio, Status: show.CueExecuted},
	}
	view := viewFor(t, DepartmentViews(cues, nil), show.DeptAudio)
	if view.CueCount != 3 || view.Go != 1 || view.Hold != 1 || view.Executed != 1 {
		t.Fatalf("unexpected counts: %+v", view)
	}
}

func TestChecklistAloneMakesDepartmentPlanned(t *testing.T) {
	checklist := []show.TechChecklistItem{{Department: show.DeptStage, Status: show.CheckPending}}
	view := viewFor(t, DepartmentViews(nil, checklist), show.DeptStage)
	if view.Readiness != DeptPlanned {
		t.Fatalf("got %s, want Planned", view.Readiness)
	}
}
