package show

import (
	"fmt"
	"testing"
	"time"
)

func TestParseDepartment(t *testing.T) {
	if dept, ok := ParseDepartment(" lx "); !ok || dept != DeptLX {
		t.Fatalf("ParseDepartment(lx) = %q, %v", dept, ok)
	}
	if _, ok := ParseDepartment("catering"); ok {
		t.Fatal("unknown department must not parse")
	}
}

func TestParseCueStatus(t *testing.T) {
	if status, ok := ParseCueStatus("GO"); !ok || status != CueGo {
		t.Fatalf("ParseCueStatus(GO) = %q, %v", status, ok)
	}
	if _, ok := ParseCueStatus("paused"); ok {
		t.Fatal("unknown cue status must not parse")
	}
}

func TestParseStepStatus(t *testing.T) {
	if status, ok := ParseStepStatus(" Done "); !ok || status != StepDone {
		t.Fatalf("ParseStepStatus(Done) = %q, %v", status, ok)
	}
	if _, ok := ParseStepStatus("finished"); ok {
		t.Fatal("unknown step status must not parse")
	}
}

func TestCueKeyNormalizesCaseAndSpace(t *testing.T) {
	a := Cue{Time: "19:00", Item: "House Opens"}
	b := Cue{Time: " 19:00 ", Item: "house opens"}
	if a.Key() != b.Key() {
		t.Fatalf("keys differ: %q vs %q", a.Key(), b.Key())
	}
}

func TestCrewMemberKey(t *testing.T) {
	a := CrewMember{Name: "Dana Hall", Role: "Lighting Designer"}
	b := CrewMember{Name: "DANA HALL", Role: "lighting designer"}
	if a.Key() != b.Key() {
		t.Fatalf("keys differ: %q vs %q", a.Key(), b.Key())
	}
	c := CrewMember{Name: "Dana Hall", Role: "Stage Manager"}
	if a.Key() == c.Key() {
		t.Fatal("different roles must produce different keys")
	}
}

func TestAppendInboxCapsLog(t *testing.T) {
	var state State
	for i := 0; i < InboxCap+5; i++ {
		state.AppendInbox(EmailInboxEntry{ID: fmt.Sprintf("entry-%d", i)})
	}
	if len(state.EmailInbox) != InboxCap {
		t.Fatalf("expected inbox capped at %d, got %d", InboxCap, len(state.EmailInbox))
	}
	if state.EmailInbox[0].ID != "entry-5" {
		t.Fatalf("expected oldest entries dropped, got first id %q", state.EmailInbox[0].ID)
	}
	last := state.EmailInbox[len(state.EmailInbox)-1]
	if last.ID != fmt.Sprintf("entry-%d", InboxCap+4) {
		t.Fatalf("expected newest entry kept, got %q", last.ID)
	}
}

func TestTouchStampsUTC(t *testing.T) {
	var state State
	state.Touch(time.Date(2026, 3, 14, 20, 0, 0, 0, time.FixedZone("CST", -6*3600)))
	if state.LastUpdated != "2026-03-15T02:00:00Z" {
		t.Fatalf("unexpected LastUpdated: %q", state.LastUpdated)
	}
}

func TestStepByID(t *testing.T) {
	state := State{WorkflowSteps: DefaultWorkflowSteps()}
	step := state.StepByID(StepTechnicalSync)
	if step == nil {
		t.Fatal("expected technical sync step")
	}
	step.Status = StepDone
	if state.StepByID(StepTechnicalSync).Status != StepDone {
		t.Fatal("StepByID must return a pointer into the slice")
	}
	if state.StepByID("missing") != nil {
		t.Fatal("unknown id must return nil")
	}
}
