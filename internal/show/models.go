package show

import (
	"strings"
	"time"
)

// Department identifies the technical department a cue or crew member
// belongs to.
type Department string

const (
	DeptStage Department = "STAGE"
	DeptLX    Department = "LX"
	DeptAudio Department = "AUDIO"
	DeptVideo Department = "VIDEO"
	DeptDeck  Department = "DECK"
	DeptFly   Department = "FLY"
	DeptFOH   Department = "FOH"
)

var allDepartments = []Department{
	DeptStage,
	DeptLX,
	DeptAudio,
	DeptVideo,
	DeptDeck,
	DeptFly,
	DeptFOH,
}

// AllDepartments returns the ordered list of known departments.
func AllDepartments() []Department {
	cp := make([]Department, len(allDepartments))
	copy(cp, allDepartments)
	return cp
}

// ParseDepartment converts a string into a known Department.
func ParseDepartment(value string) (Department, bool) {
	normalized := Department(strings.ToUpper(strings.TrimSpace(value)))
	for _, dept := range allDepartments {
		if dept == normalized {
			return dept, true
		}
	}
	return "", false
}

// CueStatus is the live-operation state of a cue. There is no enforced
// transition graph: operators need to undo or correct rapidly during a show,
// so any status may follow any other.
type CueStatus string

const (
	CuePlanned  CueStatus = "planned"
	CueStandby  CueStatus = "standby"
	CueGo       CueStatus = "go"
	CueExecuted CueStatus = "executed"
	CueHold     CueStatus = "hold"
)

var cueStatuses = []CueStatus{CuePlanned, CueStandby, CueGo, CueExecuted, CueHold}

// ParseCueStatus converts a string into a known CueStatus.
func ParseCueStatus(value string) (CueStatus, bool) {
	normalized := CueStatus(strings.ToLower(strings.TrimSpace(value)))
	for _, status := range cueStatuses {
		if status == normalized {
			return status, true
		}
	}
	return "", false
}

// StepStatus is the lifecycle state of a workflow step.
type StepStatus string

const (
	StepNotStarted StepStatus = "not_started"
	StepInProgress StepStatus = "in_progress"
	StepBlocked    StepStatus = "blocked"
	StepHandoff    StepStatus = "handoff"
	StepDone       StepStatus = "done"
)

var stepStatuses = []StepStatus{StepNotStarted, StepInProgress, StepBlocked, StepHandoff, StepDone}

// ParseStepStatus converts a string into a known StepStatus.
func ParseStepStatus(value string) (StepStatus, bool) {
	normalized := StepStatus(strings.ToLower(strings.TrimSpace(value)))
	for _, status := range stepStatuses {
		if status == normalized {
			return status, true
		}
	}
	return "", false
}

// ChecklistStatus is the state of one technical preflight item.
type ChecklistStatus string

const (
	CheckPending ChecklistStatus = "pending"
	CheckReady   ChecklistStatus = "ready"
	CheckIssue   ChecklistStatus = "issue"
)

var checklistStatuses = []ChecklistStatus{CheckPending, CheckReady, CheckIssue}

// ParseChecklistStatus converts a string into a known ChecklistStatus.
func ParseChecklistStatus(value string) (ChecklistStatus, bool) {
	normalized := ChecklistStatus(strings.ToLower(strings.TrimSpace(value)))
	for _, status := range checklistStatuses {
		if status == normalized {
			return status, true
		}
	}
	return "", false
}

// Cue is one scheduled, callable unit of show action. CueID is a human label,
// not a uniqueness key; position in the cue array is the show order.
type Cue struct {
	ID          string     `json:"id"`
	CueID       string     `json:"cueId"`
	Department  Department `json:"department"`
	ScriptRef   string     `json:"scriptRef"`
	Environment string     `json:"environment"`
	Time        string     `json:"time"`
	Duration    string     `json:"duration"`
	Item        string     `json:"item"`
	CrewMember  string     `json:"crewMember"`
	Status      CueStatus  `json:"status"`
	Notes       string     `json:"notes"`
}

// Key returns the dedup key for a cue. Two cues sharing a key are the same
// cue; this is what makes webhook redelivery idempotent.
func (c Cue) Key() string {
	return strings.ToLower(strings.TrimSpace(c.Time)) + "|" + strings.ToLower(strings.TrimSpace(c.Item))
}

// CrewMember is one person on the production roster. Role should resolve to a
// roles.Catalog entry for Department to be meaningful.
type CrewMember struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	Department Department `json:"department"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	CallTime   string     `json:"callTime"`
	Notes      string     `json:"notes"`
	Status     string     `json:"status"`
}

// Key returns the dedup key for a crew member.
func (m CrewMember) Key() string {
	return strings.ToLower(strings.TrimSpace(m.Name)) + "|" + strings.ToLower(strings.TrimSpace(m.Role))
}

// StaffAssignment maps one canonical production role to an assignee. The set
// of rows is fixed; Assignee is a free-text name, not a foreign key.
type StaffAssignment struct {
	ID             string `json:"id"`
	Role           string `json:"role"`
	Assignee       string `json:"assignee"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Responsibility string `json:"responsibility"`
}

// WorkflowStep is one named production step. OwnerRole binds the step to a
// StaffAssignment role for owner synchronization.
type WorkflowStep struct {
	ID        string     `json:"id"`
	What      string     `json:"what"`
	When      string     `json:"when"`
	How       string     `json:"how"`
	Owner     string     `json:"owner"`
	OwnerRole string     `json:"ownerRole"`
	Status    StepStatus `json:"status"`
}

// TechChecklistItem is one technical preflight item scoped to a department.
type TechChecklistItem struct {
	ID         string          `json:"id"`
	Department Department      `json:"department"`
	Item       string          `json:"item"`
	OwnerRole  string          `json:"ownerRole"`
	Status     ChecklistStatus `json:"status"`
	Notes      string          `json:"notes"`
}

// EmailInboxEntry is one row of the append-only intake audit log.
type EmailInboxEntry struct {
	ID         string `json:"id"`
	Source     string `json:"source"`
	From       string `json:"from"`
	Subject    string `json:"subject"`
	ReceivedAt string `json:"receivedAt"`
	IngestedAt string `json:"ingestedAt"`
	Summary    string `json:"summary"`
	Preview    string `json:"preview"`
}

// InboxCap bounds the email audit log to the most recent entries. The log is
// intentionally not deduplicated; redelivered webhooks append a new row.
const InboxCap = 60

// State is the single persisted document for one production. The external
// store treats it as an opaque blob.
type State struct {
	Cues             []Cue               `json:"cues"`
	Crew             []CrewMember        `json:"crew"`
	OpenMicQueue     []CrewMember        `json:"openMicQueue"`
	SchedulingMode   string              `json:"schedulingMode"`
	WorkflowSteps    []WorkflowStep      `json:"workflowSteps"`
	StaffAssignments []StaffAssignment   `json:"staffAssignments"`
	TechChecklist    []TechChecklistItem `json:"techChecklist"`
	EmailInbox       []EmailInboxEntry   `json:"emailInbox"`
	ActiveCueID      string              `json:"activeCueId,omitempty"`
	LastEmailAt      string              `json:"lastEmailReceivedAt,omitempty"`
	LastUpdated      string              `json:"lastUpdated,omitempty"`
}

// Touch stamps LastUpdated with the current UTC time.
func (s *State) Touch(now time.Time) {
	s.LastUpdated = now.UTC().Format(time.RFC3339)
}

// AppendInbox appends an audit entry and trims the log to the newest InboxCap
// entries.
func (s *State) AppendInbox(entry EmailInboxEntry) {
	s.EmailInbox = append(s.EmailInbox, entry)
	if overflow := len(s.EmailInbox) - InboxCap; overflow > 0 {
		s.EmailInbox = append([]EmailInboxEntry(nil), s.EmailInbox[overflow:]...)
	}
}

// CueIndex returns the array index of the cue with the given id, or -1.
func (s *State) CueIndex(id string) int {
	for i, cue := range s.Cues {
		if cue.ID == id {
			return i
		}
	}
	return -1
}

// StepByID returns a pointer into WorkflowSteps for the given step id, or nil.
func (s *State) StepByID(id string) *WorkflowStep {
	for i := range s.WorkflowSteps {
		if s.WorkflowSteps[i].ID == id {
			return &s.WorkflowSteps[i]
		}
	}
	return nil
}
