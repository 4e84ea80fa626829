package show

// Canonical workflow step ids. These are stable across schema revisions;
// renamed ids from earlier revisions are mapped back via legacyStepIDs.
const (
	StepEmailIntake          = "email_intake"
	StepIntakeValidation     = "intake_validation"
	StepStaffingConfirmation = "staffing_confirmation"
	StepTechnicalSync        = "technical_sync"
	StepRunOfShowLock        = "run_of_show_lock"
	StepPressDraft           = "press_draft"
	StepPressApproval        = "press_approval"
	StepPressDistribution    = "press_distribution"
	StepPerformanceExecution = "performance_execution"
	StepPostShowReport       = "post_show_report"
)

// legacyStepIDs maps step ids from earlier schema revisions onto the current
// canonical ids so reconciliation never drops or duplicates a step.
var legacyStepIDs = map[string]string{
	"email_ingest":     StepEmailIntake,
	"intake_review":    StepIntakeValidation,
	"staffing":         StepStaffingConfirmation,
	"tech_sync":        StepTechnicalSync,
	"ros_lock":         StepRunOfShowLock,
	"press_release":    StepPressDistribution,
	"show_execution":   StepPerformanceExecution,
	"post_show_recap":  StepPostShowReport,
	"press_draft_copy": StepPressDraft,
}

// CanonicalStepID resolves a persisted step id, folding legacy aliases onto
// the current canonical id.
func CanonicalStepID(id string) string {
	if canonical, ok := legacyStepIDs[id]; ok {
		return canonical
	}
	return id
}

// DefaultWorkflowSteps returns the canonical step list for a stage-managed
// production. The set is fixed: rows are reconciled by id, never appended to
// or removed by users.
func DefaultWorkflowSteps() []WorkflowStep {
	return []WorkflowStep{
		{
			ID:        StepEmailIntake,
			What:      "Collect production emails",
			When:      "As received",
			How:       "Webhook intake parses cue and crew lines into the run of show",
			OwnerRole: "Production Manager",
			Status:    StepNotStarted,
		},
		{
			ID:        StepIntakeValidation,
			What:      "Validate parsed cues and crew",
			When:      "After each intake",
			How:       "Review imported rows, correct departments and times",
			OwnerRole: "Stage Manager",
			Status:    StepNotStarted,
		},
		{
			ID:        StepStaffingConfirmation,
			What:      "Confirm staffing for every role",
			When:      "Before technical rehearsal",
			How:       "Fill each staff assignment from the crew roster",
			OwnerRole: "Production Manager",
			Status:    StepNotStarted,
		},
		{
			ID:        StepTechnicalSync,
			What:      "Complete the technical preflight checklist",
			When:      "Before run-of-show lock",
			How:       "Each department marks its checklist items ready",
			OwnerRole: "Technical Director",
			Status:    StepNotStarted,
		},
		{
			ID:        StepRunOfShowLock,
			What:      "Lock the run of show",
			When:      "Once staffing and tech are ready",
			How:       "Freeze the cue timeline and staffing for performance",
			OwnerRole: "Stage Manager",
			Status:    StepNotStarted,
		},
		{
			ID:        StepPressDraft,
			What:      "Draft press materials",
			When:      "After run-of-show lock",
			How:       "Prepare the press page from the locked timeline",
			OwnerRole: "Press Coordinator",
			Status:    StepNotStarted,
		},
		{
			ID:        StepPressApproval,
			What:      "Approve press materials",
			When:      "Before distribution",
			How:       "Production manager signs off on the press draft",
			OwnerRole: "Production Manager",
			Status:    StepNotStarted,
		},
		{
			ID:        StepPressDistribution,
			What:      "Distribute press materials",
			When:      "After approval",
			How:       "Publish the press page and notify outlets",
			OwnerRole: "Press Coordinator",
			Status:    StepNotStarted,
		},
		{
			ID:        StepPerformanceExecution,
			What:      "Execute the performance",
			When:      "Show time",
			How:       "Call cues from the console in show order",
			OwnerRole: "Stage Manager",
			Status:    StepNotStarted,
		},
		{
			ID:        StepPostShowReport,
			What:      "File the post-show report",
			When:      "After strike",
			How:       "Summarize execution, holds, and issues for the venue",
			OwnerRole: "Production Manager",
			Status:    StepNotStarted,
		},
	}
}

// DefaultStaffAssignments returns the fixed set of canonical production
// roles. Assignees start empty and are filled by autofill or direct edits.
func DefaultStaffAssignments() []StaffAssignment {
	return []StaffAssignment{
		{ID: "staff_production_manager", Role: "Production Manager", Responsibility: "Overall production schedule and signoffs"},
		{ID: "staff_stage_manager", Role: "Stage Manager", Responsibility: "Run of show, cue calling, rehearsal discipline"},
		{ID: "staff_technical_director", Role: "Technical Director", Responsibility: "Technical preflight across departments"},
		{ID: "staff_lighting_designer", Role: "Lighting Designer", Responsibility: "Lighting plot, focus, and LX cues"},
		{ID: "staff_audio_engineer", Role: "Audio Engineer", Responsibility: "FOH mix, monitors, and audio cues"},
		{ID: "staff_video_engineer", Role: "Video Engineer", Responsibility: "Projection, playback, and video cues"},
		{ID: "staff_deck_chief", Role: "Deck Chief", Responsibility: "Scene shifts, props, and deck crew"},
		{ID: "staff_fly_operator", Role: "Fly Operator", Responsibility: "Fly rail moves and rigging checks"},
		{ID: "staff_foh_manager", Role: "Front of House Manager", Responsibility: "House open, doors, and audience flow"},
		{ID: "staff_press_coordinator", Role: "Press Coordinator", Responsibility: "Press page drafting and distribution"},
	}
}

// legacyStaffIDs maps staff row ids from earlier schema revisions.
var legacyStaffIDs = map[string]string{
	"staff_td":        "staff_technical_director",
	"staff_ld":        "staff_lighting_designer",
	"staff_a1":        "staff_audio_engineer",
	"staff_house_mgr": "staff_foh_manager",
}

// DefaultTechChecklist returns the canonical technical preflight checklist,
// one or more items per department.
func DefaultTechChecklist() []TechChecklistItem {
	return []TechChecklistItem{
		{ID: "check_stage_spikes", Department: DeptStage, Item: "Spike marks set and taped", OwnerRole: "Stage Manager", Status: CheckPending},
		{ID: "check_lx_dimmers", Department: DeptLX, Item: "Dimmer check complete", OwnerRole: "Lighting Designer", Status: CheckPending},
		{ID: "check_lx_focus", Department: DeptLX, Item: "Focus locked to plot", OwnerRole: "Lighting Designer", Status: CheckPending},
		{ID: "check_audio_line", Department: DeptAudio, Item: "Line check all inputs", OwnerRole: "Audio Engineer", Status: CheckPending},
		{ID: "check_audio_monitors", Department: DeptAudio, Item: "Monitor mixes confirmed", OwnerRole: "Audio Engineer", Status: CheckPending},
		{ID: "check_video_playback", Department: DeptVideo, Item: "Playback and projection aligned", OwnerRole: "Video Engineer", Status: CheckPending},
		{ID: "check_deck_preset", Department: DeptDeck, Item: "Deck preset walked", OwnerRole: "Deck Chief", Status: CheckPending},
		{ID: "check_fly_weights", Department: DeptFly, Item: "Fly weights balanced", OwnerRole: "Fly Operator", Status: CheckPending},
		{ID: "check_foh_house", Department: DeptFOH, Item: "House preset and doors briefed", OwnerRole: "Front of House Manager", Status: CheckPending},
	}
}

// legacyCheckIDs maps checklist item ids from earlier schema revisions.
var legacyCheckIDs = map[string]string{
	"check_lx_dimmer_check": "check_lx_dimmers",
	"check_audio_linecheck": "check_audio_line",
	"check_house_preset":    "check_foh_house",
}
