package show

// ReconcileState maps a persisted state onto the canonical defaults. Fixed
// collections (workflow steps, staff assignments, tech checklist) are rebuilt
// in canonical order: persisted rows matched by id (after legacy-id folding)
// keep their mutable fields, unknown rows are dropped, missing rows come from
// the defaults. Variable collections (cues, crew, inbox) pass through, with
// the inbox re-capped.
//
// applicable selects whether the production type carries the stage workflow
// at all; when false the step list is left empty so the other views stay
// meaningful without a dead step table.
func ReconcileState(persisted State, applicable bool) State {
	out := persisted
	if applicable {
		out.WorkflowSteps = reconcileSteps(persisted.WorkflowSteps)
	} else {
		out.WorkflowSteps = nil
	}
	out.StaffAssignments = reconcileStaff(persisted.StaffAssignments)
	out.TechChecklist = reconcileChecklist(persisted.TechChecklist)
	if overflow := len(out.EmailInbox) - InboxCap; overflow > 0 {
		out.EmailInbox = append([]EmailInboxEntry(nil), out.EmailInbox[overflow:]...)
	}
	if out.ActiveCueID != "" && out.CueIndex(out.ActiveCueID) < 0 {
		out.ActiveCueID = ""
	}
	return out
}

func reconcileSteps(persisted []WorkflowStep) []WorkflowStep {
	byID := make(map[string]WorkflowStep, len(persisted))
	for _, step := range persisted {
		id := CanonicalStepID(step.ID)
		if _, seen := byID[id]; seen {
			continue // first row wins when legacy and canonical ids coexist
		}
		step.ID = id
		byID[id] = step
	}

	defaults := DefaultWorkflowSteps()
	out := make([]WorkflowStep, 0, len(defaults))
	for _, def := range defaults {
		if prev, ok := byID[def.ID]; ok {
			def.Status = prev.Status
			def.Owner = prev.Owner
			if prev.When != "" {
				def.When = prev.When
			}
		}
		out = append(out, def)
	}
	return out
}

func reconcileStaff(persisted []StaffAssignment) []StaffAssignment {
	byID := make(map[string]StaffAssignment, len(persisted))
	for _, row := range persisted {
		id := row.ID
		if canonical, ok := legacyStaffIDs[id]; ok {
			id = canonical
		}
		if _, seen := byID[id]; seen {
			continue
		}
		row.ID = id
		byID[id] = row
	}

	defaults := DefaultStaffAssignments()
	out := make([]StaffAssignment, 0, len(defaults))
	for _, def := range defaults {
		if prev, ok := byID[def.ID]; ok {
			def.Assignee = prev.Assignee
			def.Email = prev.Email
			def.Phone = prev.Phone
			if prev.Role != "" {
				def.Role = prev.Role
			}
		}
		out = append(out, def)
	}
	return out
}

func reconcileChecklist(persisted []TechChecklistItem) []TechChecklistItem {
	byID := make(map[string]TechChecklistItem, len(persisted))
	for _, item := range persisted {
		id := item.ID
		if canonical, ok := legacyCheckIDs[id]; ok {
			id = canonical
		}
		if _, seen := byID[id]; seen {
			continue
		}
		item.ID = id
		byID[id] = item
	}

	defaults := DefaultTechChecklist()
	out := make([]TechChecklistItem, 0, len(defaults))
	for _, def := range defaults {
		if prev, ok := byID[def.ID]; ok {
			def.Status = prev.Status
			def.Notes = prev.Notes
		}
		out = append(out, def)
	}
	return out
}
