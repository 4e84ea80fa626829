// Package staffing fills the fixed staff assignment rows from the crew
// roster.
//
// Autofill never overwrites a non-empty assignee: an operator's explicit
// choice always survives re-ingestion. Owner propagation into workflow steps
// lives in the steps package; callers resync owners after any assignment
// edit, which is idempotent.
package staffing

import (
	"strings"

	"stagehand/internal/roles"
	"stagehand/internal/show"
)

// AutofillFromCrew fills each assignment with an empty assignee from the
// first crew member whose catalog-resolved role equals the assignment's role
// (case-insensitive). It reports how many assignments were filled.
func AutofillFromCrew(assignments []show.StaffAssignment, crew []show.CrewMember, catalog *roles.Catalog) int {
	filled := 0
	for i := range assignments {
		if strings.TrimSpace(assignments[i].Assignee) != "" {
			continue
		}
		for _, member := range crew {
			if strings.TrimSpace(member.Name) == "" {
				continue
			}
			role, ok := catalog.Match(member.Role)
			if !ok {
				continue
			}
			if !strings.EqualFold(role.Name, assignments[i].Role) {
				continue
			}
			assignments[i].Assignee = member.Name
			assignments[i].Email = member.Email
			assignments[i].Phone = member.Phone
			filled++
			break
		}
	}
	return filled
}

// AssignedCount reports how many assignments carry a non-empty assignee.
func AssignedCount(assignments []show.StaffAssignment) int {
	count := 0
	for _, assignment := range assignments {
		if strings.TrimSpace(assignment.Assignee) != "" {
			count++
		}
	}
	return count
}
