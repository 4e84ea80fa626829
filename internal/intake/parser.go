package intake

import (
	"strings"

	"stagehand/internal/roles"
	"stagehand/internal/show"
)

// ImportNotes is the provenance marker attached to every cue produced by
// email intake.
const ImportNotes = "Imported from email intake"

// Signals are boolean facts inferred from the whole email body. They drive
// workflow-step transitions downstream.
type Signals struct {
	CuesUpdated        bool `json:"cuesUpdated"`
	CrewUpdated        bool `json:"crewUpdated"`
	CuesLocked         bool `json:"cuesLocked"`
	HasBlockedLanguage bool `json:"hasBlockedLanguage"`
	CallSheetSent      bool `json:"callSheetSent"`
	ShowCompleted      bool `json:"showCompleted"`
}

// Result is the parser output. Candidates carry no ids; the merge engine
// assigns ids when a candidate is actually appended.
type Result struct {
	Cues         []show.Cue
	CrewMembers  []show.CrewMember
	UnknownLines int
	Signals      Signals
}

// Parse converts a raw email body into candidates and signals. It performs
// no I/O and is deterministic for identical input.
func Parse(body string, theaterProduction bool) Result {
	catalog := roles.ForProduction(theaterProduction)

	var result Result
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if cue, ok := parseCueLine(line); ok {
			result.Cues = append(result.Cues, cue)
			continue
		}
		if member, ok := parseCrewLine(line, catalog); ok {
			result.CrewMembers = append(result.CrewMembers, member)
			continue
		}
		result.UnknownLines++
	}

	scanSignals(body, &result.Signals)
	result.Signals.CuesUpdated = len(result.Cues) > 0
	result.Signals.CrewUpdated = len(result.CrewMembers) > 0
	return result
}

func parseCueLine(line string) (show.Cue, bool) {
	m := cuePattern.FindStringSubmatch(line)
	if m == nil {
		return show.Cue{}, false
	}
	rawTime := strings.TrimSpace(m[1])
	rest := strings.TrimSpace(m[2])
	if rest == "" {
		return show.Cue{}, false
	}

	item := rest
	assignment := ""
	if idx := strings.Index(rest, "|"); idx >= 0 {
		item = strings.TrimSpace(rest[:idx])
		assignment = strings.TrimSpace(rest[idx+1:])
	}
	if item == "" {
		return show.Cue{}, false
	}

	cueTime := NormalizeEmailTime(rawTime)
	if cueTime == "" {
		cueTime = rawTime
	}

	return show.Cue{
		Department: inferDepartment(item + " " + assignment),
		Time:       cueTime,
		Item:       item,
		CrewMember: assignment,
		Status:     show.CuePlanned,
		Notes:      ImportNotes,
	}, true
}

func parseCrewLine(line string, catalog *roles.Catalog) (show.CrewMember, bool) {
	m := rolePattern.FindStringSubmatch(line)
	if m == nil {
		return show.CrewMember{}, false
	}
	role, ok := catalog.Match(m[1])
	if !ok {
		// Not a known role token: the line falls through to unmapped.
		return show.CrewMember{}, false
	}
	detail := strings.TrimSpace(m[2])
	if detail == "" {
		return show.CrewMember{}, false
	}

	email := ""
	if found := emailAddressPattern.FindString(detail); found != "" {
		email = found
	}
	cleaned := emailAddressPattern.ReplaceAllString(detail, " ")

	phone := ""
	if found := phonePattern.FindString(cleaned); found != "" {
		phone = strings.TrimSpace(found)
	}
	cleaned = phonePattern.ReplaceAllString(cleaned, " ")

	cleaned = callTimeLabel.ReplaceAllString(cleaned, " ")
	callTime := ""
	if found := callTimePattern.FindString(cleaned); found != "" {
		callTime = strings.TrimSpace(found)
	}
	cleaned = callTimePattern.ReplaceAllString(cleaned, " ")

	name := tidyName(cleaned)
	if name == "" {
		name = detail
	}

	return show.CrewMember{
		Name:       name,
		Role:       role.Name,
		Department: role.Department,
		Email:      email,
		Phone:      phone,
		CallTime:   callTime,
	}, true
}

// tidyName collapses whitespace and strips the separator debris left behind
// after token extraction.
func tidyName(value string) string {
	fields := strings.Fields(value)
	joined := strings.Join(fields, " ")
	return strings.Trim(joined, " ,;:-–—|")
}
