package intake

import (
	"reflect"
	"testing"

	"stagehand/internal/show"
)

func TestParseCueLines(t *testing.T) {
	body := "19:00 - House opens | FOH team\n" +
		"7:30 pm – Band soundcheck\n" +
		"22:15: Blackout and bows\n"

	result := Parse(body, false)
	if len(result.Cues) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(result.Cues))
	}
	if result.UnknownLines != 0 {
		t.Fatalf("expected no unmapped lines, got %d", result.UnknownLines)
	}

	first := result.Cues[0]
	if first.Time != "19:00" || first.Item != "House opens" || first.CrewMember != "FOH team" {
		t.Fatalf("unexpected first cue: %+v", first)
	}
	if first.Department != show.DeptFOH {
		t.Fatalf("expected FOH department, got %s", first.Department)
	}
	if first.Status != show.CuePlanned {
		t.Fatalf("expected planned status, got %s", first.Status)
	}
	if first.Notes != ImportNotes {
		t.Fatalf("expected import provenance notes, got %q", first.Notes)
	}

	second := result.Cues[1]
	if second.Time != "19:30" {
		t.Fatalf("expected 7:30 pm to normalize to 19:30, got %q", second.Time)
	}
	if second.Department != show.DeptAudio {
		t.Fatalf("expected AUDIO for a soundcheck cue, got %s", second.Department)
	}

	third := result.Cues[2]
	if third.Time != "22:15" || third.CrewMember != "" {
		t.Fatalf("unexpected third cue: %+v", third)
	}
	if third.Department != show.DeptLX {
		t.Fatalf("expected LX for a blackout cue, got %s", third.Department)
	}
}

func TestParseCueLineKeepsRawTimeWhenUnparseable(t *testing.T) {
	// The time token has to lead the line for the cue pattern to fire at
	// all, so an unparseable-but-matching token is rare; a bare hour like
	// "25" never matches the pattern, but "12:99" does.
	result := Parse("12:99 - Walkout music", false)
	if len(result.Cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(result.Cues))
	}
	if result.Cues[0].Time != "12:99" {
		t.Fatalf("expected raw token to be kept, got %q", result.Cues[0].Time)
	}
}

func TestParseCrewLine(t *testing.T) {
	body := "Lighting Designer: Dana Hall dana@example.com 210-555-0144 Call time 5:30 PM"

	result := Parse(body, false)
	if len(result.CrewMembers) != 1 {
		t.Fatalf("expected 1 crew member, got %d", len(result.CrewMembers))
	}

	member := result.CrewMembers[0]
	if member.Name != "Dana Hall" {
		t.Fatalf("expected name %q, got %q", "Dana Hall", member.Name)
	}
	if member.Role != "Lighting Designer" {
		t.Fatalf("expected canonical role, got %q", member.Role)
	}
	if member.Department != show.DeptLX {
		t.Fatalf("expected LX department, got %s", member.Department)
	}
	if member.Email != "dana@example.com" {
		t.Fatalf("expected email extracted, got %q", member.Email)
	}
	if member.Phone != "210-555-0144" {
		t.Fatalf("expected phone extracted, got %q", member.Phone)
	}
	if member.CallTime != "5:30 PM" {
		t.Fatalf("expected call time extracted, got %q", member.CallTime)
	}
}

func TestParseUnknownRoleFallsThroughToUnmapped(t *testing.T) {
	result := Parse("Catering: two veggie trays by 6pm", false)
	if len(result.CrewMembers) != 0 {
		t.Fatalf("expected no crew members, got %d", len(result.CrewMembers))
	}
	if result.UnknownLines != 1 {
		t.Fatalf("expected 1 unmapped line, got %d", result.UnknownLines)
	}
}

func TestParseTheaterCatalogSelection(t *testing.T) {
	body := "Props Master: Lee Green"

	standard := Parse(body, false)
	if len(standard.CrewMembers) != 0 {
		t.Fatalf("standard catalog should not resolve Props Master, got %+v", standard.CrewMembers)
	}

	theater := Parse(body, true)
	if len(theater.CrewMembers) != 1 {
		t.Fatalf("theater catalog should resolve Props Master, got %d members", len(theater.CrewMembers))
	}
	if theater.CrewMembers[0].Department != show.DeptDeck {
		t.Fatalf("expected DECK department, got %s", theater.CrewMembers[0].Department)
	}
}

func TestParseSignals(t *testing.T) {
	body := "19:00 - Doors\n" +
		"This is the final cue list for Saturday.\n" +
		"Call sheet sent to all departments.\n" +
		"Load-in is blocked until the truck arrives.\n" +
		"Strike complete notes to follow.\n"

	result := Parse(body, false)
	signals := result.Signals
	if !signals.CuesUpdated {
		t.Fatal("expected CuesUpdated with a cue in the body")
	}
	if signals.CrewUpdated {
		t.Fatal("did not expect CrewUpdated without crew lines")
	}
	if !signals.CuesLocked {
		t.Fatal("expected CuesLocked from final-language")
	}
	if !signals.CallSheetSent {
		t.Fatal("expected CallSheetSent")
	}
	if !signals.HasBlockedLanguage {
		t.Fatal("expected HasBlockedLanguage")
	}
	if !signals.ShowCompleted {
		t.Fatal("expected ShowCompleted from strike complete")
	}
}

func TestParseCallSheetRequiresBothTokens(t *testing.T) {
	result := Parse("The rider was sent yesterday.", false)
	if result.Signals.CallSheetSent {
		t.Fatal("sent-language without a call sheet mention must not fire the signal")
	}
}

func TestParseIsDeterministic(t *testing.T) {
	body := "19:00 - Doors | FOH\nAudio Engineer: Sam Lee sam@venue.example\nnonsense line\n"
	first := Parse(body, false)
	second := Parse(body, false)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical input produced different results:\n%+v\n%+v", first, second)
	}
}

func TestInferDepartmentDefaultsToStage(t *testing.T) {
	if dept := inferDepartment("performer entrance"); dept != show.DeptStage {
		t.Fatalf("expected STAGE fallback, got %s", dept)
	}
	if dept := inferDepartment("fly the main drape out"); dept != show.DeptFly {
		t.Fatalf("expected FLY, got %s", dept)
	}
}
