package roles

import (
	"testing"

	"stagehand/internal/show"
)

func TestMatchExactWinsOverSubstring(t *testing.T) {
	catalog := Standard()

	role, ok := catalog.Match("Lighting Designer")
	if !ok || role.Name != "Lighting Designer" {
		t.Fatalf("Match = %+v, %v", role, ok)
	}
	if role.Department != show.DeptLX {
		t.Fatalf("department = %s", role.Department)
	}

	// "Lighting" alone is ambiguous; the first catalog entry that contains
	// the token wins.
	role, ok = catalog.Match("lighting")
	if !ok || role.Name != "Lighting Designer" {
		t.Fatalf("substring match = %+v, %v", role, ok)
	}
}

func TestMatchEitherDirectionContainment(t *testing.T) {
	catalog := Standard()

	// Token longer than the canonical name.
	role, ok := catalog.Match("Touring FOH Engineer")
	if !ok || role.Name != "FOH Engineer" {
		t.Fatalf("Match = %+v, %v", role, ok)
	}
}

func TestMatchRejectsUnknownTokens(t *testing.T) {
	catalog := Standard()
	for _, token := range []string{"", "   ", "Catering", "Bus Driver"} {
		if role, ok := catalog.Match(token); ok {
			t.Fatalf("Match(%q) resolved to %+v", token, role)
		}
	}
}

func TestForProduction(t *testing.T) {
	if _, ok := ForProduction(false).Match("Props Master"); ok {
		t.Fatal("standard catalog must not carry theater-only roles")
	}
	role, ok := ForProduction(true).Match("Props Master")
	if !ok || role.Department != show.DeptDeck {
		t.Fatalf("theater Match = %+v, %v", role, ok)
	}
}

func TestDisplayName(t *testing.T) {
	catalog := Standard()
	if got := catalog.DisplayName("audio engineer"); got != "Audio Engineer" {
		t.Fatalf("DisplayName = %q", got)
	}
	if got := catalog.DisplayName("merch seller"); got != "Merch Seller" {
		t.Fatalf("DisplayName fallback = %q", got)
	}
}

func TestRolesReturnsCopy(t *testing.T) {
	catalog := Standard()
	list := catalog.Roles()
	list[0].Name = "mutated"
	if fresh := catalog.Roles(); fresh[0].Name == "mutated" {
		t.Fatal("Roles must return a copy")
	}
}
