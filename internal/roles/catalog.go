package roles

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"stagehand/internal/show"
)

// Role is one canonical catalog entry.
type Role struct {
	Name       string
	Department show.Department
}

// Catalog is an ordered set of canonical roles.
type Catalog struct {
	roles []Role
}

var titleCaser = cases.Title(language.AmericanEnglish)

var standardRoles = []Role{
	{Name: "Production Manager", Department: show.DeptStage},
	{Name: "Stage Manager", Department: show.DeptStage},
	{Name: "Technical Director", Department: show.DeptStage},
	{Name: "Tour Manager", Department: show.DeptStage},
	{Name: "Lighting Designer", Department: show.DeptLX},
	{Name: "Lighting Director", Department: show.DeptLX},
	{Name: "Audio Engineer", Department: show.DeptAudio},
	{Name: "FOH Engineer", Department: show.DeptAudio},
	{Name: "Monitor Engineer", Department: show.DeptAudio},
	{Name: "Video Engineer", Department: show.DeptVideo},
	{Name: "Video Director", Department: show.DeptVideo},
	{Name: "Deck Chief", Department: show.DeptDeck},
	{Name: "Backline Tech", Department: show.DeptDeck},
	{Name: "Stagehand", Department: show.DeptDeck},
	{Name: "Rigger", Department: show.DeptFly},
	{Name: "Fly Operator", Department: show.DeptFly},
	{Name: "Front of House Manager", Department: show.DeptFOH},
	{Name: "Box Office Manager", Department: show.DeptFOH},
	{Name: "Press Coordinator", Department: show.DeptFOH},
}

var theaterRoles = []Role{
	{Name: "Production Manager", Department: show.DeptStage},
	{Name: "Stage Manager", Department: show.DeptStage},
	{Name: "Assistant Stage Manager", Department: show.DeptStage},
	{Name: "Technical Director", Department: show.DeptStage},
	{Name: "Lighting Designer", Department: show.DeptLX},
	{Name: "Master Electrician", Department: show.DeptLX},
	{Name: "Sound Designer", Department: show.DeptAudio},
	{Name: "Audio Engineer", Department: show.DeptAudio},
	{Name: "Video Designer", Department: show.DeptVideo},
	{Name: "Video Engineer", Department: show.DeptVideo},
	{Name: "Props Master", Department: show.DeptDeck},
	{Name: "Deck Chief", Department: show.DeptDeck},
	{Name: "Wardrobe Supervisor", Department: show.DeptDeck},
	{Name: "Fly Operator", Department: show.DeptFly},
	{Name: "Front of House Manager", Department: show.DeptFOH},
	{Name: "Press Coordinator", Department: show.DeptFOH},
}

// Standard returns the music-venue role catalog.
func Standard() *Catalog {
	return &Catalog{roles: standardRoles}
}

// Theater returns the stage-play role catalog.
func Theater() *Catalog {
	return &Catalog{roles: theaterRoles}
}

// ForProduction selects a catalog by production type.
func ForProduction(theater bool) *Catalog {
	if theater {
		return Theater()
	}
	return Standard()
}

// Roles returns a copy of the catalog entries in canonical order.
func (c *Catalog) Roles() []Role {
	cp := make([]Role, len(c.roles))
	copy(cp, c.roles)
	return cp
}

// Match resolves a free-text role token to a canonical role. Exact
// case-insensitive matches win; otherwise the first role where either string
// contains the other matches. The boolean reports whether a role was found.
func (c *Catalog) Match(token string) (Role, bool) {
	needle := strings.ToLower(strings.TrimSpace(token))
	if needle == "" {
		return Role{}, false
	}
	for _, role := range c.roles {
		if strings.ToLower(role.Name) == needle {
			return role, true
		}
	}
	for _, role := range c.roles {
		lowered := strings.ToLower(role.Name)
		if strings.Contains(lowered, needle) || strings.Contains(needle, lowered) {
			return role, true
		}
	}
	return Role{}, false
}

// DisplayName normalizes a free-text role for display, preferring the
// canonical catalog spelling when the token resolves.
func (c *Catalog) DisplayName(token string) string {
	if role, ok := c.Match(token); ok {
		return role.Name
	}
	return titleCaser.String(strings.TrimSpace(token))
}
