// Package roles holds the static catalog of canonical production roles and
// the fuzzy lookup the email intake parser and staffing autofill rely on.
//
// Two role sets exist: the standard set for music-venue productions and the
// theater set for stage plays. Matching is exact case-insensitive first,
// then substring containment in either direction. Intake text follows a
// closed set of production-email conventions, not arbitrary language.
package roles
