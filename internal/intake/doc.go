// Package intake converts raw production email text into candidate cues,
// candidate crew members, and boolean signals.
//
// Parsing is line-oriented and first-match-wins: each non-empty line is tried
// against the cue rule, then the role-first crew rule, and otherwise counted
// as unmapped. Intake is lossy: unmapped lines are counted, never rejected,
// and an unparseable time token is stored as-is rather than failing the cue.
//
// Every heuristic is a named rule in a table (lineRules, signalRules,
// departmentKeywords) so venue-specific phrasing can be added without
// touching the parse loop. This is a closed set of regex and keyword rules
// tuned to production-email conventions, not a language model; Parse makes no
// correctness promise about extraction, only determinism.
package intake
