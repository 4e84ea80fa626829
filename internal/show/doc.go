// Package show defines the operational model for a production's run of show.
//
// The State blob holds everything the workflow engine tracks for one
// production: the cue timeline, crew roster, staff assignments, workflow
// steps, the technical preflight checklist, and the inbound email audit log.
// Array position in Cues is the show order.
//
// Canonical defaults for workflow steps, staff assignments, and checklist
// items live here alongside ReconcileState, which maps any persisted state
// (including rows carrying legacy step ids) back onto the canonical rows so
// schema evolution never loses or duplicates a row.
//
// Treat this package as the single source of truth for entity semantics;
// engines in intake, merge, readiness, steps, staffing, and console operate
// on these types but never redefine them.
package show
