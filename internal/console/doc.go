// Package console implements the cue call console and the readiness gates.
//
// The console is an active-cue pointer over the show-order cue array with
// quick status transitions for live operation. Gates are pure booleans
// recomputed from current state on every evaluation; nothing is cached, so
// a gate can never report stale readiness. Gate-violating lock and handoff
// attempts are refused with the list of unmet conditions rather than an
// error; operators read the reasons, they do not handle failures.
package console
