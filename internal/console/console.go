package console

import "stagehand/internal/show"

// ActiveIndex returns the array index of the active cue, defaulting to the
// first cue when no pointer is set. Returns -1 when there are no cues.
func ActiveIndex(state *show.State) int {
	if len(state.Cues) == 0 {
		return -1
	}
	if state.ActiveCueID == "" {
		return 0
	}
	if idx := state.CueIndex(state.ActiveCueID); idx >= 0 {
		return idx
	}
	return 0
}

// Jump moves the active-cue pointer by delta array positions, clamped at the
// ends of the cue list. There is no wraparound.
func Jump(state *show.State, delta int) {
	idx := ActiveIndex(state)
	if idx < 0 {
		return
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx > len(state.Cues)-1 {
		idx = len(state.Cues) - 1
	}
	state.ActiveCueID = state.Cues[idx].ID
}

// SetActiveStatus applies a quick transition to the active cue. Statuses are
// unrestricted: any status may follow any other so operators can correct
// mistakes mid-show.
func SetActiveStatus(state *show.State, status show.CueStatus) bool {
	idx := ActiveIndex(state)
	if idx < 0 {
		return false
	}
	state.Cues[idx].Status = status
	state.ActiveCueID = state.Cues[idx].ID
	return true
}

// MarkExecutedAndAdvance marks the active cue executed and moves the pointer
// to the next cue when one exists.
func MarkExecutedAndAdvance(state *show.State) bool {
	idx := ActiveIndex(state)
	if idx < 0 {
		return false
	}
	state.Cues[idx].Status = show.CueExecuted
	if idx+1 < len(state.Cues) {
		idx++
	}
	state.ActiveCueID = state.Cues[idx].ID
	return true
}
