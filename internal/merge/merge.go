// Package merge folds parsed candidates into the live cue and crew
// collections without duplication.
//
// Both merges are append-only and order-preserving: existing rows are never
// reordered or rewritten, and a candidate whose dedup key is already present
// is dropped. Merging the same incoming list twice is a no-op the second
// time, which is what makes at-least-once webhook delivery safe.
package merge

import (
	"strings"

	"github.com/google/uuid"

	"stagehand/internal/show"
)

// CueRows appends each incoming cue whose (time, item) key is not already
// present. Ids are assigned to appended candidates that lack one.
func CueRows(existing, incoming []show.Cue) []show.Cue {
	seen := make(map[string]struct{}, len(existing))
	for _, cue := range existing {
		seen[cue.Key()] = struct{}{}
	}

	out := existing
	for _, cue := range incoming {
		key := cue.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if cue.ID == "" {
			cue.ID = uuid.NewString()
		}
		out = append(out, cue)
	}
	return out
}

// CrewMembers appends each incoming crew member whose (name, role) key is not
// already present. Candidates with an empty name are skipped entirely.
func CrewMembers(existing, incoming []show.CrewMember) []show.CrewMember {
	seen := make(map[string]struct{}, len(existing))
	for _, member := range existing {
		seen[member.Key()] = struct{}{}
	}

	out := existing
	for _, member := range incoming {
		if strings.TrimSpace(member.Name) == "" {
			continue
		}
		key := member.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if member.ID == "" {
			member.ID = uuid.NewString()
		}
		out = append(out, member)
	}
	return out
}
