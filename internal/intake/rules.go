package intake

import (
	"regexp"
	"strings"

	"stagehand/internal/show"
)

// cuePattern matches "<time> <sep> <item>[ | <assignment>]". The time token
// must lead the line; the separator is a dash variant or a colon.
var cuePattern = regexp.MustCompile(`(?i)^\s*(\d{1,2}(?::\d{2})?(?:\s*[ap]\.?m?\.?)?)\s*[-–—:]\s*(.+)$`)

// rolePattern matches "<role token>: <detail>". Whether the line is a crew
// line depends on the role token resolving against the catalog.
var rolePattern = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z /&'.-]*?)\s*:\s*(.+)$`)

var (
	emailAddressPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern        = regexp.MustCompile(`(?:\+?1[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]\d{4}`)
	callTimePattern     = regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*[ap]\.?m?\.?\b`)
	callTimeLabel       = regexp.MustCompile(`(?i)\b(?:call|report)\s*time\s*:?\s*`)
)

// departmentKeyword is one named inference rule: if any keyword appears in
// the cue's item plus assignment text, the cue belongs to the department.
// Rules are checked in order; the first hit wins and STAGE is the fallback.
type departmentKeyword struct {
	dept     show.Department
	keywords []string
}

var departmentKeywords = []departmentKeyword{
	{dept: show.DeptFOH, keywords: []string{"foh", "house", "doors", "lobby", "usher", "box office"}},
	{dept: show.DeptLX, keywords: []string{"light", "lx", "spot", "dimmer", "gobo", "blackout"}},
	{dept: show.DeptAudio, keywords: []string{"sound", "audio", "mic", "monitor", "band", "music"}},
	{dept: show.DeptVideo, keywords: []string{"video", "projection", "screen", "playback", "stream", "camera"}},
	{dept: show.DeptFly, keywords: []string{"fly", "batten", "rail", "drop in", "curtain"}},
	{dept: show.DeptDeck, keywords: []string{"deck", "scene shift", "set change", "props", "shift"}},
}

// inferDepartment classifies a cue from its free text. STAGE is the default
// when no keyword rule fires.
func inferDepartment(text string) show.Department {
	lowered := strings.ToLower(text)
	for _, rule := range departmentKeywords {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.dept
			}
		}
	}
	return show.DeptStage
}

// signalRule is one named whole-body scan. When require is set, every token
// in it must appear in addition to one of the keywords.
type signalRule struct {
	name     string
	keywords []string
	require  []string
	set      func(*Signals)
}

var signalRules = []signalRule{
	{
		name:     "blocked-language",
		keywords: []string{"blocked", "delay", "issue", "problem", "urgent"},
		set:      func(s *Signals) { s.HasBlockedLanguage = true },
	},
	{
		name:     "call-sheet-sent",
		keywords: []string{"sent", "shared", "distributed"},
		require:  []string{"call sheet"},
		set:      func(s *Signals) { s.CallSheetSent = true },
	},
	{
		name:     "show-completed",
		keywords: []string{"show complete", "performance complete", "strike complete", "wrap"},
		set:      func(s *Signals) { s.ShowCompleted = true },
	},
	{
		name:     "cues-locked",
		keywords: []string{"final", "locked"},
		set:      func(s *Signals) { s.CuesLocked = true },
	},
}

func scanSignals(body string, signals *Signals) {
	lowered := strings.ToLower(body)
	for _, rule := range signalRules {
		if !containsAll(lowered, rule.require) {
			continue
		}
		if containsAny(lowered, rule.keywords) {
			rule.set(signals)
		}
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func containsAll(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if !strings.Contains(text, keyword) {
			return false
		}
	}
	return true
}
