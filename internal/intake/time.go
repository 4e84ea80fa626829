package intake

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var emailTimePattern = regexp.MustCompile(`(?i)^\s*(\d{1,2})(?::(\d{2}))?\s*([ap])\.?m?\.?\s*$`)

// NormalizeEmailTime converts a time token from email text into 24-hour
// HH:MM. Accepted forms: "H", "H:MM", "H am/pm", "H:MM am/pm". Returns ""
// when the token cannot be interpreted; callers store the raw token instead.
func NormalizeEmailTime(token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ""
	}

	if m := emailTimePattern.FindStringSubmatch(trimmed); m != nil {
		hour, err := strconv.Atoi(m[1])
		if err != nil || hour < 1 || hour > 12 {
			return ""
		}
		minute := 0
		if m[2] != "" {
			minute, err = strconv.Atoi(m[2])
			if err != nil || minute > 59 {
				return ""
			}
		}
		meridiem := strings.ToLower(m[3])
		if meridiem == "p" && hour != 12 {
			hour += 12
		}
		if meridiem == "a" && hour == 12 {
			hour = 0
		}
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}

	// 24-hour or bare-hour forms without a meridiem.
	parts := strings.SplitN(trimmed, ":", 2)
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return ""
	}
	minute := 0
	if len(parts) == 2 {
		minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || minute < 0 || minute > 59 {
			return ""
		}
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
