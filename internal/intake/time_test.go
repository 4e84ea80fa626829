package intake

import "testing"

func TestNormalizeEmailTime(t *testing.T) {
	cases := []struct {
		token string
		want  string
	}{
		{"7pm", "19:00"},
		{"7 PM", "19:00"},
		{"7:30pm", "19:30"},
		{"7:30 p.m.", "19:30"},
		{"12pm", "12:00"},
		{"12am", "00:00"},
		{"12:15 AM", "00:15"},
		{"9a", "09:00"},
		{"19:00", "19:00"},
		{"19", "19:00"},
		{"0:05", "00:05"},
		{"  8:45 pm ", "20:45"},
	}
	for _, tc := range cases {
		if got := NormalizeEmailTime(tc.token); got != tc.want {
			t.Errorf("NormalizeEmailTime(%q) = %q, want %q", tc.token, got, tc.want)
		}
	}
}

func TestNormalizeEmailTimeRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "doors", "25:00", "13pm", "7:75", "noon"} {
		if got := NormalizeEmailTime(token); got != "" {
			t.Errorf("NormalizeEmailTime(%q) = %q, want empty", token, got)
		}
	}
}
