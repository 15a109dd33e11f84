package engine

import (
	"strings"
	"testing"
)

func TestDecodeStateFresh(t *testing.T) {
	const day = "2026-03-01"

	for _, data := range [][]byte{nil, {}, []byte("not json at all")} {
		s := DecodeState(data, day)
		if s.OnboardingComplete {
			t.Fatalf("fresh state marked onboarded")
		}
		if len(s.FriendCode) != 6 {
			t.Fatalf("friend code %q", s.FriendCode)
		}
		if s.Plant.Stage != StageSeed || s.Plant.Health != HealthThriving {
			t.Fatalf("fresh plant: %+v", s.Plant)
		}
		if s.Plant.LastInteractionDate != day {
			t.Fatalf("fresh plant not stamped: %s", s.Plant.LastInteractionDate)
		}
		if s.Theme != ThemeLight || s.LastActiveTab != TabHome {
			t.Fatalf("fresh prefs: theme=%s tab=%s", s.Theme, s.LastActiveTab)
		}
	}
}

func TestDecodeStateUpgradesPartialRecord(t *testing.T) {
	const day = "2026-03-01"
	// An older record: no kind, target or progress on the habit, no
	// theme, tab or friend code at the top level.
	blob := []byte(`{
		"name": "Fern",
		"onboardingComplete": true,
		"habits": [{"id": "h1", "title": "Meditate", "streak": 3, "completedDates": null}],
		"plant": {"stage": "SPROUT", "health": "WILTING", "exp": 80, "level": 1}
	}`)

	s := DecodeState(blob, day)
	h := s.HabitByID("h1")
	if h == nil {
		t.Fatalf("habit lost in decode")
	}
	if h.Kind != HabitBoolean || h.Target != 1 {
		t.Fatalf("habit defaults: kind=%s target=%v", h.Kind, h.Target)
	}
	if h.Progress == nil || h.CompletedDates == nil {
		t.Fatalf("habit maps not initialized")
	}
	if h.Streak != 3 {
		t.Fatalf("streak rewritten: %d", h.Streak)
	}

	if len(s.FriendCode) != 6 {
		t.Fatalf("friend code not generated: %q", s.FriendCode)
	}
	if s.Theme != ThemeLight || s.LastActiveTab != TabHome {
		t.Fatalf("prefs not defaulted: theme=%s tab=%s", s.Theme, s.LastActiveTab)
	}
	if s.Friends == nil || s.Parties == nil || s.FoodLogs == nil {
		t.Fatalf("lists not initialized")
	}
	if s.Plant.Stage != StageSprout || s.Plant.Experience != 80 {
		t.Fatalf("plant rewritten: %+v", s.Plant)
	}
	if s.Plant.LastInteractionDate != day {
		t.Fatalf("missing interaction date not stamped: %q", s.Plant.LastInteractionDate)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	const day = "2026-03-01"
	s := NewUserState(day)
	s.Name = "Fern"
	s.OnboardingComplete = true
	s.Habits = []Habit{numericHabit("cal", "Calories", 1800, f64(2200), "kcal")}
	s.Habits[0].Progress[day] = 1900
	s.Habits[0].CompletedDates = []string{day}
	s.Habits[0].Streak = 4

	data, err := EncodeState(s)
	if err != nil {
		t.Fatalf("EncodeState: %v", err)
	}
	got := DecodeState(data, day)
	if got.Name != s.Name || got.FriendCode != s.FriendCode {
		t.Fatalf("identity lost: %+v", got)
	}
	h := got.HabitByID("cal")
	if h == nil || h.Progress[day] != 1900 || *h.MaxTarget != 2200 || h.Streak != 4 {
		t.Fatalf("habit lost: %+v", h)
	}
}

func TestAllCompleteOn(t *testing.T) {
	const day = "2026-03-01"

	if AllCompleteOn(testState(), day) {
		t.Fatalf("empty habit list counted as complete")
	}

	s := testState(booleanHabit("h1", "A"), booleanHabit("h2", "B"))
	ToggleBoolean(s, "h1", day)
	if AllCompleteOn(s, day) {
		t.Fatalf("partial completion counted as complete")
	}
	ToggleBoolean(s, "h2", day)
	if !AllCompleteOn(s, day) {
		t.Fatalf("full completion not detected")
	}
}

func TestGenerateFriendCode(t *testing.T) {
	for i := 0; i < 64; i++ {
		code := GenerateFriendCode()
		if len(code) != 6 {
			t.Fatalf("length %d: %q", len(code), code)
		}
		for _, r := range code {
			if !strings.ContainsRune(friendCodeAlphabet, r) {
				t.Fatalf("character %q outside alphabet in %q", r, code)
			}
		}
	}
}

func TestNormalizeCode(t *testing.T) {
	if got := NormalizeCode("  well-2024 "); got != "WELL-2024" {
		t.Fatalf("NormalizeCode=%q", got)
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		from, to string
		want     int
	}{
		{"2026-03-01", "2026-03-01", 0},
		{"2026-03-01", "2026-03-02", 1},
		{"2026-03-05", "2026-03-01", 4}, // order-insensitive
		{"2026-02-27", "2026-03-02", 3}, // across month boundary
		{"garbage", "2026-03-01", 0},
		{"2026-03-01", "garbage", 0},
	}
	for _, tc := range cases {
		if got := DaysBetween(tc.from, tc.to); got != tc.want {
			t.Fatalf("DaysBetween(%q, %q)=%d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}
