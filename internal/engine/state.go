package engine

import "encoding/json"

// NewUserState returns the pre-onboarding initial state with a fresh
// friend code and a seed planted today.
func NewUserState(today string) *UserState {
	return &UserState{
		FriendCode:    GenerateFriendCode(),
		Friends:       []FriendProfile{},
		Parties:       []Party{},
		Habits:        []Habit{},
		FoodLogs:      []FoodLog{},
		Theme:         ThemeLight,
		LastActiveTab: TabHome,
		Plant:         NewPlant(today),
	}
}

// DecodeState turns a persisted blob back into a usable state. Partial
// records from older versions are upgraded in place; a blob that does
// not parse at all yields a fresh initial state. Load never hard-fails.
func DecodeState(data []byte, today string) *UserState {
	if len(data) == 0 {
		return NewUserState(today)
	}
	var s UserState
	if err := json.Unmarshal(data, &s); err != nil {
		return NewUserState(today)
	}
	Normalize(&s, today)
	return &s
}

// EncodeState serializes the state for the persistence boundary. Save
// is a full overwrite, never a merge.
func EncodeState(s *UserState) ([]byte, error) {
	return json.Marshal(s)
}

// Normalize fills in fields that older or partially-shaped records may
// be missing, mirroring the upgrade rules of the persistence boundary:
// habit kind defaults to boolean, target to 1, progress to an empty
// map; theme, tab, friend code and the list fields get usable values.
func Normalize(s *UserState, today string) {
	for i := range s.Habits {
		h := &s.Habits[i]
		if !h.Kind.IsValid() {
			h.Kind = DefaultHabitKind
		}
		if h.Target == 0 {
			h.Target = 1
		}
		if h.Progress == nil {
			h.Progress = map[string]float64{}
		}
		if h.CompletedDates == nil {
			h.CompletedDates = []string{}
		}
		if h.Streak < 0 {
			h.Streak = 0
		}
	}

	if !s.Theme.IsValid() {
		s.Theme = ThemeLight
	}
	if !s.LastActiveTab.IsValid() {
		s.LastActiveTab = TabHome
	}
	if s.FriendCode == "" {
		s.FriendCode = GenerateFriendCode()
	}
	if s.Friends == nil {
		s.Friends = []FriendProfile{}
	}
	if s.Parties == nil {
		s.Parties = []Party{}
	}
	if s.FoodLogs == nil {
		s.FoodLogs = []FoodLog{}
	}
	if s.Plant.Stage == "" {
		s.Plant = NewPlant(today)
	}
	if s.Plant.LastInteractionDate == "" {
		s.Plant.LastInteractionDate = today
	}
}

// AllCompleteOn reports whether every habit is complete for the date.
// An empty habit list counts as not complete, so the celebration
// message is never sent to a user with nothing tracked.
func AllCompleteOn(s *UserState, date string) bool {
	if len(s.Habits) == 0 {
		return false
	}
	for i := range s.Habits {
		if !s.Habits[i].CompletedOn(date) {
			return false
		}
	}
	return true
}
