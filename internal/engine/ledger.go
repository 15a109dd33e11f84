package engine

import (
	"errors"
	"strings"

	"github.com/oklog/ulid/v2"
)

// LedgerResult reports how a ledger event moved a habit across its
// completion threshold for one date. At most one of the two flags is
// true; a plain progress update sets neither.
type LedgerResult struct {
	WasJustCompleted   bool
	WasJustUncompleted bool
	// Applied is false when the event was a no-op (unknown habit or
	// kind mismatch).
	Applied bool
}

// ToggleBoolean flips the completion state of a boolean habit for the
// given date. On the transition into completion the streak increments;
// on the transition out it decrements with a floor of zero. Unknown
// habits and numeric habits are a no-op.
func ToggleBoolean(s *UserState, habitID, date string) LedgerResult {
	h := s.HabitByID(habitID)
	if h == nil || h.Kind != HabitBoolean {
		return LedgerResult{}
	}

	if h.CompletedOn(date) {
		removeCompletedDate(h, date)
		decStreak(h)
		return LedgerResult{WasJustUncompleted: true, Applied: true}
	}
	h.CompletedDates = append(h.CompletedDates, date)
	h.Streak++
	return LedgerResult{WasJustCompleted: true, Applied: true}
}

// AddNumericProgress adds delta (which may be fractional or negative)
// to a numeric habit's progress for the given date and re-evaluates
// the completion predicate. Three outcomes: newly met, newly unmet
// (e.g. crossed above MaxTarget), or no threshold crossing.
//
// A jump from "not met" straight past MaxTarget in one add counts as
// never completed, not completed-then-uncompleted: only the recorded
// before/after states matter.
func AddNumericProgress(s *UserState, habitID, date string, delta float64) LedgerResult {
	h := s.HabitByID(habitID)
	if h == nil || h.Kind != HabitNumeric {
		return LedgerResult{}
	}

	if h.Progress == nil {
		h.Progress = map[string]float64{}
	}
	wasComplete := h.CompletedOn(date)
	h.Progress[date] += delta
	nowMet := h.TargetMet(date)

	switch {
	case nowMet && !wasComplete:
		h.CompletedDates = append(h.CompletedDates, date)
		h.Streak++
		return LedgerResult{WasJustCompleted: true, Applied: true}
	case !nowMet && wasComplete:
		removeCompletedDate(h, date)
		decStreak(h)
		return LedgerResult{WasJustUncompleted: true, Applied: true}
	default:
		return LedgerResult{Applied: true}
	}
}

// AddHabitInput describes a habit to create.
type AddHabitInput struct {
	Title     string
	Kind      HabitKind
	Target    float64
	MaxTarget *float64
	Unit      string
}

// AddHabit appends a fresh habit with empty progress and zero streak.
func AddHabit(s *UserState, in AddHabitInput) (*Habit, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	kind := in.Kind
	if !kind.IsValid() {
		kind = DefaultHabitKind
	}
	target := in.Target
	if target <= 0 {
		target = 1
	}

	s.Habits = append(s.Habits, Habit{
		ID:             ulid.Make().String(),
		Title:          title,
		Kind:           kind,
		Target:         target,
		MaxTarget:      in.MaxTarget,
		Unit:           strings.TrimSpace(in.Unit),
		CompletedDates: []string{},
		Streak:         0,
		Progress:       map[string]float64{},
	})
	return &s.Habits[len(s.Habits)-1], nil
}

// DeleteHabit removes a habit by ID. Removing an unknown ID is a
// no-op; the bool reports whether anything changed.
func DeleteHabit(s *UserState, habitID string) bool {
	for i := range s.Habits {
		if s.Habits[i].ID == habitID {
			s.Habits = append(s.Habits[:i], s.Habits[i+1:]...)
			return true
		}
	}
	return false
}

func removeCompletedDate(h *Habit, date string) {
	out := h.CompletedDates[:0]
	for _, d := range h.CompletedDates {
		if d != date {
			out = append(out, d)
		}
	}
	h.CompletedDates = out
}

func decStreak(h *Habit) {
	if h.Streak > 0 {
		h.Streak--
	}
}
