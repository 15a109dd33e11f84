package engine

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// FindCalorieHabit locates the numeric habit that tracks calories:
// unit equal to "kcal" or title containing "calorie", both
// case-insensitive. When several habits match, the first in stored
// order wins. Returns nil when nothing matches.
func FindCalorieHabit(s *UserState) *Habit {
	for i := range s.Habits {
		h := &s.Habits[i]
		if h.Kind != HabitNumeric {
			continue
		}
		if strings.EqualFold(h.Unit, "kcal") || strings.Contains(strings.ToLower(h.Title), "calorie") {
			return h
		}
	}
	return nil
}

// FoodResult reports what a food log did to the ledger.
type FoodResult struct {
	Log    FoodLog
	Ledger LedgerResult
	// HabitID is set when a calorie habit received the calories.
	HabitID string
}

// AppendFoodLog records a food item and bridges its calories onto the
// calorie habit, if one exists. The log itself is always appended; the
// ledger and plant are only touched when a calorie habit is found.
func AppendFoodLog(s *UserState, name string, calories float64, date string, now time.Time) FoodResult {
	log := FoodLog{
		ID:        ulid.Make().String(),
		Name:      strings.TrimSpace(name),
		Calories:  calories,
		Date:      date,
		CreatedAt: now.UnixMilli(),
	}
	s.FoodLogs = append([]FoodLog{log}, s.FoodLogs...)

	res := FoodResult{Log: log}
	if h := FindCalorieHabit(s); h != nil {
		res.HabitID = h.ID
		res.Ledger = AddNumericProgress(s, h.ID, date, calories)
	}
	return res
}

// CaloriesOn sums the calorie habit's recorded progress for a date, or
// zero when no calorie habit exists.
func CaloriesOn(s *UserState, date string) float64 {
	if h := FindCalorieHabit(s); h != nil {
		return h.Progress[date]
	}
	return 0
}
