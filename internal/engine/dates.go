package engine

import (
	"fmt"
	"time"
)

// dateLayout is the canonical calendar-date key, local time.
const dateLayout = "2006-01-02"

// DateKey truncates a time to its local calendar-date key.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateKey parses a canonical date key.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(dateLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	return t, nil
}

// DaysBetween returns the number of whole calendar days between two
// date keys, ignoring any time-of-day component. An unparseable key
// counts as zero days so a corrupt record never kills the plant.
func DaysBetween(from, to string) int {
	a, err := ParseDateKey(from)
	if err != nil {
		return 0
	}
	b, err := ParseDateKey(to)
	if err != nil {
		return 0
	}
	diff := b.Sub(a).Hours() / 24
	if diff < 0 {
		diff = -diff
	}
	return int(diff)
}
