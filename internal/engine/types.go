package engine

// HabitKind distinguishes simple checkbox habits from measured ones.
type HabitKind string

const (
	HabitBoolean HabitKind = "boolean"
	HabitNumeric HabitKind = "numeric"
)

func (k HabitKind) IsValid() bool {
	switch k {
	case HabitBoolean, HabitNumeric:
		return true
	default:
		return false
	}
}

// DefaultHabitKind is used when a stored habit is missing its kind.
const DefaultHabitKind = HabitBoolean

// Habit is one tracked habit with its per-day completion record.
//
// Streak is maintained incrementally (one bump per completion
// transition) rather than derived from CompletedDates. The two can
// diverge after skipped days; that is the intended behavior.
type Habit struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Kind           HabitKind          `json:"kind"`
	Target         float64            `json:"target"`
	MaxTarget      *float64           `json:"maxTarget,omitempty"`
	Unit           string             `json:"unit"`
	CompletedDates []string           `json:"completedDates"`
	Streak         int                `json:"streak"`
	Progress       map[string]float64 `json:"progress"`
}

// CompletedOn reports whether the habit is recorded complete for the
// given date key.
func (h *Habit) CompletedOn(date string) bool {
	for _, d := range h.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}

// TargetMet evaluates the completion predicate for a numeric habit on
// the given date: at or above Target and, when MaxTarget is set, at or
// below it. Exceeding MaxTarget is "over limit", not "complete".
func (h *Habit) TargetMet(date string) bool {
	v := h.Progress[date]
	if v < h.Target {
		return false
	}
	if h.MaxTarget != nil && v > *h.MaxTarget {
		return false
	}
	return true
}

// OverLimit reports whether a numeric habit has exceeded its MaxTarget
// for the given date.
func (h *Habit) OverLimit(date string) bool {
	return h.MaxTarget != nil && h.Progress[date] > *h.MaxTarget
}

// PlantStage is the plant's growth tier. Stages only ever advance.
type PlantStage string

const (
	StageSeed      PlantStage = "SEED"
	StageSprout    PlantStage = "SPROUT"
	StageSapling   PlantStage = "SAPLING"
	StageTree      PlantStage = "TREE"
	StageFlowering PlantStage = "FLOWERING"
	StageMythical  PlantStage = "MYTHICAL"
)

// PlantHealth is the plant's vitality tier. It drops with inactivity
// and recovers one step per habit completion.
type PlantHealth string

const (
	HealthThriving PlantHealth = "THRIVING"
	HealthWilting  PlantHealth = "WILTING"
	HealthWithered PlantHealth = "WITHERED"
	HealthDead     PlantHealth = "DEAD"
)

// PlantState is the user's plant.
type PlantState struct {
	Stage               PlantStage  `json:"stage"`
	Health              PlantHealth `json:"health"`
	Experience          int         `json:"exp"`
	Level               int         `json:"level"`
	LastInteractionDate string      `json:"lastInteractionDate"`
}

// FoodLog is one logged food item. Entries are append-only.
type FoodLog struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Calories  float64 `json:"calories"`
	Date      string  `json:"date"`
	CreatedAt int64   `json:"timestamp"`
}

// FriendProfile is the snapshot of a user shared into social views:
// name, plant and habits keyed by friend code.
type FriendProfile struct {
	Name       string     `json:"name"`
	FriendCode string     `json:"friendCode"`
	Plant      PlantState `json:"plant"`
	Habits     []Habit    `json:"habits"`
}

// Party is a shared group. The local user's member entry is derived
// from their own state and refreshed on every write; other members'
// snapshots are externally supplied and never mutated here.
type Party struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Code    string          `json:"code"`
	Members []FriendProfile `json:"members"`
	Plant   PlantState      `json:"plant"`
}

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Tab is the last active UI tab, persisted so sessions resume in place.
type Tab string

const (
	TabHome     Tab = "home"
	TabCalendar Tab = "calendar"
	TabSocial   Tab = "social"
	TabFood     Tab = "food"
	TabDonation Tab = "donation"
)

func (t Tab) IsValid() bool {
	switch t {
	case TabHome, TabCalendar, TabSocial, TabFood, TabDonation:
		return true
	default:
		return false
	}
}

// UserState is the whole persisted state of one user.
type UserState struct {
	Name               string          `json:"name"`
	FriendCode         string          `json:"friendCode"`
	Friends            []FriendProfile `json:"friends"`
	Parties            []Party         `json:"parties"`
	Habits             []Habit         `json:"habits"`
	FoodLogs           []FoodLog       `json:"foodLogs"`
	Plant              PlantState      `json:"plant"`
	OnboardingComplete bool            `json:"onboardingComplete"`
	Theme              Theme           `json:"theme"`
	LastActiveTab      Tab             `json:"lastActiveTab"`
}

// HabitByID returns a pointer into the state's habit list, or nil.
func (s *UserState) HabitByID(id string) *Habit {
	for i := range s.Habits {
		if s.Habits[i].ID == id {
			return &s.Habits[i]
		}
	}
	return nil
}

// Snapshot is the projection of this user embedded into party member
// lists and friend views. Habits are deep-copied so later ledger
// mutations cannot alias into a projected copy.
func (s *UserState) Snapshot() FriendProfile {
	return FriendProfile{
		Name:       s.Name,
		FriendCode: s.FriendCode,
		Plant:      s.Plant,
		Habits:     cloneHabits(s.Habits),
	}
}

func cloneHabits(habits []Habit) []Habit {
	out := make([]Habit, len(habits))
	for i, h := range habits {
		c := h
		c.CompletedDates = append([]string(nil), h.CompletedDates...)
		c.Progress = make(map[string]float64, len(h.Progress))
		for k, v := range h.Progress {
			c.Progress[k] = v
		}
		if h.MaxTarget != nil {
			v := *h.MaxTarget
			c.MaxTarget = &v
		}
		out[i] = c
	}
	return out
}
