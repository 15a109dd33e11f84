package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// StateStore is the persistence boundary: one opaque blob, loaded at
// session start and fully overwritten on every write. Load returns nil
// data when nothing has been saved yet.
type StateStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Service is the single writer over the user's state. Every operation
// runs one synchronous load→mutate→project→save cycle; assistant and
// directory results are fed back in through the same path, never
// applied from a callback over stale state.
type Service struct {
	mu     sync.Mutex
	states StateStore
	dir    Directory
	assist Assistant
	now    func() time.Time

	state *UserState
}

func NewService(states StateStore, dir Directory, assist Assistant) *Service {
	return &Service{
		states: states,
		dir:    dir,
		assist: assist,
		now:    time.Now,
	}
}

// Today returns the current local calendar-date key.
func (s *Service) Today() string { return DateKey(s.now()) }

// SessionReport describes what happened at session start.
type SessionReport struct {
	Decay     DecayReport
	Onboarded bool
}

// StartSession loads (and upgrades) the persisted state, runs the
// health decay rule, stamps the interaction date and saves. It must
// run before any event is processed.
func (s *Service) StartSession(ctx context.Context) (*SessionReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.states.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	today := DateKey(s.now())
	s.state = DecodeState(data, today)

	report := &SessionReport{Onboarded: s.state.OnboardingComplete}
	if s.state.OnboardingComplete {
		report.Decay = ApplyDecay(&s.state.Plant, today)
	} else {
		s.state.Plant.LastInteractionDate = today
	}

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return report, nil
}

// State exposes the current in-memory state for rendering. Callers
// must treat it as read-only; all mutation goes through the service.
func (s *Service) State() *UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Onboard names the user and marks onboarding complete. The friend
// code generated at first load is kept.
func (s *Service) Onboard(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("name is required")
	}
	if s.state.OnboardingComplete {
		return fmt.Errorf("already onboarded as %q", s.state.Name)
	}

	today := DateKey(s.now())
	s.state.Name = name
	s.state.OnboardingComplete = true
	s.state.Plant = NewPlant(today)
	return s.save(ctx)
}

// HabitOutcome reports the effect of a toggle or progress event.
type HabitOutcome struct {
	Habit       Habit
	Result      LedgerResult
	Plant       PlantState
	AllComplete bool
}

// ToggleHabit flips today's completion for a boolean habit and applies
// the resulting reward (or undo) to the plant.
func (s *Service) ToggleHabit(ctx context.Context, habitID string) (*HabitOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUser(); err != nil {
		return nil, err
	}

	today := DateKey(s.now())
	res := ToggleBoolean(s.state, habitID, today)
	if !res.Applied {
		return nil, NotFoundError{Kind: "boolean habit", Code: habitID}
	}
	Reward(&s.state.Plant, res.WasJustCompleted)

	out := s.outcome(habitID, res, today)
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// TrackHabit adds numeric progress for today. The plant is only
// rewarded (or docked) when the event crossed the completion
// threshold; plain progress updates leave it alone.
func (s *Service) TrackHabit(ctx context.Context, habitID string, delta float64) (*HabitOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUser(); err != nil {
		return nil, err
	}

	today := DateKey(s.now())
	res := AddNumericProgress(s.state, habitID, today, delta)
	if !res.Applied {
		return nil, NotFoundError{Kind: "numeric habit", Code: habitID}
	}
	if res.WasJustCompleted || res.WasJustUncompleted {
		Reward(&s.state.Plant, res.WasJustCompleted)
	}

	out := s.outcome(habitID, res, today)
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// AddHabit creates a habit and persists the new structure.
func (s *Service) AddHabit(ctx context.Context, in AddHabitInput) (*Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUser(); err != nil {
		return nil, err
	}

	h, err := AddHabit(s.state, in)
	if err != nil {
		return nil, err
	}
	created := *h
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &created, nil
}

// RemoveHabit deletes a habit by ID.
func (s *Service) RemoveHabit(ctx context.Context, habitID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUser(); err != nil {
		return err
	}
	if !DeleteHabit(s.state, habitID) {
		return NotFoundError{Kind: "habit", Code: habitID}
	}
	return s.save(ctx)
}

// FoodOutcome reports the effect of a food log.
type FoodOutcome struct {
	Food        FoodResult
	Habit       *Habit
	Plant       PlantState
	OverLimit   bool
	AllComplete bool
}

// LogFood appends a food entry and bridges its calories onto the
// calorie habit, rewarding the plant on a threshold crossing exactly
// as a direct progress entry would.
func (s *Service) LogFood(ctx context.Context, name string, calories float64) (*FoodOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUser(); err != nil {
		return nil, err
	}

	today := DateKey(s.now())
	res := AppendFoodLog(s.state, name, calories, today, s.now())
	if res.Ledger.WasJustCompleted || res.Ledger.WasJustUncompleted {
		Reward(&s.state.Plant, res.Ledger.WasJustCompleted)
	}

	out := &FoodOutcome{
		Food:        res,
		Plant:       s.state.Plant,
		AllComplete: AllCompleteOn(s.state, today),
	}
	if res.HabitID != "" {
		if h := s.state.HabitByID(res.HabitID); h != nil {
			c := *h
			out.Habit = &c
			out.OverLimit = h.OverLimit(today)
		}
	}
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// Revive replants the garden from scratch. The engine applies it
// unconditionally; callers restrict it to a DEAD plant.
func (s *Service) Revive(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUser(); err != nil {
		return err
	}
	RevivePlant(&s.state.Plant, DateKey(s.now()))
	return s.save(ctx)
}

// SetTheme stores the UI theme preference.
func (s *Service) SetTheme(ctx context.Context, theme Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUser(); err != nil {
		return err
	}
	if !theme.IsValid() {
		return fmt.Errorf("invalid theme: %q", theme)
	}
	s.state.Theme = theme
	return s.save(ctx)
}

// SetActiveTab remembers where the user was.
func (s *Service) SetActiveTab(ctx context.Context, tab Tab) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUser(); err != nil {
		return err
	}
	if !tab.IsValid() {
		return fmt.Errorf("invalid tab: %q", tab)
	}
	s.state.LastActiveTab = tab
	return s.save(ctx)
}

// AddFriend looks up a profile by code and adds it to the friends
// list. Self-adds and duplicates are rejected before any directory
// call is made.
func (s *Service) AddFriend(ctx context.Context, code string) (*FriendProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUser(); err != nil {
		return nil, err
	}

	code = NormalizeCode(code)
	if code == "" {
		return nil, errors.New("friend code is required")
	}
	if code == s.state.FriendCode {
		return nil, errors.New("that is your own code")
	}
	for i := range s.state.Friends {
		if s.state.Friends[i].FriendCode == code {
			return nil, DuplicateError{Kind: "friend", Code: code}
		}
	}

	profile, err := s.dir.FindProfile(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("directory lookup: %w", err)
	}
	if profile == nil {
		return nil, NotFoundError{Kind: "gardener", Code: code}
	}

	s.state.Friends = append(s.state.Friends, *profile)
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return profile, nil
}

// CreateParty registers a new party with the directory, with the
// user's snapshot as its first member.
func (s *Service) CreateParty(ctx context.Context, name string) (*Party, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUser(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("party name is required")
	}

	party, err := s.dir.CreateParty(ctx, name, s.state.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("create party: %w", err)
	}

	s.state.Parties = append(s.state.Parties, *party)
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return party, nil
}

// JoinParty joins an existing party by code. Already-joined parties
// are rejected before the directory call.
func (s *Service) JoinParty(ctx context.Context, code string) (*Party, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUser(); err != nil {
		return nil, err
	}

	code = NormalizeCode(code)
	if code == "" {
		return nil, errors.New("party code is required")
	}
	for i := range s.state.Parties {
		if NormalizeCode(s.state.Parties[i].Code) == code {
			return nil, DuplicateError{Kind: "party", Code: code}
		}
	}

	party, err := s.dir.JoinParty(ctx, code, s.state.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("join party: %w", err)
	}
	if party == nil {
		return nil, NotFoundError{Kind: "party", Code: code}
	}

	s.state.Parties = append(s.state.Parties, *party)
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return party, nil
}

// Motivation asks the assistant for the plant's message using the
// current snapshot. The assistant degrades to a static line on any
// failure, so this never errors.
func (s *Service) Motivation(ctx context.Context) string {
	s.mu.Lock()
	plant := s.state.Plant
	habits := cloneHabits(s.state.Habits)
	name := s.state.Name
	s.mu.Unlock()
	return s.assist.PlantMessage(ctx, plant, habits, name)
}

// EstimateMetric forwards an estimation request for a habit's unit.
func (s *Service) EstimateMetric(ctx context.Context, description, unit string) (int, error) {
	return s.assist.EstimateMetric(ctx, description, unit)
}

// AnalyzeFoodImage forwards an image to the estimation service.
func (s *Service) AnalyzeFoodImage(ctx context.Context, image []byte) (*FoodEstimate, error) {
	return s.assist.AnalyzeImage(ctx, image)
}

func (s *Service) outcome(habitID string, res LedgerResult, today string) *HabitOutcome {
	out := &HabitOutcome{
		Result:      res,
		Plant:       s.state.Plant,
		AllComplete: AllCompleteOn(s.state, today),
	}
	if h := s.state.HabitByID(habitID); h != nil {
		out.Habit = *h
	}
	return out
}

// save projects the snapshot into every membership and overwrites the
// persisted blob. Must be called with the lock held.
func (s *Service) save(ctx context.Context) error {
	SyncMemberships(s.state)
	data, err := EncodeState(s.state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.states.Save(ctx, data); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (s *Service) loaded() error {
	if s.state == nil {
		return errors.New("session not started")
	}
	return nil
}

func (s *Service) requireUser() error {
	if err := s.loaded(); err != nil {
		return err
	}
	if !s.state.OnboardingComplete {
		return ErrNotOnboarded
	}
	return nil
}
