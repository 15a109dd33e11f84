package engine

import (
	"context"
	"errors"
	"testing"
)

// stubDirectory is a canned in-memory directory for service tests.
type stubDirectory struct {
	profiles map[string]FriendProfile
	parties  map[string]Party
}

func (d *stubDirectory) FindProfile(ctx context.Context, code string) (*FriendProfile, error) {
	if p, ok := d.profiles[code]; ok {
		c := p
		return &c, nil
	}
	return nil, nil
}

func (d *stubDirectory) CreateParty(ctx context.Context, name string, owner FriendProfile) (*Party, error) {
	p := Party{
		ID:      "party-" + name,
		Name:    name,
		Code:    "GRP-001",
		Members: []FriendProfile{owner},
		Plant:   NewPlant(owner.Plant.LastInteractionDate),
	}
	return &p, nil
}

func (d *stubDirectory) JoinParty(ctx context.Context, code string, joiner FriendProfile) (*Party, error) {
	p, ok := d.parties[code]
	if !ok {
		return nil, nil
	}
	c := p
	c.Members = append(append([]FriendProfile(nil), p.Members...), joiner)
	return &c, nil
}

// stubAssistant returns fixed values so tests never hit a network.
type stubAssistant struct {
	message string
}

func (a *stubAssistant) PlantMessage(ctx context.Context, plant PlantState, habits []Habit, userName string) string {
	return a.message
}

func (a *stubAssistant) EstimateMetric(ctx context.Context, description, unit string) (int, error) {
	return 0, errors.New("no estimator in tests")
}

func (a *stubAssistant) AnalyzeImage(ctx context.Context, image []byte) (*FoodEstimate, error) {
	return nil, errors.New("no estimator in tests")
}

func mustAddHabit(t *testing.T, svc *Service, in AddHabitInput) *Habit {
	t.Helper()
	h, err := svc.AddHabit(context.Background(), in)
	if err != nil {
		t.Fatalf("AddHabit(%q): %v", in.Title, err)
	}
	return h
}

func f64(v float64) *float64 { return &v }
