// Package directory is the friend/party lookup service. The real
// backend does not exist yet; Mock serves a small seeded roster so the
// social features work offline. Codes are case-insensitive.
package directory

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"bloom/internal/engine"
)

// Mock implements engine.Directory from in-memory seed data.
type Mock struct {
	profiles []engine.FriendProfile
	parties  []engine.Party
}

var _ engine.Directory = (*Mock)(nil)

func NewMock() *Mock {
	today := engine.DateKey(time.Now())
	return &Mock{
		profiles: seedProfiles(today),
		parties:  seedParties(today),
	}
}

// FindProfile looks up a profile by friend code. The short form after
// the dash of a seeded code also matches, so "8821" finds "ROSE-8821".
// Returns (nil, nil) when nothing matches.
func (m *Mock) FindProfile(_ context.Context, code string) (*engine.FriendProfile, error) {
	normalized := engine.NormalizeCode(code)
	for i := range m.profiles {
		p := m.profiles[i]
		if p.FriendCode == normalized {
			return &p, nil
		}
		if _, short, ok := strings.Cut(p.FriendCode, "-"); ok && short == normalized {
			return &p, nil
		}
	}
	return nil, nil
}

// CreateParty registers a new party with the owner as its only member
// and a fresh shared seed.
func (m *Mock) CreateParty(_ context.Context, name string, owner engine.FriendProfile) (*engine.Party, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("party name is required")
	}
	today := engine.DateKey(time.Now())
	party := engine.Party{
		ID:      ulid.Make().String(),
		Name:    name,
		Code:    fmt.Sprintf("GRP-%03d", rand.IntN(1000)),
		Members: []engine.FriendProfile{owner},
		Plant:   engine.NewPlant(today),
	}
	m.parties = append(m.parties, party)
	return &party, nil
}

// JoinParty returns the party matching the code with the joiner
// appended, or (nil, nil) when the code is unknown.
func (m *Mock) JoinParty(_ context.Context, code string, joiner engine.FriendProfile) (*engine.Party, error) {
	normalized := engine.NormalizeCode(code)
	for i := range m.parties {
		if engine.NormalizeCode(m.parties[i].Code) != normalized {
			continue
		}
		party := m.parties[i]
		party.Members = append(append([]engine.FriendProfile{}, party.Members...), joiner)
		return &party, nil
	}
	return nil, nil
}

func seedProfiles(today string) []engine.FriendProfile {
	eight := 8.0
	return []engine.FriendProfile{
		{
			Name:       "Rose",
			FriendCode: "ROSE-8821",
			Plant: engine.PlantState{
				Stage: engine.StageFlowering, Health: engine.HealthThriving,
				Experience: 900, Level: 12, LastInteractionDate: today,
			},
			Habits: []engine.Habit{
				{ID: "m1", Title: "Morning Yoga", Kind: engine.HabitBoolean, Target: 1,
					CompletedDates: []string{today}, Streak: 5, Progress: map[string]float64{}},
				{ID: "m2", Title: "Water", Kind: engine.HabitNumeric, Target: eight, Unit: "cups",
					CompletedDates: []string{}, Streak: 2, Progress: map[string]float64{today: 4}},
			},
		},
		{
			Name:       "Sage",
			FriendCode: "SAGE-9912",
			Plant: engine.PlantState{
				Stage: engine.StageTree, Health: engine.HealthWilting,
				Experience: 600, Level: 8, LastInteractionDate: "2023-01-01",
			},
			Habits: []engine.Habit{
				{ID: "m3", Title: "Read Book", Kind: engine.HabitNumeric, Target: 30, Unit: "mins",
					CompletedDates: []string{}, Streak: 0, Progress: map[string]float64{}},
			},
		},
		{
			Name:       "Basil",
			FriendCode: "HERB-4040",
			Plant: engine.PlantState{
				Stage: engine.StageSprout, Health: engine.HealthThriving,
				Experience: 120, Level: 2, LastInteractionDate: today,
			},
			Habits: []engine.Habit{
				{ID: "m4", Title: "Code", Kind: engine.HabitBoolean, Target: 1,
					CompletedDates: []string{today}, Streak: 1, Progress: map[string]float64{}},
			},
		},
	}
}

func seedParties(today string) []engine.Party {
	profiles := seedProfiles(today)
	return []engine.Party{
		{
			ID:      "p1",
			Name:    "Wellness Warriors",
			Code:    "WELL-2024",
			Members: []engine.FriendProfile{profiles[0], profiles[1]},
			Plant: engine.PlantState{
				Stage: engine.StageTree, Health: engine.HealthThriving,
				Experience: 800, Level: 5, LastInteractionDate: today,
			},
		},
	}
}
