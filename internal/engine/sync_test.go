package engine

import "testing"

func TestSyncMembershipsRewritesOwnSlot(t *testing.T) {
	s := NewUserState("2026-03-01")
	s.Name = "Fern"
	s.FriendCode = "ABCDEF"
	s.Habits = []Habit{booleanHabit("h1", "Meditate")}
	s.Plant.Experience = 40

	other := FriendProfile{Name: "Rose", FriendCode: "ROSE88", Plant: NewPlant("2026-03-01")}
	s.Parties = []Party{{
		ID: "p1", Name: "Wellness", Code: "WELL-2024",
		Members: []FriendProfile{
			{Name: "stale", FriendCode: "ABCDEF"},
			other,
		},
	}}

	SyncMemberships(s)

	me := s.Parties[0].Members[0]
	if me.Name != "Fern" || me.Plant.Experience != 40 || len(me.Habits) != 1 {
		t.Fatalf("own slot not refreshed: %+v", me)
	}
	if got := s.Parties[0].Members[1]; got.Name != "Rose" || got.FriendCode != "ROSE88" {
		t.Fatalf("other member touched: %+v", got)
	}
}

func TestSyncMembershipsSnapshotDoesNotAlias(t *testing.T) {
	const day = "2026-03-01"
	s := NewUserState(day)
	s.Name = "Fern"
	s.FriendCode = "ABCDEF"
	s.Habits = []Habit{booleanHabit("h1", "Meditate")}
	s.Parties = []Party{{
		ID: "p1", Name: "Wellness", Code: "WELL-2024",
		Members: []FriendProfile{{FriendCode: "ABCDEF"}},
	}}

	SyncMemberships(s)

	// Mutating the live habit must not leak into the projected copy.
	ToggleBoolean(s, "h1", day)
	projected := s.Parties[0].Members[0].Habits[0]
	if projected.CompletedOn(day) {
		t.Fatalf("projection aliases live habit state")
	}
}

func TestSyncMembershipsIdempotent(t *testing.T) {
	s := NewUserState("2026-03-01")
	s.Name = "Fern"
	s.FriendCode = "ABCDEF"
	s.Parties = []Party{{
		ID: "p1", Name: "Wellness", Code: "WELL-2024",
		Members: []FriendProfile{{FriendCode: "ABCDEF"}},
	}}

	SyncMemberships(s)
	first := s.Parties[0].Members[0]
	SyncMemberships(s)
	second := s.Parties[0].Members[0]

	if first.Name != second.Name || first.FriendCode != second.FriendCode ||
		first.Plant != second.Plant || len(first.Habits) != len(second.Habits) {
		t.Fatalf("second run changed the slot: %+v vs %+v", first, second)
	}
}
