package directory

import (
	"context"
	"strings"
	"testing"

	"bloom/internal/engine"
)

func TestFindProfile(t *testing.T) {
	ctx := context.Background()
	m := NewMock()

	cases := []struct {
		name string
		code string
		want string // expected profile name, "" for not found
	}{
		{"exact", "ROSE-8821", "Rose"},
		{"lowercase", "rose-8821", "Rose"},
		{"whitespace", "  HERB-4040 ", "Basil"},
		{"short form", "9912", "Sage"},
		{"unknown", "NOPE-0000", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := m.FindProfile(ctx, tc.code)
			if err != nil {
				t.Fatalf("FindProfile(%q): %v", tc.code, err)
			}
			if tc.want == "" {
				if p != nil {
					t.Fatalf("FindProfile(%q)=%+v, want nil", tc.code, p)
				}
				return
			}
			if p == nil || p.Name != tc.want {
				t.Fatalf("FindProfile(%q)=%+v, want %s", tc.code, p, tc.want)
			}
		})
	}
}

func TestCreateParty(t *testing.T) {
	ctx := context.Background()
	m := NewMock()
	owner := engine.FriendProfile{Name: "Fern", FriendCode: "FERN12"}

	p, err := m.CreateParty(ctx, "Morning Club", owner)
	if err != nil {
		t.Fatalf("CreateParty: %v", err)
	}
	if p.Name != "Morning Club" || len(p.Members) != 1 || p.Members[0].FriendCode != "FERN12" {
		t.Fatalf("created party: %+v", p)
	}
	if !strings.HasPrefix(p.Code, "GRP-") || len(p.Code) != 7 {
		t.Fatalf("party code %q", p.Code)
	}
	if p.Plant.Stage != engine.StageSeed {
		t.Fatalf("party plant not a fresh seed: %+v", p.Plant)
	}

	// The new party is immediately joinable.
	joined, err := m.JoinParty(ctx, p.Code, engine.FriendProfile{Name: "Moss", FriendCode: "MOSS34"})
	if err != nil {
		t.Fatalf("JoinParty: %v", err)
	}
	if joined == nil || len(joined.Members) != 2 {
		t.Fatalf("join after create: %+v", joined)
	}

	if _, err := m.CreateParty(ctx, "  ", owner); err == nil {
		t.Fatalf("blank party name accepted")
	}
}

func TestJoinPartyAppendsWithoutMutatingSeed(t *testing.T) {
	ctx := context.Background()
	m := NewMock()
	joiner := engine.FriendProfile{Name: "Fern", FriendCode: "FERN12"}

	p, err := m.JoinParty(ctx, "well-2024", joiner)
	if err != nil {
		t.Fatalf("JoinParty: %v", err)
	}
	if p == nil || p.Name != "Wellness Warriors" || len(p.Members) != 3 {
		t.Fatalf("joined party: %+v", p)
	}
	if p.Members[2].FriendCode != "FERN12" {
		t.Fatalf("joiner not appended: %+v", p.Members)
	}

	// A second caller does not see the first joiner in the roster.
	p2, err := m.JoinParty(ctx, "WELL-2024", engine.FriendProfile{Name: "Moss", FriendCode: "MOSS34"})
	if err != nil {
		t.Fatalf("JoinParty: %v", err)
	}
	if len(p2.Members) != 3 || p2.Members[2].FriendCode != "MOSS34" {
		t.Fatalf("seed roster mutated: %+v", p2.Members)
	}

	unknown, err := m.JoinParty(ctx, "NOPE-1234", joiner)
	if err != nil || unknown != nil {
		t.Fatalf("unknown party: %+v, %v", unknown, err)
	}
}
