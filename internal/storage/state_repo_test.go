package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *StateRepo {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStateRepo(db)
}

func TestLoadEmpty(t *testing.T) {
	repo := newTestRepo(t)

	data, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data != nil {
		t.Fatalf("empty db returned data: %q", data)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	blob := []byte(`{"name":"Fern"}`)
	if err := repo.Save(ctx, blob); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Fatalf("Load=%q, want %q", got, blob)
	}

	// Save fully overwrites.
	blob2 := []byte(`{"name":"Moss"}`)
	if err := repo.Save(ctx, blob2); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, blob2) {
		t.Fatalf("Load=%q, want %q", got, blob2)
	}
}

func TestHistoryKeepsPreviousBlobsBounded(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for i := 0; i < 15; i++ {
		blob := []byte(fmt.Sprintf(`{"rev":%d}`, i))
		if err := repo.Save(ctx, blob); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	history, err := repo.History(ctx, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != historyKeep {
		t.Fatalf("history length %d, want %d", len(history), historyKeep)
	}
	// Newest previous blob first: the save of rev 14 archived rev 13.
	if want := []byte(`{"rev":13}`); !bytes.Equal(history[0], want) {
		t.Fatalf("history[0]=%q, want %q", history[0], want)
	}
}

func TestHistoryEmptyBeforeSecondSave(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	// The first save has no previous blob to archive.
	if err := repo.Save(ctx, []byte(`{}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	history, err := repo.History(ctx, 5)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("history after first save: %d entries", len(history))
	}
}
