package data

import (
	"path/filepath"
	"testing"

	"github.com/sondersim/sonder/event"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	store.Close()

	// Re-opening an existing database must not fail on schema creation
	store, err = Open(path)
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	store.Close()
}

func TestLogEntitySpawn(t *testing.T) {
	store := newTestStore(t)

	if err := store.LogEntitySpawn("id-1", "frog", 3, 4); err != nil {
		t.Fatal(err)
	}
	if err := store.LogEntitySpawn("id-2", "frog", 5, 6); err != nil {
		t.Fatal(err)
	}
	// Duplicate id is ignored, not an error
	if err := store.LogEntitySpawn("id-1", "frog", 9, 9); err != nil {
		t.Fatal(err)
	}

	count, err := store.EntityCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("entity count %d, want 2", count)
	}
}

func TestLogGameEventWithPayload(t *testing.T) {
	store := newTestStore(t)

	err := store.LogGameEvent(event.GameEvent{
		Type:     event.TypeEvolve,
		EntityID: "id-1",
		X:        2,
		Y:        3,
		Payload:  map[string]any{"generation": 2},
		Tick:     17,
	})
	if err != nil {
		t.Fatal(err)
	}

	// World-level event with no entity or payload
	err = store.LogGameEvent(event.GameEvent{Type: event.TypeSpawn, Tick: 1})
	if err != nil {
		t.Fatal(err)
	}
}

func TestWorldStateSnapshots(t *testing.T) {
	store := newTestStore(t)

	if _, _, ok, err := store.LatestSnapshot(); err != nil || ok {
		t.Fatalf("expected no snapshot yet, ok=%v err=%v", ok, err)
	}

	if err := store.LogWorldState(10, 5, 4); err != nil {
		t.Fatal(err)
	}
	if err := store.LogWorldState(20, 6, 6); err != nil {
		t.Fatal(err)
	}
	// Same tick replaces, never duplicates
	if err := store.LogWorldState(20, 7, 7); err != nil {
		t.Fatal(err)
	}

	tick, entities, ok, err := store.LatestSnapshot()
	if err != nil || !ok {
		t.Fatalf("snapshot lookup failed: ok=%v err=%v", ok, err)
	}
	if tick != 20 || entities != 7 {
		t.Errorf("latest snapshot tick=%d entities=%d, want 20/7", tick, entities)
	}
}
