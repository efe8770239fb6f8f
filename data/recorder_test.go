package data

import (
	"log/slog"
	"testing"

	"github.com/sondersim/sonder/engine"
	"github.com/sondersim/sonder/event"
)

func TestRecorderDrainsQueue(t *testing.T) {
	store := newTestStore(t)
	queue := event.NewQueue()
	rec := NewRecorder(store, queue, slog.Default())

	world, err := engine.NewWorld(10, 10)
	if err != nil {
		t.Fatal(err)
	}

	queue.Push(event.GameEvent{Type: event.TypeMove, EntityID: "id-1", X: 1, Y: 2, Tick: 3})
	queue.Push(event.GameEvent{
		Type:    event.TypeSnapshot,
		Tick:    10,
		Payload: map[string]any{"entity_count": 4, "active_entities": 3},
	})

	rec.Observe(world)

	if queue.Len() != 0 {
		t.Errorf("queue not drained, %d left", queue.Len())
	}

	tick, entities, ok, err := store.LatestSnapshot()
	if err != nil || !ok {
		t.Fatalf("snapshot not persisted: ok=%v err=%v", ok, err)
	}
	if tick != 10 || entities != 4 {
		t.Errorf("snapshot tick=%d entities=%d, want 10/4", tick, entities)
	}
}

func TestRecorderSurvivesWriteFailure(t *testing.T) {
	store := newTestStore(t)
	queue := event.NewQueue()
	rec := NewRecorder(store, queue, slog.Default())

	world, err := engine.NewWorld(10, 10)
	if err != nil {
		t.Fatal(err)
	}

	// A closed store makes every write fail; Observe must swallow it
	store.Close()
	queue.Push(event.GameEvent{Type: event.TypeMove, EntityID: "id-1"})
	rec.Observe(world)

	if queue.Len() != 0 {
		t.Error("failed writes left events queued")
	}
}
