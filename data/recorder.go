package data

import (
	"log/slog"

	"github.com/sondersim/sonder/engine"
	"github.com/sondersim/sonder/event"
)

// Recorder drains the event queue after each completed tick and writes
// the events to the store. Registered as a loop observer; every write
// error is logged and swallowed so persistence can never stall or roll
// back a tick
type Recorder struct {
	store *Store
	queue *event.Queue
	log   *slog.Logger
}

// NewRecorder creates a recorder over a store and queue
func NewRecorder(store *Store, queue *event.Queue, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{store: store, queue: queue, log: logger}
}

// Observe is the engine.Observer callback. It only reads the world
func (r *Recorder) Observe(w *engine.World) {
	for _, ev := range r.queue.Consume() {
		var err error
		switch ev.Type {
		case event.TypeSnapshot:
			err = r.store.LogWorldState(
				ev.Tick,
				intPayload(ev.Payload, "entity_count"),
				intPayload(ev.Payload, "active_entities"),
			)
		default:
			err = r.store.LogGameEvent(ev)
		}
		if err != nil {
			r.log.Warn("event write failed",
				"type", ev.Type.String(),
				"tick", ev.Tick,
				"error", err,
			)
		}
	}
}

func intPayload(payload map[string]any, key string) int {
	if payload == nil {
		return 0
	}
	if v, ok := payload[key].(int); ok {
		return v
	}
	return 0
}
