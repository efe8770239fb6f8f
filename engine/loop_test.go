package engine

import (
	"testing"
	"time"
)

// orderedSystem records its name into a shared log on every update
type orderedSystem struct {
	SystemBase
	name     string
	priority int
	log      *[]string
}

func newOrderedSystem(name string, priority int, log *[]string) *orderedSystem {
	return &orderedSystem{SystemBase: NewSystemBase(), name: name, priority: priority, log: log}
}

func (s *orderedSystem) Priority() int { return s.priority }

func (s *orderedSystem) Update(state *WorldState, now time.Time) {
	*s.log = append(*s.log, s.name)
}

func newTestLoop(t *testing.T) *GameLoop {
	t.Helper()
	w, err := NewWorld(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	loop, err := NewGameLoop(w, 100, NewMockClock(time.Unix(1000, 0)))
	if err != nil {
		t.Fatal(err)
	}
	return loop
}

func TestNewGameLoopRejectsBadTickRate(t *testing.T) {
	w, _ := NewWorld(10, 10)
	if _, err := NewGameLoop(w, 0, nil); err == nil {
		t.Error("expected error for zero tick rate")
	}
	if _, err := NewGameLoop(w, -5, nil); err == nil {
		t.Error("expected error for negative tick rate")
	}
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	loop := newTestLoop(t)
	var log []string

	loop.AddSystem(newOrderedSystem("p10", 10, &log))
	loop.AddSystem(newOrderedSystem("p5", 5, &log))
	loop.AddSystem(newOrderedSystem("p20", 20, &log))

	loop.Step(time.Unix(1000, 0))

	want := []string{"p5", "p10", "p20"}
	if len(log) != len(want) {
		t.Fatalf("got %d updates, want %d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("execution order %v, want %v", log, want)
			break
		}
	}
}

func TestEqualPriorityKeepsRegistrationOrder(t *testing.T) {
	loop := newTestLoop(t)
	var log []string

	loop.AddSystem(newOrderedSystem("B", 1, &log))
	loop.AddSystem(newOrderedSystem("A", 1, &log))

	loop.Step(time.Unix(1000, 0))

	if len(log) != 2 || log[0] != "B" || log[1] != "A" {
		t.Errorf("tie order %v, want [B A]", log)
	}
}

func TestDisabledSystemSkipped(t *testing.T) {
	loop := newTestLoop(t)
	var log []string

	enabled := newOrderedSystem("on", 1, &log)
	disabled := newOrderedSystem("off", 2, &log)
	disabled.SetEnabled(false)
	loop.AddSystem(enabled)
	loop.AddSystem(disabled)

	loop.Step(time.Unix(1000, 0))

	if len(log) != 1 || log[0] != "on" {
		t.Errorf("updates %v, want [on]", log)
	}
}

func TestTickMonotonicity(t *testing.T) {
	loop := newTestLoop(t)
	now := time.Unix(1000, 0)

	for i := 1; i <= 10; i++ {
		loop.Step(now)
		if got := loop.World().State.TickCount(); got != uint64(i) {
			t.Fatalf("tick count %d after %d steps", got, i)
		}
		now = now.Add(loop.TickInterval())
	}
}

func TestObserversNotifiedInRegistrationOrder(t *testing.T) {
	loop := newTestLoop(t)
	var calls []string

	loop.AddObserver(func(w *World) { calls = append(calls, "first") })
	id := loop.AddObserver(func(w *World) { calls = append(calls, "second") })

	loop.Step(time.Unix(1000, 0))
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("observer calls %v", calls)
	}

	// Observers see the post-tick world
	calls = nil
	tickCheck := loop.AddObserver(func(w *World) {
		if w.State.TickCount() != 2 {
			t.Errorf("observer saw tick %d mid-update, want 2", w.State.TickCount())
		}
	})
	loop.Step(time.Unix(1001, 0))
	loop.RemoveObserver(tickCheck)

	loop.RemoveObserver(id)
	calls = nil
	loop.Step(time.Unix(1002, 0))
	if len(calls) != 1 || calls[0] != "first" {
		t.Errorf("calls after removal %v, want [first]", calls)
	}
}

func TestStartHonorsTickLimit(t *testing.T) {
	w, _ := NewWorld(10, 10)
	loop, err := NewGameLoop(w, 1000, nil)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		loop.Start(5)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop at tick limit")
	}
	if got := w.State.TickCount(); got != 5 {
		t.Errorf("tick count %d after limited run, want 5", got)
	}
	if loop.Running() {
		t.Error("loop still marked running after limit")
	}
}

func TestStopPreventsFurtherTicks(t *testing.T) {
	w, _ := NewWorld(10, 10)
	loop, err := NewGameLoop(w, 1000, nil)
	if err != nil {
		t.Fatal(err)
	}

	loop.Stop()
	loop.Stop() // idempotent

	done := make(chan struct{})
	go func() {
		loop.Start(0)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stopped loop did not return from Start")
	}
	if w.State.TickCount() != 0 {
		t.Errorf("stopped loop ticked %d times", w.State.TickCount())
	}
}

func TestPausedLoopDoesNotTick(t *testing.T) {
	w, _ := NewWorld(10, 10)
	loop, err := NewGameLoop(w, 1000, nil)
	if err != nil {
		t.Fatal(err)
	}

	notified := make(chan struct{}, 100)
	loop.AddObserver(func(w *World) {
		select {
		case notified <- struct{}{}:
		default:
		}
	})

	loop.Pause()
	go loop.Start(0)
	defer loop.Stop()

	select {
	case <-notified:
		t.Fatal("paused loop notified an observer")
	case <-time.After(50 * time.Millisecond):
	}
	if w.State.TickCount() != 0 {
		t.Errorf("paused loop ticked %d times", w.State.TickCount())
	}

	loop.Resume()
	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("resumed loop never ticked")
	}
}
