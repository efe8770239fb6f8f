package component

import (
	"testing"
	"time"

	"github.com/sondersim/sonder/entity"
	"github.com/sondersim/sonder/parameter"
)

func TestStatsDamageClampedByDefense(t *testing.T) {
	s := NewStats(20, 3, 5, 2)

	s.TakeDamage(8)
	if s.Health != 17 {
		t.Errorf("health %d after 8 damage vs 5 defense, want 17", s.Health)
	}

	// Damage below defense does nothing, never heals
	s.TakeDamage(2)
	if s.Health != 17 {
		t.Errorf("health %d after sub-defense hit, want 17", s.Health)
	}

	s.TakeDamage(1000)
	if s.Health != 0 {
		t.Errorf("health %d after overkill, want 0", s.Health)
	}
	if s.Alive() {
		t.Error("entity alive at zero health")
	}
}

func TestStatsHealAndEnergyClamped(t *testing.T) {
	s := NewStats(20, 1, 0, 1)
	s.TakeDamage(10)

	s.Heal(100)
	if s.Health != s.MaxHealth {
		t.Errorf("heal overflowed max: %d", s.Health)
	}

	if !s.UseEnergy(30) {
		t.Error("expected energy spend to succeed")
	}
	if s.UseEnergy(100) {
		t.Error("expected energy spend to fail when short")
	}
	s.RestoreEnergy(1000)
	if s.Energy != s.MaxEnergy {
		t.Errorf("energy overflowed max: %d", s.Energy)
	}
}

func TestMovementCooldownGating(t *testing.T) {
	m := NewMovement(500 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	if !m.Intend(1, 0, t0) {
		t.Fatal("first intention should pass, lastMove is zero")
	}
	m.Commit(t0)

	if m.Intend(0, 1, t0.Add(100*time.Millisecond)) {
		t.Error("intention within cooldown should be rejected")
	}
	if dx, dy := m.Intent(); dx != 0 || dy != 0 {
		t.Errorf("rejected intention leaked: (%d,%d)", dx, dy)
	}

	if !m.Intend(0, 1, t0.Add(500*time.Millisecond)) {
		t.Error("intention at exactly cooldown boundary should pass")
	}
}

func TestMovementCommitClearsIntent(t *testing.T) {
	m := NewMovement(0)
	now := time.Unix(1000, 0)

	m.Intend(1, 1, now)
	m.Commit(now)

	if dx, dy := m.Intent(); dx != 0 || dy != 0 {
		t.Errorf("intent not zeroed: (%d,%d)", dx, dy)
	}
	if !m.LastMove().Equal(now) {
		t.Errorf("cooldown not stamped: %v", m.LastMove())
	}
}

func TestEvolutionThreshold(t *testing.T) {
	ev := NewEvolution()

	if ev.Evolve() {
		t.Error("evolved with zero points")
	}

	ev.AddPoints(parameter.EvolveCost)
	if !ev.CanEvolve() {
		t.Fatal("threshold reached but CanEvolve false")
	}
	if !ev.Evolve() {
		t.Fatal("evolve failed at threshold")
	}
	if ev.Generation != 2 {
		t.Errorf("generation %d, want 2", ev.Generation)
	}
	if ev.Points != 0 {
		t.Errorf("points %d after evolve, want 0", ev.Points)
	}
}

func TestBaseBindAndEnable(t *testing.T) {
	e := entity.New(0, 0)
	s := NewStats(10, 1, 0, 1)
	e.AddComponent(s)

	if s.Owner() != e {
		t.Error("owner back-reference not set")
	}
	if !s.Enabled() {
		t.Error("components start enabled")
	}
	s.SetEnabled(false)
	if s.Enabled() {
		t.Error("disable did not take effect")
	}
}
