package component

import (
	"time"

	"github.com/sondersim/sonder/entity"
)

// StatsComponent holds combat and vitality stats with clamped ranges
type StatsComponent struct {
	Base

	Health    int
	MaxHealth int
	Attack    int
	Defense   int
	Speed     int
	Energy    int
	MaxEnergy int
}

// NewStats creates a stats component at full health and energy
func NewStats(health, attack, defense, speed int) *StatsComponent {
	return &StatsComponent{
		Base:      newBase(),
		Health:    health,
		MaxHealth: health,
		Attack:    attack,
		Defense:   defense,
		Speed:     speed,
		Energy:    100,
		MaxEnergy: 100,
	}
}

// Kind returns the component discriminator
func (s *StatsComponent) Kind() entity.Kind {
	return entity.KindStats
}

// Update is a no-op; stats change through explicit calls
func (s *StatsComponent) Update(now time.Time) {}

// Alive reports whether health is above zero
func (s *StatsComponent) Alive() bool {
	return s.Health > 0
}

// TakeDamage applies damage reduced by defense, clamped at zero health
func (s *StatsComponent) TakeDamage(damage int) {
	actual := damage - s.Defense
	if actual < 0 {
		actual = 0
	}
	s.Health -= actual
	if s.Health < 0 {
		s.Health = 0
	}
}

// Heal restores health up to the maximum
func (s *StatsComponent) Heal(amount int) {
	s.Health += amount
	if s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
}

// UseEnergy spends energy if available and reports success
func (s *StatsComponent) UseEnergy(amount int) bool {
	if s.Energy < amount {
		return false
	}
	s.Energy -= amount
	return true
}

// RestoreEnergy refills energy up to the maximum
func (s *StatsComponent) RestoreEnergy(amount int) {
	s.Energy += amount
	if s.Energy > s.MaxEnergy {
		s.Energy = s.MaxEnergy
	}
}
