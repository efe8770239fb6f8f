// Package data is the persistence collaborator: an SQLite event log
// the simulation notifies fire-and-forget. Write failures are logged
// and never roll back or stall simulation state
package data

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/sondersim/sonder/event"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS entities (
		id TEXT PRIMARY KEY,
		entity_type TEXT NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS game_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_type TEXT NOT NULL,
		entity_id TEXT,
		x INTEGER,
		y INTEGER,
		data TEXT,
		tick_count INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS world_state (
		tick_count INTEGER PRIMARY KEY,
		entity_count INTEGER NOT NULL,
		active_entities INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Store wraps the SQLite database holding the simulation event log
type Store struct {
	db *sql.DB
}

// Open connects to the database at path (":memory:" works) and
// creates the schema idempotently
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close releases the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// LogEntitySpawn records an entity entering the world
func (s *Store) LogEntitySpawn(id, kind string, x, y int) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO entities (id, entity_type, x, y) VALUES (?, ?, ?, ?)`,
		id, kind, x, y,
	)
	return err
}

// LogGameEvent appends a generic game event; the payload is stored as
// JSON
func (s *Store) LogGameEvent(ev event.GameEvent) error {
	var payload any
	if ev.Payload != nil {
		data, err := json.Marshal(ev.Payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		payload = string(data)
	}
	var entityID any
	if ev.EntityID != "" {
		entityID = ev.EntityID
	}
	_, err := s.db.Exec(
		`INSERT INTO game_events (event_type, entity_id, x, y, data, tick_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ev.Type.String(), entityID, ev.X, ev.Y, payload, ev.Tick,
	)
	return err
}

// LogWorldState records a periodic snapshot, replacing any earlier
// snapshot for the same tick
func (s *Store) LogWorldState(tick uint64, entityCount, activeCount int) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO world_state (tick_count, entity_count, active_entities)
		 VALUES (?, ?, ?)`,
		tick, entityCount, activeCount,
	)
	return err
}

// EntityCount returns the number of recorded entity spawns
func (s *Store) EntityCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM entities`).Scan(&count)
	return count, err
}

// LatestSnapshot returns the most recent world-state snapshot.
// ok is false when no snapshot was recorded yet
func (s *Store) LatestSnapshot() (tick uint64, entityCount int, ok bool, err error) {
	row := s.db.QueryRow(
		`SELECT tick_count, entity_count FROM world_state ORDER BY tick_count DESC LIMIT 1`,
	)
	err = row.Scan(&tick, &entityCount)
	if err == sql.ErrNoRows {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, err
	}
	return tick, entityCount, true, nil
}
