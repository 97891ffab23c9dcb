// Package storage provides SQLite-based persistence for save slots.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/game"
)

// DefaultMaxSlots is the number of save slots unless configured
// otherwise.
const DefaultMaxSlots = 3

// ErrNoSave is returned when loading an empty slot.
var ErrNoSave = errors.New("storage: no save in slot")

// Store manages the SQLite database holding save slots.
type Store struct {
	db       *sql.DB
	maxSlots int
}

// SlotInfo summarizes one occupied save slot for listings.
type SlotInfo struct {
	Slot      int
	SaveID    string
	StageName string
	Week      int
	Year      int
	Fame      int
	NetWorth  float64
	UpdatedAt time.Time
}

// Open creates or opens a save database at the given path. Parent
// directories are created as needed and migrations run on open.
// maxSlots <= 0 selects DefaultMaxSlots.
func Open(dbPath string, maxSlots int) (*Store, error) {
	if maxSlots <= 0 {
		maxSlots = DefaultMaxSlots
	}

	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, maxSlots: maxSlots}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			slot INTEGER PRIMARY KEY,
			save_id TEXT NOT NULL,
			stage_name TEXT NOT NULL,
			week INTEGER NOT NULL,
			year INTEGER NOT NULL,
			fame INTEGER NOT NULL,
			net_worth REAL NOT NULL,
			data TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// MaxSlots returns the configured slot range upper bound.
func (s *Store) MaxSlots() int { return s.maxSlots }

// validSlot checks that the slot is within the configured range.
func (s *Store) validSlot(slot int) error {
	if slot < 1 || slot > s.maxSlots {
		return fmt.Errorf("storage: slot %d out of range 1..%d", slot, s.maxSlots)
	}
	return nil
}

// SaveSlot writes the full state snapshot into the given slot,
// replacing any previous save there. A failed save leaves any existing
// row untouched.
func (s *Store) SaveSlot(slot int, st *game.State) error {
	if err := s.validSlot(slot); err != nil {
		return err
	}

	data, err := game.EncodeSnapshot(st)
	if err != nil {
		return fmt.Errorf("storage: cannot serialize save: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saves (slot, save_id, stage_name, week, year, fame, net_worth, data, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
			save_id = excluded.save_id,
			stage_name = excluded.stage_name,
			week = excluded.week,
			year = excluded.year,
			fame = excluded.fame,
			net_worth = excluded.net_worth,
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP`,
		slot, st.SaveID, st.Player.StageName, st.Player.Week, st.Player.Year,
		st.Player.Fame, st.Player.NetWorth, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %d: %w", slot, err)
	}
	return nil
}

// LoadSlot reads the snapshot in the given slot. Returns ErrNoSave for
// an empty slot; a present but unreadable snapshot is a hard error.
func (s *Store) LoadSlot(slot int) (*game.State, error) {
	if err := s.validSlot(slot); err != nil {
		return nil, err
	}

	var data string
	err := s.db.QueryRow("SELECT data FROM saves WHERE slot = ?", slot).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %d", ErrNoSave, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load slot %d: %w", slot, err)
	}

	st, err := game.DecodeSnapshot([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("storage: slot %d: %w", slot, err)
	}
	return st, nil
}

// DeleteSlot removes the save in the given slot, if any.
func (s *Store) DeleteSlot(slot int) error {
	if err := s.validSlot(slot); err != nil {
		return err
	}
	if _, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete slot %d: %w", slot, err)
	}
	return nil
}

// ListSlots returns a summary of every occupied slot, ordered by slot.
func (s *Store) ListSlots() ([]SlotInfo, error) {
	rows, err := s.db.Query(
		`SELECT slot, save_id, stage_name, week, year, fame, net_worth, updated_at
		 FROM saves ORDER BY slot`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var infos []SlotInfo
	for rows.Next() {
		var info SlotInfo
		var updatedAt any
		if err := rows.Scan(&info.Slot, &info.SaveID, &info.StageName,
			&info.Week, &info.Year, &info.Fame, &info.NetWorth, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			info.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				info.UpdatedAt = parsed
			}
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return infos, nil
}
