// Package tui provides the Bubble Tea terminal frontend for the career
// simulation. It handles screens, input mapping, autosave and the SSH
// server integration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/game"
	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/storage"
)

// DefaultAutosaveInterval is how often a session writes its slot when
// persistence is enabled.
const DefaultAutosaveInterval = 30 * time.Second

// AutosaveMsg triggers a background save of the current slot.
type AutosaveMsg time.Time

// autosaveCmd schedules the next autosave tick.
func autosaveCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return AutosaveMsg(t)
	})
}

// SessionConfig wires a session to its engine, save slot and terminal.
type SessionConfig struct {
	Engine *game.Engine
	State  *game.State

	// Store may be nil; the session then runs without persistence.
	Store *storage.Store
	Slot  int

	// AutosaveInterval <= 0 disables the autosave loop.
	AutosaveInterval time.Duration

	Width  int
	Height int
}

// Run starts a full-screen session and blocks until the player quits.
func Run(cfg SessionConfig) error {
	p := tea.NewProgram(
		NewSessionModel(cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
