package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/game"
	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/storage"
)

// Screen identifies one of the session's tab screens.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenStudio
	ScreenCatalog
	ScreenHustle
	ScreenShop
	ScreenSkills
	ScreenSocial
	ScreenNotices
	screenCount
)

// Title returns the tab label for the screen.
func (s Screen) Title() string {
	switch s {
	case ScreenDashboard:
		return "Dashboard"
	case ScreenStudio:
		return "Studio"
	case ScreenCatalog:
		return "Catalog"
	case ScreenHustle:
		return "Hustle"
	case ScreenShop:
		return "Shop"
	case ScreenSkills:
		return "Skills"
	case ScreenSocial:
		return "Social"
	case ScreenNotices:
		return "Notices"
	}
	return "?"
}

// catalogEntry is one selectable row on the catalog screen: either an
// unreleased work (release it) or a live release (announce it).
type catalogEntry struct {
	label     string
	contentID int64
	ctype     game.ContentType
	releaseID int64
}

// SessionModel is the top-level Bubble Tea model for one play session.
type SessionModel struct {
	engine *game.Engine
	state  *game.State
	store  *storage.Store
	slot   int

	autosave time.Duration
	setup    *SetupModel

	screen   Screen
	cursor   int
	releases table.Model
	keys     KeyMap
	help     help.Model

	width  int
	height int
	status string

	quitting bool
}

// NewSessionModel creates a session over an engine and its state. A
// state without a character starts in the creation flow.
func NewSessionModel(cfg SessionConfig) SessionModel {
	m := SessionModel{
		engine:   cfg.Engine,
		state:    cfg.State,
		store:    cfg.Store,
		slot:     cfg.Slot,
		autosave: cfg.AutosaveInterval,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		width:    cfg.Width,
		height:   cfg.Height,
	}
	m.releases = newReleaseTable(cfg.Width, cfg.Height)

	if !cfg.State.Started {
		setup := NewSetupModel(cfg.Width, cfg.Height)
		m.setup = &setup
	}
	return m
}

// newReleaseTable builds the catalog's release stats table.
func newReleaseTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "Title", Width: 22},
		{Title: "Type", Width: 7},
		{Title: "Views", Width: 12},
		{Title: "Weekly", Width: 10},
		{Title: "Chart", Width: 6},
		{Title: "Earned", Width: 11},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(max(4, height/3)),
	)
	return t
}

// Init starts the autosave loop when persistence is configured.
func (m SessionModel) Init() tea.Cmd {
	if m.store != nil && m.autosave > 0 {
		return autosaveCmd(m.autosave)
	}
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.releases = newReleaseTable(msg.Width, msg.Height)
		if m.setup != nil {
			m.setup.width = msg.Width
			m.setup.height = msg.Height
		}
		return m, nil

	case AutosaveMsg:
		if m.setup == nil {
			m.saveSlot(false)
		}
		return m, autosaveCmd(m.autosave)
	}

	if m.setup != nil {
		return m.updateSetup(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m, nil
}

// updateSetup drives the character creation flow until it completes.
func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	setup, cmd := m.setup.Update(msg)
	m.setup = &setup

	if setup.Done() {
		if err := m.engine.Apply(m.state, setup.Action()); err != nil {
			m.status = warnStyle.Render(err.Error())
			return m, cmd
		}
		m.setup = nil
		m.saveSlot(false)
		m.status = fmt.Sprintf("Welcome to %s, %s.", m.state.Player.City, m.state.Player.StageName)
	}
	return m, cmd
}

// handleKey processes session keys outside the creation flow.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveSlot(false)
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		m.saveSlot(true)

	case key.Matches(msg, m.keys.NextWeek):
		m = m.apply(game.AdvanceWeek{}, "")
		if m.status == "" {
			p := m.state.Player
			m.status = fmt.Sprintf("Week %d, %d. Energy restored.", p.Week, p.Year)
		}

	case key.Matches(msg, m.keys.PrevScreen):
		m.screen = (m.screen + screenCount - 1) % screenCount
		m.cursor = 0

	case key.Matches(msg, m.keys.NextScreen):
		m.screen = (m.screen + 1) % screenCount
		m.cursor = 0

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		m = m.handleSelect()

	case key.Matches(msg, m.keys.Announce):
		if m.screen == ScreenCatalog {
			m = m.handleAnnounce()
		}

	case key.Matches(msg, m.keys.Clear):
		if m.screen == ScreenNotices {
			m = m.apply(game.ClearNotifications{}, "Notifications cleared.")
		}
	}

	return m, nil
}

// itemCount is the number of selectable rows on the current screen.
func (m SessionModel) itemCount() int {
	switch m.screen {
	case ScreenStudio:
		return len(studioProjects)
	case ScreenCatalog:
		return len(m.catalogEntries())
	case ScreenHustle:
		return len(game.Jobs)
	case ScreenShop:
		return len(game.ShopItems)
	case ScreenSkills:
		return len(skillOrder)
	case ScreenSocial:
		return len(game.Platforms) + len(game.Venues)
	}
	return 0
}

// apply dispatches an action and records the outcome on the status line.
func (m SessionModel) apply(a game.Action, okStatus string) SessionModel {
	if err := m.engine.Apply(m.state, a); err != nil {
		m.status = warnStyle.Render(err.Error())
		return m
	}
	m.status = okStatus
	return m
}

// handleSelect runs the action behind the cursor on the current screen.
func (m SessionModel) handleSelect() SessionModel {
	switch m.screen {
	case ScreenStudio:
		return m.selectStudio()
	case ScreenCatalog:
		return m.selectCatalog()
	case ScreenHustle:
		if m.cursor < len(game.Jobs) {
			job := game.Jobs[m.cursor]
			return m.apply(game.WorkJob{JobID: job.ID},
				moneyStyle.Render(fmt.Sprintf("Worked as %s: +$%.0f", job.Name, job.Pay)))
		}
	case ScreenShop:
		if m.cursor < len(game.ShopItems) {
			item := game.ShopItems[m.cursor]
			return m.apply(game.PurchaseItem{ItemID: item.ID},
				fmt.Sprintf("Bought %s.", item.Name))
		}
	case ScreenSkills:
		if m.cursor < len(skillOrder) {
			skill := skillOrder[m.cursor]
			return m.apply(game.UpgradeSkill{Skill: skill},
				fmt.Sprintf("%s improved.", skill))
		}
	case ScreenSocial:
		return m.selectSocial()
	case ScreenNotices:
		return m.apply(game.MarkNotificationsRead{}, "Marked as read.")
	}
	return m
}

// selectCatalog releases the unreleased work behind the cursor.
func (m SessionModel) selectCatalog() SessionModel {
	entries := m.catalogEntries()
	if m.cursor >= len(entries) {
		return m
	}
	entry := entries[m.cursor]
	if entry.releaseID != 0 {
		m.status = faintStyle.Render("Already out. Press 'a' to announce it.")
		return m
	}
	return m.apply(
		game.ReleaseContent{ContentID: entry.contentID, Type: entry.ctype},
		viralStyle.Render(fmt.Sprintf("%s is out now!", entry.label)),
	)
}

// handleAnnounce runs a promo push for the release behind the cursor.
func (m SessionModel) handleAnnounce() SessionModel {
	entries := m.catalogEntries()
	if m.cursor >= len(entries) {
		return m
	}
	entry := entries[m.cursor]
	if entry.releaseID == 0 {
		m.status = faintStyle.Render("Release it first.")
		return m
	}
	return m.apply(
		game.AnnounceRelease{ReleaseID: entry.releaseID},
		fmt.Sprintf("Promo posted for %s.", entry.label),
	)
}

// catalogEntries lists unreleased works first, then live releases.
func (m SessionModel) catalogEntries() []catalogEntry {
	st := m.state
	var entries []catalogEntry

	for _, t := range st.Tracks {
		if !t.Released {
			entries = append(entries, catalogEntry{
				label: t.Title, contentID: t.ID, ctype: game.ContentTrack,
			})
		}
	}
	for _, a := range st.Albums {
		if !a.Released {
			entries = append(entries, catalogEntry{
				label: a.Title, contentID: a.ID, ctype: game.ContentAlbum,
			})
		}
	}
	for _, v := range st.Videos {
		if !v.Released {
			entries = append(entries, catalogEntry{
				label: v.Title, contentID: v.ID, ctype: game.ContentVideo,
			})
		}
	}
	for _, c := range st.Collabs {
		if !c.Released {
			entries = append(entries, catalogEntry{
				label: c.Title, contentID: c.ID, ctype: game.ContentCollaboration,
			})
		}
	}
	for _, rel := range st.Releases {
		entries = append(entries, catalogEntry{
			label: rel.Title, releaseID: rel.ID, ctype: rel.Type,
		})
	}
	return entries
}

// saveSlot persists the current state. Failures land on the status
// line; play continues either way.
func (m *SessionModel) saveSlot(announce bool) {
	if m.store == nil {
		if announce {
			m.status = faintStyle.Render("Saving is disabled for this session.")
		}
		return
	}
	if err := m.store.SaveSlot(m.slot, m.state); err != nil {
		m.status = warnStyle.Render(fmt.Sprintf("save failed: %v", err))
		return
	}
	if announce {
		m.status = fmt.Sprintf("Saved to slot %d.", m.slot)
	}
}
