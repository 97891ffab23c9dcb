package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/game"
)

// setupStage tracks progress through the character creation flow.
type setupStage int

const (
	stageName setupStage = iota
	stageAvatar
	stageCity
	stageDone
)

// avatarCount is the number of selectable avatar looks.
const avatarCount = 8

// SetupModel is the character creation flow shown before a new career.
type SetupModel struct {
	stage    setupStage
	name     textinput.Model
	avatarID int
	cityIdx  int
	width    int
	height   int
}

// NewSetupModel creates the character creation model.
func NewSetupModel(width, height int) SetupModel {
	ti := textinput.New()
	ti.Placeholder = "Lil Something"
	ti.CharLimit = 24
	ti.Width = 26
	ti.Focus()

	return SetupModel{
		name:     ti,
		avatarID: 1,
		width:    width,
		height:   height,
	}
}

// Done reports whether the flow is complete.
func (m SetupModel) Done() bool { return m.stage == stageDone }

// Action returns the character creation action for the chosen identity.
// Only valid once Done reports true.
func (m SetupModel) Action() game.CreateCharacter {
	return game.CreateCharacter{
		StageName: strings.TrimSpace(m.name.Value()),
		AvatarID:  m.avatarID,
		City:      game.Cities[m.cityIdx],
	}
}

// Update advances the flow on key input.
func (m SetupModel) Update(msg tea.Msg) (SetupModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.stage == stageName {
			var cmd tea.Cmd
			m.name, cmd = m.name.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.stage {
	case stageName:
		if keyMsg.Type == tea.KeyEnter {
			if strings.TrimSpace(m.name.Value()) != "" {
				m.stage = stageAvatar
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd

	case stageAvatar:
		switch keyMsg.String() {
		case "left", "h":
			m.avatarID--
			if m.avatarID < 1 {
				m.avatarID = avatarCount
			}
		case "right", "l":
			m.avatarID++
			if m.avatarID > avatarCount {
				m.avatarID = 1
			}
		case "enter", " ":
			m.stage = stageCity
		}

	case stageCity:
		switch keyMsg.String() {
		case "up", "k":
			if m.cityIdx > 0 {
				m.cityIdx--
			}
		case "down", "j":
			if m.cityIdx < len(game.Cities)-1 {
				m.cityIdx++
			}
		case "enter", " ":
			m.stage = stageDone
		}
	}

	return m, nil
}

// View renders the current creation step.
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("NEW CAREER"), m.width))
	b.WriteString("\n\n")

	switch m.stage {
	case stageName:
		b.WriteString(centerText("Pick your stage name:", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.name.View(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(helpStyle.Render("Enter: confirm"), m.width))

	case stageAvatar:
		b.WriteString(centerText("Pick your look:", m.width))
		b.WriteString("\n\n")
		line := fmt.Sprintf("<  Avatar %d / %d  >", m.avatarID, avatarCount)
		b.WriteString(centerText(cursorStyle.Render(line), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(helpStyle.Render("Left/Right: browse  |  Enter: confirm"), m.width))

	case stageCity:
		b.WriteString(centerText("Where does the grind start?", m.width))
		b.WriteString("\n\n")
		for i, city := range game.Cities {
			cursor := "  "
			style := faintStyle
			if i == m.cityIdx {
				cursor = "> "
				style = cursorStyle
			}
			b.WriteString(centerText(style.Render(cursor+city), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(helpStyle.Render("Up/Down: browse  |  Enter: start career"), m.width))
	}

	return b.String()
}
