package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsobakin/battleship/internal/game"
	"github.com/mrsobakin/battleship/internal/match"
)

const (
	msgRematchOrQuit = "Press r for a rematch or q to quit."
	msgQuitHint      = "esc to quit"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// Model is a bubbletea front end for a hotseat match. It drives the match
// step by step, so unlike match.Run it never blocks on input.
type Model struct {
	match *match.Match

	input    string
	status   string
	failed   bool
	handoff  bool
	quitting bool
}

func New(m *match.Match) Model {
	return Model{match: m}
}

func (m Model) Match() *match.Match {
	return m.match
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	}

	if m.handoff {
		if key.Type == tea.KeyEnter {
			m.handoff = false
			m.status = ""
		}
		return m, nil
	}

	if m.match.State().Phase == match.PhaseGameOver {
		return m.updateGameOver(key)
	}

	switch key.Type {
	case tea.KeyEnter:
		if line := strings.TrimSpace(m.input); line != "" {
			m = m.submit(line)
		}
		m.input = ""
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(key.Runes)
	}

	return m, nil
}

func (m Model) updateGameOver(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "r":
		if err := m.match.Rematch(); err != nil {
			m.status, m.failed = err.Error(), true
			return m, nil
		}
		m.status, m.failed = "", false
		m.handoff = m.match.Rules().Mode == match.ModeTwoPlayer
		return m, nil
	case "q", "enter":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) submit(line string) Model {
	before := m.match.State()

	switch before.Phase {
	case match.PhaseSetup:
		coords := strings.Fields(line)
		if len(coords) != 2 {
			m.status, m.failed = match.Describe(game.ErrBadFormat), true
			return m
		}

		if err := m.match.PlaceShip(coords[0], coords[1]); err != nil {
			m.status, m.failed = match.Describe(err), true
			return m
		}
		m.status, m.failed = "", false

	case match.PhaseBattle:
		outcome, err := m.match.Fire(line)
		if err != nil {
			m.status, m.failed = match.Describe(err), true
			return m
		}
		m.status, m.failed = outcome.Message(m.match.Rules().Mode), false
	}

	after := m.match.State()
	if after.Phase != match.PhaseGameOver && len(m.match.Players()) > 1 {
		m.handoff = after.Player != before.Player || after.Phase != before.Phase
	}

	return m
}

func (m Model) board(title string, role game.Role, hideShips bool) string {
	return boardStyle.Render(titleStyle.Render(title) + "\n" + m.match.Field(role).Render(hideShips))
}

func (m Model) boards(role game.Role) string {
	target := m.board("Enemy waters", m.match.TargetOf(role), true)
	if m.match.Rules().Mode == match.ModePractice {
		return target
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, target, " ", m.board("Your fleet", role, false))
}

func (m Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.failed {
		return errorStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.handoff {
		return fmt.Sprintf("%s\n\n%s\n", m.statusLine(), match.PassMovePrompt)
	}

	var sb strings.Builder

	state := m.match.State()
	mode := m.match.Rules().Mode

	switch state.Phase {
	case match.PhaseSetup:
		if mode == match.ModeTwoPlayer {
			sb.WriteString(titleStyle.Render(match.SetupBanner(state.Player)))
			sb.WriteString("\n")
		}
		sb.WriteString(m.board("Your fleet", state.Player, false))
		sb.WriteString("\n")

		class, _ := m.match.CurrentShip()
		sb.WriteString(match.ShipPrompt(class))

	case match.PhaseBattle:
		sb.WriteString(m.boards(state.Player))
		sb.WriteString("\n")
		sb.WriteString(match.TurnPrompt(mode, state.Player))

	case match.PhaseGameOver:
		sb.WriteString(m.boards(state.Player))
		sb.WriteString("\n")
		sb.WriteString(m.statusLine())
		sb.WriteString("\n\n")
		sb.WriteString(msgRematchOrQuit)
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("\n> ")
	sb.WriteString(m.input)
	sb.WriteString("\n")
	sb.WriteString(m.statusLine())
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render(msgQuitHint))
	sb.WriteString("\n")

	return sb.String()
}
