package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsobakin/battleship/internal/game"
	"github.com/mrsobakin/battleship/internal/game/field"
	"github.com/mrsobakin/battleship/internal/match"
	"github.com/mrsobakin/battleship/internal/tui"
)

var shortFleet = []field.ShipClass{field.Cruiser, field.Destroyer}

func press(t *testing.T, m tea.Model, msg tea.KeyMsg) tui.Model {
	next, _ := m.Update(msg)
	model, ok := next.(tui.Model)
	require.True(t, ok)
	return model
}

// Types the line key by key and presses enter.
func enter(t *testing.T, m tui.Model, line string) tui.Model {
	for _, r := range line {
		if r == ' ' {
			m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		} else {
			m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
	return press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModel_Typing(t *testing.T) {
	m := tui.New(match.New(match.Rules{Mode: match.ModePractice}))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("A1x")})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Contains(t, m.View(), "> A1 \n")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Error! You entered the wrong coordinates! Try again:")
	assert.Contains(t, m.View(), "> \n")
}

func TestModel_Practice(t *testing.T) {
	mt := match.New(match.Rules{Mode: match.ModePractice}, match.WithFleet(shortFleet))
	m := tui.New(mt)

	view := m.View()
	assert.Contains(t, view, "Enter the coordinates of the Cruiser (3 cells):")
	assert.NotContains(t, view, "place your ships")

	m = enter(t, m, "A1 A2")
	assert.Contains(t, m.View(), "Error! Wrong length of the Cruiser! Try again:")

	m = enter(t, m, "A1 A3")
	m = enter(t, m, "C1 C2")
	require.Equal(t, match.PhaseBattle, mt.State().Phase)

	view = m.View()
	assert.Contains(t, view, "Take a shot!")
	assert.Contains(t, view, "Enemy waters")
	assert.NotContains(t, view, "Your fleet")

	m = enter(t, m, "E5")
	assert.Contains(t, m.View(), "You missed!")
	assert.NotContains(t, m.View(), match.PassMovePrompt)

	for _, c := range []string{"A1", "A2", "A3", "C1"} {
		m = enter(t, m, c)
	}
	m = enter(t, m, "C2")

	require.Equal(t, match.PhaseGameOver, mt.State().Phase)
	assert.Contains(t, m.View(), "You sank the last ship. Congratulations!")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, next.View())
}

func TestModel_Hotseat(t *testing.T) {
	mt := match.New(match.Rules{Mode: match.ModeTwoPlayer}, match.WithFleet(shortFleet))
	m := tui.New(mt)

	assert.Contains(t, m.View(), "Player 1, place your ships on the game field")

	m = enter(t, m, "A1 A3")
	m = enter(t, m, "C1 C2")
	assert.Contains(t, m.View(), match.PassMovePrompt)

	t.Run("HandoffIgnoresTyping", func(t *testing.T) {
		m := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("D3")})
		assert.Contains(t, m.View(), match.PassMovePrompt)
	})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Player 2, place your ships on the game field")

	m = enter(t, m, "D3 D5")
	m = enter(t, m, "F1 F2")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	assert.Contains(t, view, "Player 1, it's your turn:")
	assert.Contains(t, view, "Enemy waters")
	assert.Contains(t, view, "Your fleet")

	m = enter(t, m, "D3")
	view = m.View()
	assert.Contains(t, view, "You hit a ship!")
	assert.Contains(t, view, match.PassMovePrompt)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Player 2, it's your turn:")
	assert.Equal(t, game.RolePlayerTwo, mt.State().Player)

	m = enter(t, m, "K11")
	assert.Contains(t, m.View(), "Error! You entered the wrong coordinates! Try again:")
	assert.Equal(t, game.RolePlayerTwo, mt.State().Player)
}

func TestModel_Rematch(t *testing.T) {
	mt := match.New(match.Rules{Mode: match.ModeTwoPlayer, ExtraShotOnHit: true}, match.WithFleet(shortFleet))
	m := tui.New(mt)

	for _, line := range []string{"A1 A3", "C1 C2"} {
		m = enter(t, m, line)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for _, line := range []string{"D3 D5", "F1 F2"} {
		m = enter(t, m, line)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	for _, c := range []string{"D3", "D4", "D5", "F1", "F2"} {
		m = enter(t, m, c)
	}

	require.Equal(t, match.PhaseGameOver, mt.State().Phase)
	assert.Contains(t, m.View(), "You sank the last ship. You won. Congratulations!")
	assert.Equal(t, match.PlayerOneWon, m.Match().Verdict().Winner)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Contains(t, m.View(), match.PassMovePrompt)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, match.PhaseBattle, mt.State().Phase)
	assert.Contains(t, m.View(), "Player 2, it's your turn:")
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := tui.New(match.New(match.Rules{Mode: match.ModeTwoPlayer}))

		_, cmd := m.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestModel_BlankLineIgnored(t *testing.T) {
	mt := match.New(match.Rules{Mode: match.ModePractice}, match.WithFleet(shortFleet))
	m := tui.New(mt)

	m = enter(t, m, "  ")

	assert.NotContains(t, m.View(), "Error!")
	assert.Equal(t, 0, mt.State().ShipIndex)
}
