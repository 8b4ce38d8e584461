package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrsobakin/battleship/internal/config"
	"github.com/mrsobakin/battleship/internal/console"
	"github.com/mrsobakin/battleship/internal/game"
	"github.com/mrsobakin/battleship/internal/match"
	"github.com/mrsobakin/battleship/internal/tui"
)

func playConsole(m *match.Match) (match.Verdict, error) {
	player := console.NewPlayer(os.Stdin, os.Stdout)
	defer player.Close()

	// Hotseat: every seat reads the same console.
	var players []game.Player
	for range m.Players() {
		players = append(players, player)
	}

	return m.Run(players...)
}

func playTUI(m *match.Match) (match.Verdict, error) {
	final, err := tea.NewProgram(tui.New(m), tea.WithAltScreen()).Run()
	if err != nil {
		return match.Verdict{}, err
	}

	m = final.(tui.Model).Match()
	if m.State().Phase != match.PhaseGameOver {
		return match.Verdict{}, game.ErrPlayerLeft
	}

	return m.Verdict(), nil
}

func run(conf *config.Config, logger *slog.Logger) error {
	m := match.New(conf.Rules(), match.WithLogger(logger))

	logger.Info("match created", "match_id", m.ID(), "mode", conf.Mode.String(), "ui", string(conf.UI))

	var verdict match.Verdict
	var err error

	switch conf.UI {
	case config.UITUI:
		verdict, err = playTUI(m)
	default:
		verdict, err = playConsole(m)
	}

	if errors.Is(err, game.ErrPlayerLeft) {
		logger.Info("match abandoned", "match_id", m.ID())
		fmt.Println("Bye!")
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("match finished", "verdict", verdict)
	return nil
}

func main() {
	conf, err := config.Load(".env", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "battleship:", err)
		os.Exit(2)
	}

	logger, closer, err := NewLogger(&conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, "battleship: failed to open log file:", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(&conf, logger); err != nil {
		logger.Error("match failed", "error", err)
		fmt.Fprintln(os.Stderr, "battleship:", err)
		closer.Close()
		os.Exit(1)
	}
}
