package match

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mrsobakin/battleship/internal/game"
	"github.com/mrsobakin/battleship/internal/game/field"
)

var (
	ErrWrongPhase = errors.New("action is not allowed in the current phase")
	ErrGameOver   = errors.New("game is over")
)

type Mode int

const (
	// Two players place fleets and shoot at each other's field.
	ModeTwoPlayer Mode = iota
	// A single player places a fleet and shoots at it.
	ModePractice
)

func (m *Mode) FromString(str string) error {
	switch str {
	case "two-player":
		*m = ModeTwoPlayer
	case "practice":
		*m = ModePractice
	default:
		return fmt.Errorf("invalid mode %q", str)
	}
	return nil
}

func (m Mode) String() string {
	switch m {
	case ModeTwoPlayer:
		return "two-player"
	case ModePractice:
		return "practice"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

type Rules struct {
	Mode Mode

	// Lets the shooter fire again after damaging a ship.
	// Has no effect in practice mode, where the turn never passes.
	ExtraShotOnHit bool
}

type Phase int

const (
	PhaseSetup Phase = iota
	PhaseBattle
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseBattle:
		return "battle"
	case PhaseGameOver:
		return "game over"
	default:
		panic("invalid phase")
	}
}

type State struct {
	Phase Phase

	// Player whose input is expected. In PhaseGameOver, the winner.
	Player game.Role

	// Index into the fleet of the next ship to place. Only
	// meaningful in PhaseSetup.
	ShipIndex int
}

type Outcome struct {
	Shooter game.Role
	Target  field.Coordinate
	Result  field.ShotResult
	Win     bool
	Next    game.Role
}

// Match sequences one or two battlefields through setup and battle.
//
// Match is a plain state machine: every method runs synchronously and
// returns once the state is updated. It is not thread safe.
type Match struct {
	id     string
	rules  Rules
	fleet  []field.ShipClass
	fields [2]*field.Battlefield
	shots  [2]int
	state  State
	logger *slog.Logger
}

type Option func(*Match)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Match) {
		m.logger = logger
	}
}

// Replaces the standard fleet. Mostly useful for short games in tests.
// An empty fleet is ignored.
func WithFleet(fleet []field.ShipClass) Option {
	return func(m *Match) {
		if len(fleet) == 0 {
			return
		}
		m.fleet = append([]field.ShipClass(nil), fleet...)
	}
}

func New(rules Rules, opts ...Option) *Match {
	m := &Match{
		id:     uuid.NewString()[:8],
		rules:  rules,
		fleet:  field.Fleet(),
		logger: slog.New(slog.DiscardHandler),
		state: State{
			Phase:  PhaseSetup,
			Player: game.RolePlayerOne,
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	if rules.Mode != ModeTwoPlayer && rules.Mode != ModePractice {
		m.logger.Warn("unknown mode, playing two-player", "match_id", m.id, "mode", rules.Mode.String())
		m.rules.Mode = ModeTwoPlayer
	}

	m.logger = m.logger.With("match_id", m.id, "mode", m.rules.Mode.String())

	for _, role := range m.Players() {
		m.fields[role] = field.NewBattlefield()
	}

	return m
}

func (m *Match) ID() string {
	return m.id
}

func (m *Match) Rules() Rules {
	return m.rules
}

func (m *Match) State() State {
	return m.state
}

func (m *Match) Fleet() []field.ShipClass {
	return append([]field.ShipClass(nil), m.fleet...)
}

// Returns the seats taking part in the match.
func (m *Match) Players() []game.Role {
	if m.rules.Mode == ModePractice {
		return []game.Role{game.RolePlayerOne}
	}
	return []game.Role{game.RolePlayerOne, game.RolePlayerTwo}
}

// Returns the battlefield owned by role, or nil if role does not play.
func (m *Match) Field(role game.Role) *field.Battlefield {
	return m.fields[role]
}

// Returns the owner of the field that shooter fires at.
func (m *Match) TargetOf(shooter game.Role) game.Role {
	if m.rules.Mode == ModePractice {
		return shooter
	}
	return shooter.Other()
}

// Returns the ship class expected by the next PlaceShip call.
func (m *Match) CurrentShip() (field.ShipClass, bool) {
	if m.state.Phase != PhaseSetup || m.state.ShipIndex >= len(m.fleet) {
		return field.ShipClass{}, false
	}
	return m.fleet[m.state.ShipIndex], true
}

// Number of shots fired by role since the battle started.
func (m *Match) Shots(role game.Role) int {
	return m.shots[role]
}

func (m *Match) checkPhase(phase Phase) error {
	if m.state.Phase == phase {
		return nil
	}
	if m.state.Phase == PhaseGameOver {
		return ErrGameOver
	}
	return fmt.Errorf("%w: expected %s, got %s", ErrWrongPhase, phase, m.state.Phase)
}

// Places the current ship of the current player between two endpoints.
//
// On error, the match state and the battlefield are left untouched, so the
// same step can simply be retried.
func (m *Match) PlaceShip(head, tail string) error {
	if err := m.checkPhase(PhaseSetup); err != nil {
		return err
	}

	class, _ := m.CurrentShip()
	role := m.state.Player

	ship, err := field.NewShip(head, tail, class)
	if err != nil {
		return err
	}

	if err := m.fields[role].PlaceShip(ship); err != nil {
		return err
	}

	m.logger.Debug("ship placed",
		"player", role.String(),
		"class", class.Name,
		"head", ship.Head().String(),
		"orientation", ship.Orientation().String(),
	)

	m.advanceSetup()
	return nil
}

func (m *Match) advanceSetup() {
	m.state.ShipIndex++
	if m.state.ShipIndex < len(m.fleet) {
		return
	}

	m.state.ShipIndex = 0

	players := m.Players()
	if m.state.Player != players[len(players)-1] {
		m.state.Player = m.state.Player.Other()
		return
	}

	m.state.Phase = PhaseBattle
	m.state.Player = game.RolePlayerOne
	m.logger.Info("battle started")
}

// Fires the current player's shot at the given coordinate of the
// opponent's field (own field in practice mode).
//
// An unparsable coordinate returns an error wrapping
// field.ErrInvalidCoordinate and keeps the turn with the same player.
func (m *Match) Fire(target string) (Outcome, error) {
	if err := m.checkPhase(PhaseBattle); err != nil {
		return Outcome{}, err
	}

	c, err := field.ParseCoordinate(target)
	if err != nil {
		return Outcome{}, err
	}

	shooter := m.state.Player
	victim := m.fields[m.TargetOf(shooter)]

	result := victim.Shoot(c)
	m.shots[shooter]++

	outcome := Outcome{
		Shooter: shooter,
		Target:  c,
		Result:  result,
		Win:     result == field.HitAndSunk && victim.AllDead(),
	}

	switch {
	case outcome.Win:
		outcome.Next = shooter
		m.state.Phase = PhaseGameOver
	case m.rules.Mode == ModePractice:
		outcome.Next = shooter
	case m.rules.ExtraShotOnHit && result.IsHit():
		outcome.Next = shooter
	default:
		outcome.Next = shooter.Other()
	}

	m.state.Player = outcome.Next

	m.logger.Debug("shot fired",
		"player", shooter.String(),
		"target", c.String(),
		"result", result.String(),
		"ships_left", victim.LiveShips(),
	)

	if outcome.Win {
		m.logger.Info("game over", "verdict", m.Verdict())
	}

	return outcome, nil
}

// Restarts the battle with the same fleet layouts. The loser of the
// previous game shoots first.
func (m *Match) Rematch() error {
	if m.state.Phase != PhaseGameOver {
		return fmt.Errorf("%w: rematch is only possible after the game is over", ErrWrongPhase)
	}

	for _, role := range m.Players() {
		m.fields[role].ResetShots()
	}
	m.shots = [2]int{}

	m.state = State{
		Phase:  PhaseBattle,
		Player: m.TargetOf(m.state.Player),
	}

	m.logger.Info("rematch started", "first", m.state.Player.String())
	return nil
}

func (m *Match) Verdict() Verdict {
	if m.state.Phase != PhaseGameOver {
		return Verdict{MatchID: m.id, Winner: None}
	}

	return Verdict{
		MatchID: m.id,
		Winner:  ResultFromWinner(m.state.Player),
		Shots:   m.shots[m.state.Player],
	}
}
