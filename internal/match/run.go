package match

import (
	"errors"
	"fmt"

	"github.com/mrsobakin/battleship/internal/game"
	"github.com/mrsobakin/battleship/internal/game/field"
)

type roleError struct {
	Role game.Role
	Err  error
}

func failedAs(role game.Role, err error) *roleError {
	return &roleError{
		role,
		err,
	}
}

func (e *roleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Role, e.Err)
}

func (e *roleError) Unwrap() error {
	return e.Err
}

type round struct {
	match   *Match
	players [2]game.PlayerExt
}

func (r *round) player(role game.Role) *game.PlayerExt {
	return &r.players[role]
}

func (r *round) SetupPlayer(role game.Role) error {
	player := r.player(role)
	f := r.match.Field(role)

	if r.match.Rules().Mode == ModeTwoPlayer {
		if err := player.Show(SetupBanner(role)); err != nil {
			return failedAs(role, err)
		}
	}

	if err := player.Show(f.Render(false)); err != nil {
		return failedAs(role, err)
	}

	for {
		state := r.match.State()
		if state.Phase != PhaseSetup || state.Player != role {
			return nil
		}

		class, _ := r.match.CurrentShip()
		prompt := ShipPrompt(class)

		for {
			var head, tail string
			err := player.SendScanf(prompt, "%s %s", &head, &tail)
			if err == nil {
				err = r.match.PlaceShip(head, tail)
			}

			if err == nil {
				break
			}
			if !isInputError(err) {
				return failedAs(role, fmt.Errorf("failed to place %s: %w", class.Name, err))
			}

			prompt = Describe(err)
		}

		if err := player.Show(f.Render(false)); err != nil {
			return failedAs(role, err)
		}
	}
}

// Handles one shot of the current player, re-prompting until the input
// is a valid coordinate.
func (r *round) Shoot() (Outcome, error) {
	mode := r.match.Rules().Mode
	shooter := r.match.State().Player
	player := r.player(shooter)

	if mode == ModeTwoPlayer {
		if err := player.Show(r.match.View(shooter)); err != nil {
			return Outcome{}, failedAs(shooter, err)
		}
	}

	prompt := TurnPrompt(mode, shooter)

	for {
		resp, err := player.SendNonEmpty(prompt)
		if err != nil {
			return Outcome{}, failedAs(shooter, err)
		}

		outcome, err := r.match.Fire(resp)
		if err == nil {
			return outcome, nil
		}
		if !isInputError(err) {
			return Outcome{}, failedAs(shooter, err)
		}

		prompt = Describe(err)
	}
}

func (r *round) Play() (Verdict, error) {
	players := r.match.Players()

	for _, role := range players {
		if err := r.SetupPlayer(role); err != nil {
			return Verdict{}, err
		}

		if len(players) > 1 {
			if err := r.player(role).WaitAck(PassMovePrompt); err != nil {
				return Verdict{}, failedAs(role, err)
			}
		}
	}

	mode := r.match.Rules().Mode
	if mode == ModePractice {
		player := r.player(game.RolePlayerOne)
		if err := player.Showf("%s\n%s", msgGameStarts, r.match.View(game.RolePlayerOne)); err != nil {
			return Verdict{}, failedAs(game.RolePlayerOne, err)
		}
	}

	for {
		outcome, err := r.Shoot()
		if err != nil {
			return Verdict{}, err
		}

		shooter := r.player(outcome.Shooter)

		if mode == ModePractice {
			err = shooter.Showf("%s\n%s", r.match.View(outcome.Shooter), outcome.Message(mode))
		} else {
			err = shooter.Show(outcome.Message(mode))
		}
		if err != nil {
			return Verdict{}, failedAs(outcome.Shooter, err)
		}

		if outcome.Win {
			return r.match.Verdict(), nil
		}

		if outcome.Next != outcome.Shooter {
			if err := shooter.WaitAck(PassMovePrompt); err != nil {
				return Verdict{}, failedAs(outcome.Shooter, err)
			}
		}
	}
}

// Reports whether err was caused by bad player input, i.e. the player
// should simply be asked again.
func isInputError(err error) bool {
	var placementErr *field.PlacementError
	return errors.Is(err, game.ErrBadFormat) ||
		errors.Is(err, field.ErrInvalidCoordinate) ||
		errors.As(err, &placementErr)
}

// Plays the match to the end over the given players' I/O, one player per
// seat (see Players). Both seats may share the same Player for hotseat play.
//
// Returns the verdict once somebody wins, or an error describing the player
// that failed, e.g. because its input was closed.
func (m *Match) Run(players ...game.Player) (Verdict, error) {
	seats := m.Players()
	if len(players) != len(seats) {
		return Verdict{}, fmt.Errorf("match needs %d players, got %d", len(seats), len(players))
	}
	if m.state.Phase != PhaseSetup {
		return Verdict{}, fmt.Errorf("%w: match has already started", ErrWrongPhase)
	}

	r := &round{match: m}
	for i, role := range seats {
		r.players[role] = game.PlayerExt{Player: players[i]}
	}

	return r.Play()
}
