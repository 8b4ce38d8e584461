package match

import (
	"errors"
	"fmt"

	"github.com/mrsobakin/battleship/internal/game"
	"github.com/mrsobakin/battleship/internal/game/field"
)

const (
	msgPlaceShips   = "%s, place your ships on the game field"
	msgEnterShip    = "Enter the coordinates of the %s (%d cells):"
	msgGameStarts   = "The game starts!"
	msgTakeShot     = "Take a shot!"
	msgYourTurn     = "%s, it's your turn:"
	msgPassMove     = "Press Enter and pass the move to another player"
	msgDivider      = "---------------------"
	msgWrongCoords  = "Error! You entered the wrong coordinates! Try again:"
	msgWrongPlace   = "Error! Wrong ship location! Try again:"
	msgWrongLength  = "Error! Wrong length of the %s! Try again:"
	msgTooClose     = "Error! You placed it too close to another one. Try again:"
	msgInvalidShip  = "Error! Invalid ship length! Try again:"
	msgMissed       = "You missed!"
	msgHit          = "You hit a ship!"
	msgSank         = "You sank a ship!"
	msgAlreadyHit   = "This part of the ship is already hit!"
	msgWon          = "You sank the last ship. You won. Congratulations!"
	msgWonPractice  = "You sank the last ship. Congratulations!"
	msgUnknownError = "Error! %s. Try again:"
)

// Returns the text shown to a player when a placement or a shot is
// rejected with err.
func Describe(err error) string {
	var placementErr *field.PlacementError

	switch {
	case errors.Is(err, field.ErrInvalidCoordinate), errors.Is(err, game.ErrBadFormat):
		return msgWrongCoords
	case errors.Is(err, field.ErrMisalignedShip):
		return msgWrongPlace
	case errors.Is(err, field.ErrWrongLength) && errors.As(err, &placementErr):
		return fmt.Sprintf(msgWrongLength, placementErr.Class)
	case errors.Is(err, field.ErrTooClose):
		return msgTooClose
	case errors.Is(err, field.ErrInvalidShipLength):
		return msgInvalidShip
	default:
		return fmt.Sprintf(msgUnknownError, err)
	}
}

// Returns the text shown to the shooter after a shot.
func (o Outcome) Message(mode Mode) string {
	if o.Win {
		if mode == ModePractice {
			return msgWonPractice
		}
		return msgWon
	}

	switch o.Result {
	case field.Hit:
		return msgHit
	case field.HitAndSunk:
		return msgSank
	case field.AlreadyResolved:
		return msgAlreadyHit
	default:
		return msgMissed
	}
}

// Returns the setup prompt for the given ship class.
func ShipPrompt(class field.ShipClass) string {
	return fmt.Sprintf(msgEnterShip, class.Name, class.Length)
}

// Returns the prompt asking role to fire.
func TurnPrompt(mode Mode, role game.Role) string {
	if mode == ModePractice {
		return msgTakeShot
	}
	return fmt.Sprintf(msgYourTurn, role)
}

// Returns the banner shown when role starts placing ships.
func SetupBanner(role game.Role) string {
	return fmt.Sprintf(msgPlaceShips, role)
}

// Text asking the current player to hand the console over.
const PassMovePrompt = msgPassMove

// Renders the battle view for role: the target field with ships hidden,
// and in two-player mode the player's own field below it.
func (m *Match) View(role game.Role) string {
	target := m.Field(m.TargetOf(role)).Render(true)
	if m.rules.Mode == ModePractice {
		return target
	}
	return target + "\n" + msgDivider + "\n" + m.Field(role).Render(false)
}
