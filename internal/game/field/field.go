package field

import (
	"fmt"
	"iter"
)

type ShotResult int

const (
	Miss ShotResult = iota
	Hit
	HitAndSunk
	AlreadyResolved
)

func (r *ShotResult) FromString(str string) error {
	switch str {
	case "miss":
		*r = Miss
	case "hit":
		*r = Hit
	case "sunk":
		*r = HitAndSunk
	case "resolved":
		*r = AlreadyResolved
	default:
		return fmt.Errorf("invalid shot result %q", str)
	}
	return nil
}

func (r ShotResult) String() string {
	switch r {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case HitAndSunk:
		return "sunk"
	case AlreadyResolved:
		return "resolved"
	default:
		panic("invalid shot result")
	}
}

// Whether the shot damaged a ship.
func (r ShotResult) IsHit() bool {
	return r == Hit || r == HitAndSunk
}

type CellStatus int

const (
	CellUnknown CellStatus = iota
	CellOccupied
	CellHit
	CellMiss
)

func (s CellStatus) String() string {
	switch s {
	case CellUnknown:
		return "unknown"
	case CellOccupied:
		return "occupied"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	default:
		panic("invalid cell status")
	}
}

type PlacementReason int

const (
	ReasonMisaligned PlacementReason = iota
	ReasonWrongLength
	ReasonTooClose
	ReasonInvalidLength
)

// PlacementError is returned when a ship cannot be built or placed.
// Class is the name of the ship class involved, if known.
type PlacementError struct {
	Reason PlacementReason
	Class  string
}

var (
	ErrMisalignedShip    error = &PlacementError{Reason: ReasonMisaligned}
	ErrWrongLength       error = &PlacementError{Reason: ReasonWrongLength}
	ErrTooClose          error = &PlacementError{Reason: ReasonTooClose}
	ErrInvalidShipLength error = &PlacementError{Reason: ReasonInvalidLength}
)

func (e *PlacementError) Is(target error) bool {
	if err, ok := target.(*PlacementError); ok {
		return e.Reason == err.Reason
	}

	return false
}

func (e *PlacementError) Error() string {
	switch e.Reason {
	case ReasonMisaligned:
		return "wrong ship location"
	case ReasonWrongLength:
		if e.Class == "" {
			return "wrong ship length"
		}
		return fmt.Sprintf("wrong length of the %s", e.Class)
	case ReasonTooClose:
		return "ship placed too close to another one"
	case ReasonInvalidLength:
		return "invalid ship length"
	default:
		panic("unknown placement reason")
	}
}

type Field interface {
	// Places a ship on the field.
	//
	// If the ship overlaps or touches (diagonally included) an already
	// placed ship, ErrTooClose is returned and the field is left as is.
	PlaceShip(*Ship) error

	// Resolves a shot, modifies field internal state and
	// returns its result.
	Shoot(Coordinate) ShotResult

	// Renders the field as text. If hideShips is set, intact ship
	// sections are drawn as unknown water.
	Render(hideShips bool) string

	// Returns the status of a single cell.
	Status(Coordinate) CellStatus

	// Number of placed ships that are not sunk yet.
	LiveShips() int

	// Returns whether all ships are destroyed, i.e. the
	// corresponding player lost.
	AllDead() bool

	// Undoes all shots on the field, i.e. reverts field
	// to the state just after the last placement.
	ResetShots()

	// Yields every placed ship in placement order.
	Ships() iter.Seq[*Ship]
}
