package field

import (
	"iter"
	"strconv"
	"strings"

	"github.com/dolthub/swiss"
)

type shipID uint8 // 0 means "no ship"

type cell struct {
	status CellStatus
	ship   shipID
	buffer bool
}

// Battlefield is a single player's 10x10 grid.
//
// Ships are stored in a registry keyed by id; cells only keep the id of
// the ship covering them, so damage is resolved by the battlefield itself.
//
// Battlefield is not thread safe.
type Battlefield struct {
	cells        [Size][Size]cell
	ships        *swiss.Map[shipID, *Ship]
	order        []shipID
	live         int
	lastShotSunk bool
}

var _ Field = (*Battlefield)(nil)

func NewBattlefield() *Battlefield {
	return &Battlefield{
		ships: swiss.NewMap[shipID, *Ship](uint32(len(Fleet()))),
	}
}

func (b *Battlefield) at(c Coordinate) *cell {
	return &b.cells[c.Row][c.Col]
}

// Checks whether any of the given cells is taken or borders a ship.
func (b *Battlefield) blocked(coords []Coordinate) bool {
	for _, c := range coords {
		if !c.InBounds() {
			return true
		}

		target := b.at(c)
		if target.buffer || target.status != CellUnknown {
			return true
		}
	}

	return false
}

func (b *Battlefield) PlaceShip(ship *Ship) error {
	coords := ship.Coordinates()

	if b.blocked(coords) {
		return &PlacementError{Reason: ReasonTooClose, Class: ship.Class().Name}
	}

	id := shipID(len(b.order) + 1)

	for _, c := range coords {
		target := b.at(c)
		target.status = CellOccupied
		target.ship = id
	}

	for _, c := range coords {
		for _, n := range c.Surrounding() {
			if !n.InBounds() {
				continue
			}

			if neighbor := b.at(n); neighbor.ship != id {
				neighbor.buffer = true
			}
		}
	}

	b.ships.Put(id, ship)
	b.order = append(b.order, id)
	b.live++

	return nil
}

func (b *Battlefield) Shoot(c Coordinate) ShotResult {
	b.lastShotSunk = false

	if !c.InBounds() {
		return Miss
	}

	target := b.at(c)

	switch target.status {
	case CellOccupied:
		target.status = CellHit

		ship, ok := b.ships.Get(target.ship)
		if !ok {
			panic("occupied cell without a registered ship")
		}

		if ship.RegisterHit() {
			b.lastShotSunk = true
			b.live--
			return HitAndSunk
		}

		return Hit
	case CellHit:
		return AlreadyResolved
	default:
		target.status = CellMiss
		return Miss
	}
}

// Cell status at c. Out of bounds cells are reported as unknown.
func (b *Battlefield) Status(c Coordinate) CellStatus {
	if !c.InBounds() {
		return CellUnknown
	}
	return b.at(c).status
}

// Reports whether c is blocked for placement by a neighbouring ship.
func (b *Battlefield) IsBuffer(c Coordinate) bool {
	return c.InBounds() && b.at(c).buffer
}

func (b *Battlefield) LiveShips() int {
	return b.live
}

func (b *Battlefield) AllDead() bool {
	return b.live == 0
}

// Whether the most recent Shoot sank a ship.
func (b *Battlefield) LastShotSunk() bool {
	return b.lastShotSunk
}

func (b *Battlefield) Ships() iter.Seq[*Ship] {
	return func(yield func(*Ship) bool) {
		for _, id := range b.order {
			ship, _ := b.ships.Get(id)
			if !yield(ship) {
				return
			}
		}
	}
}

func (b *Battlefield) ResetShots() {
	for row := range b.cells {
		for col := range b.cells[row] {
			c := &b.cells[row][col]
			switch c.status {
			case CellHit:
				c.status = CellOccupied
			case CellMiss:
				c.status = CellUnknown
			}
		}
	}

	b.ships.Iter(func(_ shipID, ship *Ship) (stop bool) {
		ship.repair()
		return
	})

	b.live = b.ships.Count()
	b.lastShotSunk = false
}

func (c cell) symbol(hideShips bool) byte {
	switch c.status {
	case CellOccupied:
		if hideShips {
			return '~'
		}
		return 'O'
	case CellHit:
		return 'X'
	case CellMiss:
		return 'M'
	default:
		return '~'
	}
}

// Renders the field:
//
//	  1 2 3 4 5 6 7 8 9 10
//	A ~ ~ ~ ~ ~ ~ ~ ~ ~ ~
//	...
//	J ~ ~ ~ ~ ~ ~ ~ ~ ~ ~
func (b *Battlefield) Render(hideShips bool) string {
	var sb strings.Builder

	sb.WriteString(" ")
	for col := 1; col <= Size; col++ {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(col))
	}

	for row := range b.cells {
		sb.WriteByte('\n')
		sb.WriteByte(byte('A' + row))
		for _, c := range b.cells[row] {
			sb.WriteByte(' ')
			sb.WriteByte(c.symbol(hideShips))
		}
	}

	return sb.String()
}
