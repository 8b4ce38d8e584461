package field

type ShipClass struct {
	Name   string
	Length int
}

var (
	AircraftCarrier = ShipClass{"Aircraft Carrier", 5}
	Battleship      = ShipClass{"Battleship", 4}
	Submarine       = ShipClass{"Submarine", 3}
	Cruiser         = ShipClass{"Cruiser", 3}
	Destroyer       = ShipClass{"Destroyer", 2}
)

// Returns the standard fleet in placement order.
func Fleet() []ShipClass {
	return []ShipClass{AircraftCarrier, Battleship, Submarine, Cruiser, Destroyer}
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	} else {
		return "vertical"
	}
}

type Ship struct {
	class       ShipClass
	head        Coordinate
	orientation Orientation
	length      int
	remaining   int
}

// Builds a ship of the given class from two endpoint strings, e.g. "A1" "A5".
func NewShip(head, tail string, class ShipClass) (*Ship, error) {
	h, err := ParseCoordinate(head)
	if err != nil {
		return nil, err
	}

	t, err := ParseCoordinate(tail)
	if err != nil {
		return nil, err
	}

	return NewShipAt(h, t, class)
}

// Builds a ship of the given class spanning head..tail inclusive.
// Endpoints may come in any order.
func NewShipAt(head, tail Coordinate, class ShipClass) (*Ship, error) {
	if !head.InBounds() || !tail.InBounds() {
		return nil, ErrInvalidCoordinate
	}

	if head.Row != tail.Row && head.Col != tail.Col {
		return nil, &PlacementError{Reason: ReasonMisaligned, Class: class.Name}
	}

	if head.Row > tail.Row || head.Col > tail.Col {
		head, tail = tail, head
	}

	var orientation Orientation
	var length int
	if head.Row == tail.Row {
		orientation = Horizontal
		length = tail.Col - head.Col + 1
	} else {
		orientation = Vertical
		length = tail.Row - head.Row + 1
	}

	if length != class.Length {
		return nil, &PlacementError{Reason: ReasonWrongLength, Class: class.Name}
	}

	// Unreachable for catalog classes, kept as a hard bound.
	if length <= 0 || length > Size {
		return nil, &PlacementError{Reason: ReasonInvalidLength, Class: class.Name}
	}

	return &Ship{
		class:       class,
		head:        head,
		orientation: orientation,
		length:      length,
		remaining:   length,
	}, nil
}

func (s *Ship) Class() ShipClass {
	return s.class
}

func (s *Ship) Head() Coordinate {
	return s.head
}

func (s *Ship) Orientation() Orientation {
	return s.orientation
}

func (s *Ship) Len() int {
	return s.length
}

func (s *Ship) Remaining() int {
	return s.remaining
}

func (s *Ship) Sunk() bool {
	return s.remaining == 0
}

// Returns the cells the ship occupies, starting at its head.
func (s *Ship) Coordinates() []Coordinate {
	coords := make([]Coordinate, s.length)
	for i := range coords {
		if s.orientation == Horizontal {
			coords[i] = Coordinate{s.head.Row, s.head.Col + i}
		} else {
			coords[i] = Coordinate{s.head.Row + i, s.head.Col}
		}
	}
	return coords
}

// Registers a hit on one of the ship's sections.
//
// Returns true only for the hit that destroys the last section. A sunk
// ship ignores further hits.
func (s *Ship) RegisterHit() (sunk bool) {
	if s.remaining == 0 {
		return false
	}

	s.remaining--
	return s.remaining == 0
}

func (s *Ship) repair() {
	s.remaining = s.length
}
