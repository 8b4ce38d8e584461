package field

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the width and height of every battlefield.
const Size = 10

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a zero-based (row, col) cell address. Row 0 is "A",
// col 0 is "1".
type Coordinate struct {
	Row, Col int
}

// Parses a coordinate such as "A1" or "j10".
func ParseCoordinate(text string) (Coordinate, error) {
	text = strings.TrimSpace(text)

	if len(text) < 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, text)
	}

	letter := text[0]
	if 'a' <= letter && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter >= 'A'+Size {
		return Coordinate{}, fmt.Errorf("%w: row %q out of range", ErrInvalidCoordinate, text[0])
	}

	col, err := strconv.Atoi(text[1:])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, text)
	}
	if col < 1 || col > Size {
		return Coordinate{}, fmt.Errorf("%w: column %d out of range", ErrInvalidCoordinate, col)
	}

	return Coordinate{Row: int(letter - 'A'), Col: col - 1}, nil
}

func (c Coordinate) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Returns left, up, right and down neighbours. Results are not clipped
// to the grid.
func (c Coordinate) Neighbors() [4]Coordinate {
	return [4]Coordinate{
		{c.Row, c.Col - 1},
		{c.Row - 1, c.Col},
		{c.Row, c.Col + 1},
		{c.Row + 1, c.Col},
	}
}

// Returns all eight cells around c, diagonals included. Results are not
// clipped to the grid.
func (c Coordinate) Surrounding() [8]Coordinate {
	var out [8]Coordinate
	i := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			out[i] = Coordinate{c.Row + dr, c.Col + dc}
			i++
		}
	}
	return out
}

func (c Coordinate) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string(rune('A'+c.Row)) + strconv.Itoa(c.Col+1)
}
