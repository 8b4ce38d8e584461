package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsobakin/battleship/internal/game/field"
)

func TestParseCoordinate(t *testing.T) {
	valid := []struct {
		text     string
		row, col int
	}{
		{"A1", 0, 0},
		{"J10", 9, 9},
		{"E7", 4, 6},
		{"b3", 1, 2},
		{" C10\n", 2, 9},
	}

	for _, tc := range valid {
		t.Run(tc.text, func(t *testing.T) {
			c, err := field.ParseCoordinate(tc.text)
			require.NoError(t, err)
			assert.Equal(t, field.Coordinate{Row: tc.row, Col: tc.col}, c)
		})
	}

	invalid := []string{"", "A", "K1", "A11", "A0", "A-1", "Ax", "1A", "@5", "AA1"}

	for _, text := range invalid {
		t.Run("invalid "+text, func(t *testing.T) {
			_, err := field.ParseCoordinate(text)
			assert.ErrorIs(t, err, field.ErrInvalidCoordinate)
		})
	}
}

func TestCoordinate_String(t *testing.T) {
	for _, text := range []string{"A1", "J10", "C5"} {
		c, err := field.ParseCoordinate(text)
		require.NoError(t, err)
		assert.Equal(t, text, c.String())
	}

	assert.Equal(t, "(-1,3)", field.Coordinate{Row: -1, Col: 3}.String())
}

func TestCoordinate_Neighbors(t *testing.T) {
	c := field.Coordinate{Row: 0, Col: 0}

	assert.Equal(t, [4]field.Coordinate{
		{Row: 0, Col: -1},
		{Row: -1, Col: 0},
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
	}, c.Neighbors(), "neighbours are not clipped")

	inBounds := 0
	for _, n := range c.Surrounding() {
		if n.InBounds() {
			inBounds++
		}
		assert.NotEqual(t, c, n)
	}
	assert.Equal(t, 3, inBounds, "corner cell has three surrounding cells on the grid")
}
