package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cardinals = []Direction{DirectionNorth, DirectionEast, DirectionSouth, DirectionWest}

func TestDirection_OppositeIsInvolution(t *testing.T) {
	for _, d := range cardinals {
		assert.Equal(t, d, d.Opposite().Opposite(), "direction %s", d)
		assert.NotEqual(t, d, d.Opposite(), "direction %s", d)
	}
	assert.Equal(t, DirectionNone, DirectionNone.Opposite())
	assert.Equal(t, DirectionNone, Direction(42).Opposite())
}

func TestVectorOf_Bijection(t *testing.T) {
	expected := map[Direction]Vector2{
		DirectionNorth: {0, 1},
		DirectionEast:  {1, 0},
		DirectionSouth: {0, -1},
		DirectionWest:  {-1, 0},
	}

	seen := make(map[Vector2]Direction)
	for _, d := range cardinals {
		v, ok := VectorOf(d)
		require.True(t, ok, "direction %s", d)
		assert.Equal(t, expected[d], v)

		_, dup := seen[v]
		assert.False(t, dup, "vector %v used twice", v)
		seen[v] = d
	}
}

func TestVectorOf_NoneHasNoOffset(t *testing.T) {
	for _, d := range []Direction{DirectionNone, Direction(99)} {
		v, ok := VectorOf(d)
		assert.False(t, ok, "direction %s must not yield an offset", d)
		assert.Equal(t, Vector2{}, v)
	}
}

func TestPositionBehind(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Position
	}{
		// Ось Y хоста перевернута: за спиной у смотрящего на север y больше
		{DirectionNorth, Position{X: 10, Y: 11}},
		{DirectionSouth, Position{X: 10, Y: 9}},
		{DirectionEast, Position{X: 9, Y: 10}},
		{DirectionWest, Position{X: 11, Y: 10}},
	}

	for _, tt := range tests {
		got, ok := PositionBehind(10, 10, tt.dir)
		require.True(t, ok)
		assert.Equal(t, tt.expected, got, "facing %s", tt.dir)
	}

	_, ok := PositionBehind(10, 10, DirectionNone)
	assert.False(t, ok)
}

func TestScreenVector_StepsAwayFromBehind(t *testing.T) {
	// Шаг вперед и клетка за спиной лежат по разные стороны от игрока
	for _, d := range cardinals {
		step, ok := ScreenVector(d)
		require.True(t, ok)
		behind, _ := PositionBehind(0, 0, d)
		assert.Equal(t, Position{X: -step.DX, Y: -step.DY}, behind, "facing %s", d)
	}
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, DirectionNorth, ParseDirection("north"))
	assert.Equal(t, DirectionWest, ParseDirection("WEST"))
	assert.Equal(t, DirectionNone, ParseDirection("up"))
	assert.Equal(t, "EAST", DirectionEast.String())
	assert.Equal(t, "UNKNOWN", Direction(77).String())
}
