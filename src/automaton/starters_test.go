package automaton

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGridDensityExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	dead, err := RandomGrid(6, 8, 0, rng)
	require.NoError(t, err)
	assert.Equal(t, 0, dead.LiveCells())

	alive, err := RandomGrid(6, 8, 1, rng)
	require.NoError(t, err)
	assert.Equal(t, 6*8, alive.LiveCells())
}

func TestRandomGridValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := RandomGrid(0, 8, 0.5, rng)
	assert.ErrorIs(t, err, ErrInvalidGrid)

	_, err = RandomGrid(6, 8, 1.5, rng)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGridFromCoordinates(t *testing.T) {
	g, err := GridFromCoordinates(3, 4, [][2]int{{0, 0}, {2, 3}})
	require.NoError(t, err)

	assert.True(t, g.At(0, 0))
	assert.True(t, g.At(2, 3))
	assert.Equal(t, 2, g.LiveCells())
}

func TestGridFromCoordinatesRejectsOutOfBounds(t *testing.T) {
	_, err := GridFromCoordinates(3, 4, [][2]int{{3, 0}})
	assert.ErrorIs(t, err, ErrInvalidGrid)

	_, err = GridFromCoordinates(3, 4, [][2]int{{0, -1}})
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestTemplateGrid(t *testing.T) {
	g, err := TemplateGrid(5, 5, "blinker", 2, 1)
	require.NoError(t, err)

	assert.True(t, g.At(2, 1))
	assert.True(t, g.At(2, 2))
	assert.True(t, g.At(2, 3))
	assert.Equal(t, 3, g.LiveCells())
}

func TestTemplateGridUnknownName(t *testing.T) {
	_, err := TemplateGrid(5, 5, "spaceship", 0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTemplateGridRejectsOverflow(t *testing.T) {
	//a pulsar needs a 13x13 box, it cannot sit at (2,2) in a 10x10 grid
	_, err := TemplateGrid(10, 10, "pulsar", 2, 2)
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestTemplateNames(t *testing.T) {
	names := TemplateNames()
	assert.Equal(t, []string{"blinker", "glider", "pulsar"}, names)
}
