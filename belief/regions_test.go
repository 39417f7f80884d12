package belief_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridbelief/belief"
)

// TestRegions_Maze: the pillar does not split the maze, so every admissible
// cell forms one region holding all the mass.
func TestRegions_Maze(t *testing.T) {
	g := newMaze(t)
	regions := g.Regions()
	require.Len(t, regions, 1)
	assert.Len(t, regions[0].Cells, 11)
	assert.InDelta(t, 0.999, regions[0].Mass, 1e-12)
	assert.Equal(t, belief.Coordinate{X: 0, Y: 0}, regions[0].Cells[0])
}

// TestRegions_Split checks a wall of inadmissible cells separating two rooms.
//
//	0.2  -  0.3
//	0.1  -  0.4
func TestRegions_Split(t *testing.T) {
	g, err := belief.NewGrid([][]belief.Cell{
		{a(0.2), x, a(0.3)},
		{a(0.1), x, a(0.4)},
	})
	require.NoError(t, err)

	regions := g.Regions()
	require.Len(t, regions, 2)
	assert.Equal(t, []belief.Coordinate{{X: 0, Y: 0}, {X: 0, Y: 1}}, regions[0].Cells)
	assert.InDelta(t, 0.3, regions[0].Mass, 1e-12)
	assert.Equal(t, []belief.Coordinate{{X: 2, Y: 0}, {X: 2, Y: 1}}, regions[1].Cells)
	assert.InDelta(t, 0.7, regions[1].Mass, 1e-12)
}

func TestMostLikely(t *testing.T) {
	g, err := belief.NewGrid([][]belief.Cell{{a(0.25), a(0.25)}, {a(0.25), a(0.25)}})
	require.NoError(t, err)
	at, p := g.MostLikely()
	assert.Equal(t, belief.Coordinate{X: 0, Y: 0}, at) // first on ties
	assert.Equal(t, 0.25, p)

	// all-zero belief never reports an inadmissible cell
	g, err = belief.NewGrid([][]belief.Cell{{x, a(0)}})
	require.NoError(t, err)
	at, p = g.MostLikely()
	assert.Equal(t, belief.Coordinate{X: 1, Y: 0}, at)
	assert.Equal(t, 0.0, p)
}

func TestEntropy(t *testing.T) {
	g, err := belief.NewGrid([][]belief.Cell{{a(0.25), a(0.25)}, {a(0.25), a(0.25)}})
	require.NoError(t, err)
	assert.InDelta(t, math.Log(4), g.Entropy(), 1e-12)

	g, err = belief.NewGrid([][]belief.Cell{{a(0), x}, {a(1), a(0)}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, g.Entropy())

	g = newMaze(t)
	require.NoError(t, g.ObserveAction(belief.Coordinate{}, belief.Up, belief.TwoWalls))
	assert.InDelta(t, 1.538323280496564, g.Entropy(), 1e-9)
}
