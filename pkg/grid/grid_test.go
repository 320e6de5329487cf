package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsTinyAndHugeGrids(t *testing.T) {
	_, err := New(1, 5)
	assert.ErrorIs(t, err, ErrDimensionTooSmall)

	_, err = New(30000, 30000)
	assert.ErrorIs(t, err, ErrGridTooLarge)

	g, err := New(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
}

func TestCarveClearsBothSides(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)
	g.FillWalls()

	require.NoError(t, g.Carve(0, 0, E))
	assert.False(t, g.HasWall(0, 0, E))
	assert.False(t, g.HasWall(1, 0, W))

	pt, dir, ok := g.CheckWallSymmetry()
	assert.True(t, ok, "unexpected asymmetry at %v dir %v", pt, dir)
}

func TestCarveAtEdgeFails(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)
	g.FillWalls()

	err = g.Carve(0, 0, W)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestNeighborsClippedAtBorder(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	var nbrs [4]Neighbor
	n := g.Neighbors(0, 0, &nbrs)
	assert.Equal(t, 2, n)

	n = g.Neighbors(1, 1, &nbrs)
	assert.Equal(t, 4, n)
}

func TestResetSolverFlagsPreservesWallsAndGenVisit(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)
	g.FillWalls()
	require.NoError(t, g.Carve(0, 0, E))
	g.SetFlag(0, 0, VisitedGen, true)
	g.SetFlag(0, 0, VisitedSolve, true)
	g.SetFlag(0, 0, OnPath, true)
	g.SetFlag(0, 0, MarkAux, true)

	g.ResetSolverFlags()

	assert.True(t, g.GetFlag(0, 0, VisitedGen))
	assert.False(t, g.GetFlag(0, 0, VisitedSolve))
	assert.False(t, g.GetFlag(0, 0, OnPath))
	assert.False(t, g.GetFlag(0, 0, MarkAux))
	assert.False(t, g.HasWall(0, 0, E))
}

func TestRoundTripBytes(t *testing.T) {
	g, err := New(4, 5)
	require.NoError(t, err)
	g.FillWalls()
	require.NoError(t, g.Carve(1, 1, S))

	g2, err := FromBytes(g.Width(), g.Height(), g.Bytes())
	require.NoError(t, err)
	assert.True(t, g.Equal(g2))
}

func TestOpenEdgeCountPerfectMaze(t *testing.T) {
	g, err := New(5, 5)
	require.NoError(t, err)
	g.FillWalls()
	// Carve a boustrophedon spanning path touching every cell exactly once:
	// width*height-1 = 24 edges, the perfect-maze invariant (spec §8.3).
	for y := 0; y < 5; y++ {
		if y%2 == 0 {
			for x := 0; x < 4; x++ {
				require.NoError(t, g.Carve(x, y, E))
			}
		} else {
			for x := 4; x > 0; x-- {
				require.NoError(t, g.Carve(x, y, W))
			}
		}
		if y < 4 {
			dropX := 4
			if y%2 == 1 {
				dropX = 0
			}
			require.NoError(t, g.Carve(dropX, y, S))
		}
	}
	assert.Equal(t, 24, g.OpenEdgeCount())

	reach := g.ReachableFrom(g.Start())
	assert.Len(t, reach, 25)
}
