package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/mazecore/pkg/mazegen"
)

func TestComputeOnPerfectMaze(t *testing.T) {
	g, err := mazegen.Generate(mazegen.Config{Width: 10, Height: 10, Seed: 1, Algo: mazegen.DFS})
	require.NoError(t, err)

	r := Compute(g)
	assert.True(t, r.PathFound)
	assert.Greater(t, r.PathLength, 0)
	assert.Greater(t, r.DeadEndCount, 0)
	assert.GreaterOrEqual(t, r.BranchingFactor, 0.0)
}

func TestBraidingReducesDeadEndCount(t *testing.T) {
	g1, err := mazegen.Generate(mazegen.Config{Width: 20, Height: 20, Seed: 4, Algo: mazegen.DFS})
	require.NoError(t, err)
	g2, err := mazegen.Generate(mazegen.Config{Width: 20, Height: 20, Seed: 4, Algo: mazegen.DFS, Braid: 1.0})
	require.NoError(t, err)

	d1 := DeadEndCount(g1)
	d2 := DeadEndCount(g2)
	assert.Less(t, d2, d1, "fully braided maze should have fewer dead ends than its unbraided counterpart")
}

func TestPathLengthMatchesManualTwoByTwoGrid(t *testing.T) {
	g, err := mazegen.Generate(mazegen.Config{Width: 2, Height: 2, Seed: 1, Algo: mazegen.DFS})
	require.NoError(t, err)

	length, found := PathLength(g)
	assert.True(t, found)
	assert.GreaterOrEqual(t, length, 2)
}
