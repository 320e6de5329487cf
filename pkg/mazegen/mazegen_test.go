package mazegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDFSPerfectMazeInvariants(t *testing.T) {
	cfg := Config{Width: 5, Height: 5, Seed: 1, Algo: DFS}
	g, err := Generate(cfg)
	require.NoError(t, err)

	pt, dir, ok := g.CheckWallSymmetry()
	assert.True(t, ok, "asymmetry at %v dir %v", pt, dir)

	reach := g.ReachableFrom(g.Start())
	assert.Len(t, reach, 25)

	assert.Equal(t, 24, g.OpenEdgeCount())
}

func TestDFSDeterministicForSameSeed(t *testing.T) {
	cfg := Config{Width: 10, Height: 10, Seed: 99, Algo: DFS}
	g1, err := Generate(cfg)
	require.NoError(t, err)
	g2, err := Generate(cfg)
	require.NoError(t, err)
	assert.True(t, g1.Equal(g2))
}

func TestPrimPerfectMazeSpanningTree(t *testing.T) {
	cfg := Config{Width: 10, Height: 10, Seed: 42, Algo: Prim}
	g, err := Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, 99, g.OpenEdgeCount())

	reach := g.ReachableFrom(g.Start())
	assert.Len(t, reach, 100)
}

func TestBraidOneRemovesAllDeadEnds(t *testing.T) {
	cfg := Config{Width: 20, Height: 20, Seed: 7, Algo: DFS, Braid: 1.0}
	g, err := Generate(cfg)
	require.NoError(t, err)

	for _, pt := range g.DeadEnds() {
		if pt == g.Start() || pt == g.Exit() {
			continue
		}
		t.Fatalf("unexpected dead end at %v with braid=1.0", pt)
	}
}

func TestFractalGeneratorConnected(t *testing.T) {
	cfg := Config{Width: 16, Height: 16, Seed: 3, Algo: Fractal, BlockSide: 8}
	g, err := Generate(cfg)
	require.NoError(t, err)

	reach := g.ReachableFrom(g.Start())
	assert.Len(t, reach, 256)
}

func TestFractalResidualStripHandlesNonMultipleDims(t *testing.T) {
	cfg := Config{Width: 20, Height: 13, Seed: 5, Algo: Fractal, BlockSide: 8}
	g, err := Generate(cfg)
	require.NoError(t, err)

	reach := g.ReachableFrom(g.Start())
	assert.Len(t, reach, 20*13)
}

func TestOrganicGeneratorConnected(t *testing.T) {
	cfg := Config{Width: 16, Height: 16, Seed: 0, Algo: Organic, AgentCount: 16}
	g, err := Generate(cfg)
	require.NoError(t, err)

	reach := g.ReachableFrom(g.Start())
	assert.Len(t, reach, 256, "organic maze must be fully connected")

	pt, dir, ok := g.CheckWallSymmetry()
	assert.True(t, ok, "asymmetry at %v dir %v", pt, dir)
}

func TestOrganicDeterministicForSameSeed(t *testing.T) {
	cfg := Config{Width: 12, Height: 12, Seed: 11, Algo: Organic, AgentCount: 8}
	g1, err := Generate(cfg)
	require.NoError(t, err)
	g2, err := Generate(cfg)
	require.NoError(t, err)
	assert.True(t, g1.Equal(g2), "organic generator must reproduce final state for a fixed seed")
}

func TestGenerateUnknownAlgo(t *testing.T) {
	_, err := Generate(Config{Width: 5, Height: 5, Algo: "nope"})
	assert.Error(t, err)
}

func TestListIncludesAllAlgorithms(t *testing.T) {
	names := List()
	assert.Contains(t, names, DFS)
	assert.Contains(t, names, Prim)
	assert.Contains(t, names, Fractal)
	assert.Contains(t, names, Organic)
}

func TestSmallestValidGrid(t *testing.T) {
	cfg := Config{Width: 2, Height: 2, Seed: 1, Algo: DFS}
	g, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, g.OpenEdgeCount())
}
