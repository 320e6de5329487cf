package mazesolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/mazecore/pkg/grid"
	"github.com/gridforge/mazecore/pkg/mazegen"
)

// perfectMaze builds a small deterministic perfect maze to solve against.
func perfectMaze(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := mazegen.Generate(mazegen.Config{Width: 8, Height: 8, Seed: 5, Algo: mazegen.DFS})
	require.NoError(t, err)
	return g
}

// braidedMaze builds a maze with loops, for solvers that tolerate cycles.
func braidedMaze(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := mazegen.Generate(mazegen.Config{Width: 8, Height: 8, Seed: 5, Algo: mazegen.DFS, Braid: 0.5})
	require.NoError(t, err)
	return g
}

func assertValidPath(t *testing.T, g *grid.Grid, res Result, start, exit grid.Point) {
	t.Helper()
	require.True(t, res.Found)
	require.NotEmpty(t, res.Path)
	assert.Equal(t, start, res.Path[0])
	assert.Equal(t, exit, res.Path[len(res.Path)-1])

	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		d, ok := grid.DirectionFromDelta(b.X-a.X, b.Y-a.Y)
		require.True(t, ok, "non-adjacent path step %v -> %v", a, b)
		assert.False(t, g.HasWall(a.X, a.Y, d), "path crosses a wall at %v -> %v", a, b)
	}
}

var optimalAlgos = []Algo{BFS, Dijkstra, AStar, BiAStar, Swarm}

func TestOptimalSolversAgreeOnPathLength(t *testing.T) {
	g := perfectMaze(t)
	start, exit := g.Start(), g.Exit()

	var want int
	for i, algo := range optimalAlgos {
		g2 := g.Clone()
		res, err := Solve(g2, algo, start, exit, Config{})
		require.NoError(t, err)
		assertValidPath(t, g2, res, start, exit)
		if i == 0 {
			want = len(res.Path)
		} else {
			assert.Equal(t, want, len(res.Path), "algo %s disagrees on optimal path length", algo)
		}
	}
}

func TestDFSSolveAndDeadEndFindAPath(t *testing.T) {
	g := perfectMaze(t)
	start, exit := g.Start(), g.Exit()

	for _, algo := range []Algo{DFSSolve, DeadEnd, Tremaux} {
		g2 := g.Clone()
		res, err := Solve(g2, algo, start, exit, Config{})
		require.NoError(t, err, "algo %s", algo)
		assertValidPath(t, g2, res, start, exit)
	}
}

func TestLeftWallFollowerSolvesPerfectMaze(t *testing.T) {
	g := perfectMaze(t)
	start, exit := g.Start(), g.Exit()
	res, err := Solve(g.Clone(), Left, start, exit, Config{})
	require.NoError(t, err)
	assert.True(t, res.Found, "a perfect maze has no isolated loops, left-hand rule must solve it")
}

func TestRightWallFollowerSolvesPerfectMaze(t *testing.T) {
	g := perfectMaze(t)
	start, exit := g.Start(), g.Exit()
	res, err := Solve(g.Clone(), Right, start, exit, Config{})
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestWallFollowerBraidedMazeVisitsAtMostEveryCell(t *testing.T) {
	g := braidedMaze(t)
	start, exit := g.Start(), g.Exit()
	res, _ := Solve(g.Clone(), Left, start, exit, Config{})
	if !res.Found {
		assert.LessOrEqual(t, res.VisitedCount, 8*8)
	}
}

func TestVisitedCountNeverExceedsCellCount(t *testing.T) {
	g := perfectMaze(t)
	start, exit := g.Start(), g.Exit()
	for _, algo := range List() {
		g2 := g.Clone()
		res, err := Solve(g2, algo, start, exit, Config{})
		require.NoError(t, err, "algo %s", algo)
		assert.LessOrEqual(t, res.VisitedCount, 8*8, "algo %s visited more cells than exist", algo)
	}
}

func TestAStarVisitsNoMoreThanBFS(t *testing.T) {
	g := perfectMaze(t)
	start, exit := g.Start(), g.Exit()

	resBFS, err := Solve(g.Clone(), BFS, start, exit, Config{})
	require.NoError(t, err)
	resAStar, err := Solve(g.Clone(), AStar, start, exit, Config{})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, resBFS.VisitedCount, resAStar.VisitedCount,
		"an informed search should never visit more cells than blind BFS on the same maze")
}

func TestSolveMarksOnPathFlag(t *testing.T) {
	g := perfectMaze(t)
	start, exit := g.Start(), g.Exit()
	res, err := Solve(g, BFS, start, exit, Config{})
	require.NoError(t, err)
	require.True(t, res.Found)

	for _, p := range res.Path {
		assert.True(t, g.GetFlag(p.X, p.Y, grid.OnPath))
	}
}

func TestUnknownSolverAlgo(t *testing.T) {
	g := perfectMaze(t)
	_, err := Solve(g, "nope", g.Start(), g.Exit(), Config{})
	assert.Error(t, err)
}

func TestListIncludesAllSolvers(t *testing.T) {
	names := List()
	for _, want := range []Algo{BFS, Dijkstra, AStar, BiAStar, DFSSolve, Left, Right, DeadEnd, Tremaux, Swarm} {
		assert.Contains(t, names, want)
	}
}

func TestSwarmDegenerateStartEqualsExit(t *testing.T) {
	g := perfectMaze(t)
	res, err := Solve(g, Swarm, g.Start(), g.Start(), Config{})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []grid.Point{g.Start()}, res.Path)
}
