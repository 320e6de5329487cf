package mazegen

import (
	"golang.org/x/sync/errgroup"

	"github.com/gridforge/mazecore/pkg/common"
	"github.com/gridforge/mazecore/pkg/grid"
	"github.com/gridforge/mazecore/pkg/randsrc"
)

func init() {
	Register(Fractal, "hierarchical divide & conquer, data-parallel across blocks", generateFractal)
}

// generateFractal implements the hierarchical divide & conquer generator
// (spec §4.3.3): a macro lattice of block_side x block_side blocks carved by
// an in-memory recursive backtracker, each block then carved independently
// in parallel, and finally stitched at the carved macro-edges. Fan-out uses
// golang.org/x/sync/errgroup the way janpfeifer-go-highway's tooling pulls
// in x/sync for worker-pool fan-out, rather than hand-rolled WaitGroup
// bookkeeping.
//
// Residual-strip policy (open question b, SPEC_FULL.md §14b): when width or height
// isn't a multiple of BlockSide, the rightmost block column / bottommost
// block row absorbs the remainder — those blocks are wider/taller than
// BlockSide, never smaller or dropped.
func generateFractal(cfg Config) (*grid.Grid, error) {
	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	g.FillWalls()

	blockSide := cfg.BlockSide
	wBlocks := cfg.Width / blockSide
	hBlocks := cfg.Height / blockSide
	if wBlocks < 1 {
		wBlocks = 1
	}
	if hBlocks < 1 {
		hBlocks = 1
	}

	blocks := computeBlockBounds(cfg.Width, cfg.Height, wBlocks, hBlocks, blockSide)

	parentRNG := randsrc.New(cfg.Seed)

	// Step 1: macro lattice — a perfect maze over the wBlocks x hBlocks
	// grid of blocks, run serially in memory. A single-block grid needs no
	// macro maze or stitching at all.
	var macro *grid.Grid
	if wBlocks > 1 || hBlocks > 1 {
		macro, err = grid.New(maxInt(wBlocks, 2), maxInt(hBlocks, 2))
		if err != nil {
			return nil, err
		}
		macro.FillWalls()
		macroRNG := randsrc.New(parentRNG.Int63())
		if carveDFS(macro, macroRNG, cfg) {
			return nil, common.ErrCancelled
		}
	}

	// Step 2: in parallel across blocks, carve each block's interior with
	// its own recursive backtracker and its own derived RNG stream, each
	// worker owning an exclusive byte range of g (spec §5 fork-join model).
	workerSeeds := make([][]int64, hBlocks)
	for by := 0; by < hBlocks; by++ {
		workerSeeds[by] = make([]int64, wBlocks)
		for bx := 0; bx < wBlocks; bx++ {
			workerSeeds[by][bx] = parentRNG.Int63()
		}
	}

	eg, _ := errgroup.WithContext(cfg.Ctx)
	eg.SetLimit(workerLimit(cfg.Workers))
	for by := 0; by < hBlocks; by++ {
		for bx := 0; bx < wBlocks; bx++ {
			by, bx := by, bx
			eg.Go(func() error {
				if cfg.cancelled() {
					return common.ErrCancelled
				}
				if carveBlockInterior(g, blocks[by][bx], randsrc.New(workerSeeds[by][bx]), cfg) {
					return common.ErrCancelled
				}
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Step 3 (join barrier before this point): stitch every carved
	// macro-edge, each write touching two cells step 2 never wrote to.
	if macro == nil {
		g.SetFlag(0, 0, grid.VisitedGen, true)
		return g, nil
	}
	// A single row or column of blocks has exactly one spanning tree, so
	// every adjacent pair along it is stitched; the padded macro grid is
	// only consulted when the lattice is at least 2x2.
	stitchGroup, _ := errgroup.WithContext(cfg.Ctx)
	stitchGroup.SetLimit(workerLimit(cfg.Workers))
	for by := 0; by < hBlocks; by++ {
		for bx := 0; bx < wBlocks; bx++ {
			by, bx := by, bx
			if bx+1 < wBlocks && (hBlocks == 1 || !macro.HasWall(bx, by, grid.E)) {
				stitchGroup.Go(func() error {
					stitchBlocks(g, blocks[by][bx], blocks[by][bx+1], grid.E)
					return nil
				})
			}
			if by+1 < hBlocks && (wBlocks == 1 || !macro.HasWall(bx, by, grid.S)) {
				stitchGroup.Go(func() error {
					stitchBlocks(g, blocks[by][bx], blocks[by+1][bx], grid.S)
					return nil
				})
			}
		}
	}
	if err := stitchGroup.Wait(); err != nil {
		return nil, err
	}

	g.SetFlag(0, 0, grid.VisitedGen, true)
	return g, nil
}

type blockBounds struct {
	x0, y0, x1, y1 int // half-open: [x0,x1) x [y0,y1)
}

// computeBlockBounds partitions width x height into wBlocks x hBlocks
// blocks of blockSide, folding any remainder into the last column/row.
func computeBlockBounds(width, height, wBlocks, hBlocks, blockSide int) [][]blockBounds {
	out := make([][]blockBounds, hBlocks)
	for by := 0; by < hBlocks; by++ {
		y0 := by * blockSide
		y1 := y0 + blockSide
		if by == hBlocks-1 {
			y1 = height
		}
		out[by] = make([]blockBounds, wBlocks)
		for bx := 0; bx < wBlocks; bx++ {
			x0 := bx * blockSide
			x1 := x0 + blockSide
			if bx == wBlocks-1 {
				x1 = width
			}
			out[by][bx] = blockBounds{x0: x0, y0: y0, x1: x1, y1: y1}
		}
	}
	return out
}

// carveBlockInterior runs a recursive backtracker confined to b's cells,
// treating the block's outer edge as a wall (spec §4.3.3 step 2). Returns
// true if cfg.Ctx was cancelled before the carve completed.
func carveBlockInterior(g *grid.Grid, b blockBounds, rng *randsrc.Source, cfg Config) bool {
	start := grid.Point{X: b.x0, Y: b.y0}
	g.SetFlag(start.X, start.Y, grid.VisitedGen, true)

	stack := []grid.Point{start}
	var nbrs [4]grid.Neighbor
	var unvisited [4]grid.Neighbor

	for len(stack) > 0 {
		if cfg.cancelled() {
			return true
		}
		top := stack[len(stack)-1]

		n := g.Neighbors(top.X, top.Y, &nbrs)
		uCount := 0
		for i := 0; i < n; i++ {
			nb := nbrs[i]
			if nb.X < b.x0 || nb.X >= b.x1 || nb.Y < b.y0 || nb.Y >= b.y1 {
				continue // outside this block: treated as a wall
			}
			if !g.GetFlag(nb.X, nb.Y, grid.VisitedGen) {
				unvisited[uCount] = nb
				uCount++
			}
		}

		if uCount == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		pick := unvisited[rng.Intn(uCount)]
		carveAndVisit(g, top, pick, cfg.Sink)
		stack = append(stack, pick.Point)
	}
	return false
}

// stitchBlocks opens exactly one passage between two adjacent blocks at the
// midpoint of their shared edge, rounded down (spec §4.3.3 step 3). dir is
// the direction from a's block to b's block.
func stitchBlocks(g *grid.Grid, a, b blockBounds, dir grid.Dir) {
	switch dir {
	case grid.E:
		mid := a.y0 + (a.y1-a.y0)/2
		_ = g.Carve(a.x1-1, mid, grid.E)
	case grid.S:
		mid := a.x0 + (a.x1-a.x0)/2
		_ = g.Carve(mid, a.y1-1, grid.S)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func workerLimit(n int) int {
	if n <= 0 {
		return 8
	}
	return n
}
