package grid

// Point is a 2D cell coordinate within a Grid.
type Point struct {
	X, Y int
}

// Neighbor is one up-to-4 result of Grid.Neighbors: the adjacent coordinate
// and the direction it lies in relative to the queried cell.
type Neighbor struct {
	Point
	Dir Dir
}

// Grid is a contiguous, bit-packed rectangular cell buffer (spec §3.2): one
// byte per cell, indexed y*width+x, with canonical Start=(0,0) and
// Exit=(width-1, height-1).
type Grid struct {
	width, height int
	cells         []byte
}

// New allocates a zero-initialized grid: no walls, no visits (spec §3.2
// lifecycle — a generator that needs an all-walls start calls FillWalls).
func New(width, height int) (*Grid, error) {
	if width < 2 || height < 2 {
		return nil, ErrDimensionTooSmall
	}
	if width*height > maxCells {
		return nil, ErrGridTooLarge
	}
	return &Grid{width: width, height: height, cells: make([]byte, width*height)}, nil
}

// Width returns the grid's column count.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's row count.
func (g *Grid) Height() int { return g.height }

// Dimensions satisfies the external grid-reader interface (spec §6).
func (g *Grid) Dimensions() (int, int) { return g.width, g.height }

// Start is the canonical generation/solve origin (0,0).
func (g *Grid) Start() Point { return Point{0, 0} }

// Exit is the canonical generation/solve destination (width-1, height-1).
func (g *Grid) Exit() Point { return Point{g.width - 1, g.height - 1} }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int { return y*g.width + x }

// Cell returns the packed byte at (x, y). Out-of-bounds coordinates return
// the zero Cell; callers expected to have validated bounds via Neighbors or
// InBounds first (hot-path accessor, spec §4.1 "no allocations").
func (g *Grid) Cell(x, y int) Cell {
	if !g.inBounds(x, y) {
		return 0
	}
	return Cell(g.cells[g.index(x, y)])
}

// GetCell satisfies the external read-only grid-reader interface (spec §6):
// returns the raw byte state at (x, y).
func (g *Grid) GetCell(x, y int) byte {
	if !g.inBounds(x, y) {
		return 0
	}
	return g.cells[g.index(x, y)]
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g *Grid) InBounds(x, y int) bool { return g.inBounds(x, y) }

// FillWalls sets all four wall bits on every cell, the "all walls present"
// starting configuration a generator carves into (spec §3.2, §4.3).
func (g *Grid) FillWalls() {
	for i := range g.cells {
		g.cells[i] = byte(allWalls)
	}
}

// HasWall reports whether the edge of (x, y) facing d is a wall.
func (g *Grid) HasWall(x, y int, d Dir) bool {
	return g.Cell(x, y).HasWall(d)
}

// SetWall sets or clears the wall between (x, y) and its neighbor in
// direction d, updating both cells so the wall-symmetry invariant (spec
// §3.1) never lapses. Returns ErrOutOfBounds if the neighbor falls off the
// grid's edge.
func (g *Grid) SetWall(x, y int, d Dir, on bool) error {
	if !g.inBounds(x, y) {
		return ErrOutOfBounds
	}
	nx, ny := x, y
	dx, dy := d.Delta()
	nx, ny = nx+dx, ny+dy
	if !g.inBounds(nx, ny) {
		return ErrOutOfBounds
	}
	i, ni := g.index(x, y), g.index(nx, ny)
	g.cells[i] = byte(Cell(g.cells[i]).withWall(d, on))
	g.cells[ni] = byte(Cell(g.cells[ni]).withWall(d.Opposite(), on))
	return nil
}

// Carve clears the wall bit in direction d on (x, y) and the matching
// opposite bit on its neighbor (spec §4.1). Equivalent to SetWall(..., false).
func (g *Grid) Carve(x, y int, d Dir) error {
	return g.SetWall(x, y, d, false)
}

// GetFlag returns a single-cell scratch/visit bit; no cross-cell symmetry
// rule applies (spec §4.1).
func (g *Grid) GetFlag(x, y int, f Flag) bool {
	return g.Cell(x, y).HasFlag(f)
}

// SetFlag sets or clears a single-cell scratch/visit bit.
func (g *Grid) SetFlag(x, y int, f Flag, on bool) {
	if !g.inBounds(x, y) {
		return
	}
	i := g.index(x, y)
	g.cells[i] = byte(Cell(g.cells[i]).withFlag(f, on))
}

// Neighbors returns the up-to-4 in-bounds neighbors of (x, y), clipped at
// the border, in fixed N,E,S,W order (spec §4.4 tie-break order; §4.1 "no
// allocations in the hot path" — the backing array is caller-owned).
func (g *Grid) Neighbors(x, y int, out *[4]Neighbor) int {
	n := 0
	for _, d := range AllDirs {
		dx, dy := d.Delta()
		nx, ny := x+dx, y+dy
		if g.inBounds(nx, ny) {
			out[n] = Neighbor{Point: Point{nx, ny}, Dir: d}
			n++
		}
	}
	return n
}

// ResetSolverFlags clears VisitedSolve, OnPath, and MarkAux on every cell in
// a single scan, leaving walls and VisitedGen untouched (spec §4.1). Used
// between repeated solver runs over the same generated grid.
func (g *Grid) ResetSolverFlags() {
	const clearMask = byte(bitVisitedSolve | bitOnPath | bitMarkAux)
	for i, b := range g.cells {
		g.cells[i] = b &^ clearMask
	}
}

// Clone returns an independent copy of the grid, used by tests and by
// round-trip / replay verification that must compare two grids byte for
// byte without aliasing the original's buffer.
func (g *Grid) Clone() *Grid {
	cp := make([]byte, len(g.cells))
	copy(cp, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cp}
}

// Bytes returns the raw packed cell buffer, row-major, for serialization
// (spec §4.5). Callers must not mutate the returned slice.
func (g *Grid) Bytes() []byte { return g.cells }

// FromBytes constructs a grid from a previously serialized row-major byte
// buffer of length width*height (spec §4.5 round trip).
func FromBytes(width, height int, data []byte) (*Grid, error) {
	if width < 2 || height < 2 {
		return nil, ErrDimensionTooSmall
	}
	if len(data) != width*height {
		return nil, ErrOutOfBounds
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return &Grid{width: width, height: height, cells: cp}, nil
}

// Equal reports whether two grids have identical dimensions and byte state,
// used by round-trip and determinism property tests (spec §8).
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Reader is the narrow read-only interface external renderers consume
// (spec §6 "Grid reader interface"). *Grid satisfies it directly.
type Reader interface {
	GetCell(x, y int) byte
	Dimensions() (int, int)
}

var _ Reader = (*Grid)(nil)
