package grid

// ReachableFrom returns the set of cells reachable from start by walking
// carved (non-wall) edges, via a plain BFS. Used by generator connectivity
// tests (spec §8 universal invariant 2).
func (g *Grid) ReachableFrom(start Point) map[Point]bool {
	visited := make(map[Point]bool, g.width*g.height)
	queue := []Point{start}
	visited[start] = true

	var nbrs [4]Neighbor
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		n := g.Neighbors(cur.X, cur.Y, &nbrs)
		for i := 0; i < n; i++ {
			nb := nbrs[i]
			if visited[nb.Point] {
				continue
			}
			if g.HasWall(cur.X, cur.Y, nb.Dir) {
				continue
			}
			visited[nb.Point] = true
			queue = append(queue, nb.Point)
		}
	}
	return visited
}

// OpenEdgeCount counts carved edges, each counted once (spec §8 invariant 3:
// a perfect maze has exactly width*height-1 open edges).
func (g *Grid) OpenEdgeCount() int {
	count := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			// Count E and S edges only, so each edge is counted from exactly
			// one of its two cells.
			if x+1 < g.width && !g.HasWall(x, y, E) {
				count++
			}
			if y+1 < g.height && !g.HasWall(x, y, S) {
				count++
			}
		}
	}
	return count
}

// IsDeadEnd reports whether (x, y) has exactly three walls (spec §4.3.5,
// §4.6). Corner start/exit cells are exempt by convention at the call site,
// not here — IsDeadEnd reports the raw wall count only.
func (g *Grid) IsDeadEnd(x, y int) bool {
	return g.Cell(x, y).WallCount() == 3
}

// DeadEnds returns every dead-end cell in row-major order.
func (g *Grid) DeadEnds() []Point {
	var out []Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.IsDeadEnd(x, y) {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// CheckWallSymmetry verifies the invariant that for any two adjacent cells
// A, B, A's edge-flag toward B equals B's edge-flag toward A (spec §3.1).
// Returns the first violating point and direction found, or ok=true if none.
func (g *Grid) CheckWallSymmetry() (pt Point, dir Dir, ok bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			for _, d := range [2]Dir{E, S} {
				dx, dy := d.Delta()
				nx, ny := x+dx, y+dy
				if !g.inBounds(nx, ny) {
					continue
				}
				if g.HasWall(x, y, d) != g.HasWall(nx, ny, d.Opposite()) {
					return Point{x, y}, d, false
				}
			}
		}
	}
	return Point{}, 0, true
}
