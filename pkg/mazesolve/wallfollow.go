package mazesolve

import "github.com/gridforge/mazecore/pkg/grid"

func init() {
	Register(Left, "left-hand wall follower, loops only", wallFollower(true))
	Register(Right, "right-hand wall follower, loops only", wallFollower(false))
}

// facingOrder is the clockwise direction cycle used to turn a wall-following
// robot's local orientation; N->E->S->W->N.
var facingOrder = [4]grid.Dir{grid.N, grid.E, grid.S, grid.W}

func turnIndex(d grid.Dir) int {
	for i, f := range facingOrder {
		if f == d {
			return i
		}
	}
	return 0
}

// wallFollower returns a SolverFunc implementing hand-on-wall traversal
// (spec §4.4 table: left/right, "no memory; local orientation"). It keeps a
// facing direction and, at every cell, tries turning toward its tracked
// hand first, then straight, then away, then back — the standard
// maze-wall-following rule — bounded at 4*cells steps since it may not
// terminate in a braided maze with an isolated cycle (spec §4.4, §7, §9).
func wallFollower(leftHand bool) SolverFunc {
	return func(g *grid.Grid, start, exit grid.Point, cfg Config) (Result, error) {
		w, h := g.Dimensions()
		stepCap := 4 * w * h

		facing := turnIndex(grid.E) // arbitrary initial facing, matches a
		// robot that "walks in" facing east; direction is irrelevant to
		// correctness, only to which wall ends up on its tracked hand.

		pos := start
		path := []grid.Point{start}
		visited := map[grid.Point]bool{start: true}
		markVisited(g, start, cfg.Sink)

		var turnOrder [4]int

		for step := 0; step < stepCap; step++ {
			if cfg.cancelled() {
				return Result{}, errCancelled
			}
			if pos == exit {
				return Result{Found: true, Path: path, VisitedCount: len(visited)}, nil
			}

			// turnOrder[0] = hand side first, then straight, then other side, then back.
			if leftHand {
				turnOrder = [4]int{(facing + 3) % 4, facing, (facing + 1) % 4, (facing + 2) % 4}
			} else {
				turnOrder = [4]int{(facing + 1) % 4, facing, (facing + 3) % 4, (facing + 2) % 4}
			}

			moved := false
			for _, idx := range turnOrder {
				d := facingOrder[idx]
				if g.HasWall(pos.X, pos.Y, d) {
					continue
				}
				dx, dy := d.Delta()
				next := grid.Point{X: pos.X + dx, Y: pos.Y + dy}
				facing = idx
				pos = next
				path = append(path, pos)
				if !visited[pos] {
					visited[pos] = true
					markVisited(g, pos, cfg.Sink)
				}
				moved = true
				break
			}
			if !moved {
				// Walled in on all four sides: only possible for an
				// unreachable isolated cell, which start never is.
				return Result{Found: false, VisitedCount: len(visited)}, nil
			}
		}

		return Result{Found: false, VisitedCount: len(visited)}, nil
	}
}
