package grid

import "fmt"

// Dir identifies one of the four cardinal edges of a cell.
type Dir uint8

const (
	N Dir = iota
	S
	E
	W
)

// wallBit maps a Dir to its bit position in the packed cell byte (spec §3.1).
var wallBit = [4]uint8{N: bitWallN, S: bitWallS, E: bitWallE, W: bitWallW}

// opposite is the fixed permutation used to find the matching edge on a
// neighboring cell (spec §4.1 implementation note).
var opposite = [4]Dir{N: S, S: N, E: W, W: E}

// Opposite returns the direction facing back across the same edge.
func (d Dir) Opposite() Dir { return opposite[d] }

// Delta returns the (dx, dy) grid step for d. North decreases Y, consistent
// with row-major, top-down indexing (spec §3.2, y*width+x).
func (d Dir) Delta() (int, int) {
	switch d {
	case N:
		return 0, -1
	case S:
		return 0, 1
	case E:
		return 1, 0
	case W:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Dir) String() string {
	switch d {
	case N:
		return "N"
	case S:
		return "S"
	case E:
		return "E"
	case W:
		return "W"
	default:
		return fmt.Sprintf("Dir(%d)", uint8(d))
	}
}

// AllDirs is the fixed N,E,S,W tie-break order every solver walks (spec §4.4
// "Tie-breaks" — neighbor examination order is fixed across all solvers).
var AllDirs = [4]Dir{N, E, S, W}

// DirectionFromDelta returns the Dir matching a unit (dx, dy) step, or false
// if the delta isn't a single cardinal step.
func DirectionFromDelta(dx, dy int) (Dir, bool) {
	switch {
	case dx == 0 && dy == -1:
		return N, true
	case dx == 0 && dy == 1:
		return S, true
	case dx == 1 && dy == 0:
		return E, true
	case dx == -1 && dy == 0:
		return W, true
	default:
		return 0, false
	}
}
