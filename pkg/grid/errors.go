// Package grid implements the bit-packed rectangular cell grid shared by
// every generator and solver: constant-time wall/flag queries and mutations
// at one byte per cell (spec §3, §4.1).
package grid

import "errors"

// Sentinel errors for grid construction and mutation, in the style of
// lvlath's gridgraph package (gridgraph/errors.go): a small, named set
// callers can compare against with errors.Is instead of parsing messages.
var (
	// ErrDimensionTooSmall indicates width or height below the 2-cell floor.
	ErrDimensionTooSmall = errors.New("grid: width and height must each be at least 2")
	// ErrGridTooLarge indicates width*height exceeds the 4e8-cell ceiling.
	ErrGridTooLarge = errors.New("grid: width*height must not exceed 4e8 cells")
	// ErrOutOfBounds indicates a coordinate or carve direction fell off the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

const maxCells = 400_000_000
