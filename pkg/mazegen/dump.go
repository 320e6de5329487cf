package mazegen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gridforge/mazecore/pkg/common"
	"github.com/gridforge/mazecore/pkg/grid"
)

// WriteFailureDump writes a deterministic dump (JSON + ASCII render) of g to
// dumpDir, for post-mortem inspection of an InvariantViolation during
// generation. Adapted from the teacher's writeFailureDump (generator/legacy_
// helpers.go): same JSON-plus-ASCII-render pair, retargeted from vine
// coverage/occupied-cell state to a maze grid's wall/flag bytes.
func WriteFailureDump(dumpDir string, g *grid.Grid, seed int64, message string) error {
	if dumpDir == "" {
		dumpDir = filepath.Join(os.TempDir(), "mazecore", "failure_dumps")
	}
	if err := os.MkdirAll(dumpDir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().UTC().Format("20060102_150405")
	w, h := g.Dimensions()
	base := fmt.Sprintf("failure_%dx%d_seed_%d_%s", w, h, seed, timestamp)
	jsonPath := filepath.Join(dumpDir, base+".json")
	txtPath := filepath.Join(dumpDir, base+".txt")

	dump := map[string]interface{}{
		"width":   w,
		"height":  h,
		"seed":    seed,
		"message": message,
		"cells":   g.Bytes(),
	}

	f, err := os.Create(jsonPath)
	if err == nil {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		_ = enc.Encode(dump)
		_ = f.Close()
		common.Info("Wrote failure dump: %s", jsonPath)
	} else {
		common.Verbose("Failed to write dump JSON: %v", err)
	}

	f2, err := os.Create(txtPath)
	if err == nil {
		_, _ = f2.WriteString(renderASCII(g))
		_ = f2.Close()
		common.Info("Wrote failure render: %s", txtPath)
	} else {
		common.Verbose("Failed to write dump render: %v", err)
	}

	return nil
}

// renderASCII draws g as a double-resolution ASCII grid: two character rows
// and columns per cell, '+' at every corner, '-' for a north/south wall, '|'
// for a west/east wall, ' ' for an open passage, 'S'/'E' at start/exit.
func renderASCII(g *grid.Grid) string {
	w, h := g.Dimensions()
	start, exit := g.Start(), g.Exit()

	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.WriteByte('+')
			if g.HasWall(x, y, grid.N) {
				b.WriteByte('-')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("+\n")

		for x := 0; x < w; x++ {
			if g.HasWall(x, y, grid.W) {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			switch (grid.Point{X: x, Y: y}) {
			case start:
				b.WriteByte('S')
			case exit:
				b.WriteByte('E')
			default:
				b.WriteByte(' ')
			}
		}
		if g.HasWall(w-1, y, grid.E) {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	for x := 0; x < w; x++ {
		b.WriteByte('+')
		if g.HasWall(x, h-1, grid.S) {
			b.WriteByte('-')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("+\n")

	return b.String()
}
