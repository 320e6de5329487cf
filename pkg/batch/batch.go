// Package batch runs every generator against every solver at a fixed grid
// size and reports per-pair timings, bounded by a worker pool. Grounded on
// the teacher's pkg/batch/batch.go ModuleBatch/Result aggregate-and-report
// shape, retargeted from level batches to generator/solver timing batches.
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gridforge/mazecore/pkg/mazegen"
	"github.com/gridforge/mazecore/pkg/mazesolve"
)

// Result holds the outcome of one generator/solver pairing.
type Result struct {
	Generator    mazegen.Algo
	Solver       mazesolve.Algo
	Success      bool
	Error        string
	GenerationMS int64
	SolveMS      int64
	PathLength   int
}

// Report aggregates every pairing run in one benchmark pass.
type Report struct {
	Width, Height int
	Results       []Result
	TotalTime     time.Duration
	SuccessCount  int
	FailureCount  int
}

// RunBenchmark generates an N×N maze with every registered generator and
// solves each with every registered solver, bounded by workers concurrent
// pairings at a time (spec §6 benchmark).
func RunBenchmark(ctx context.Context, size, workers int) (*Report, error) {
	if size < 2 {
		return nil, fmt.Errorf("batch: size must be >= 2, got %d", size)
	}

	start := time.Now()
	report := &Report{Width: size, Height: size}

	gens := mazegen.List()
	solvers := mazesolve.List()

	type pairing struct {
		gen mazegen.Algo
		sol mazesolve.Algo
	}
	var pairings []pairing
	for _, g := range gens {
		for _, s := range solvers {
			pairings = append(pairings, pairing{gen: g, sol: s})
		}
	}

	results := make([]Result, len(pairings))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	var mu sync.Mutex
	for i, p := range pairings {
		i, p := i, p
		g.Go(func() error {
			results[i] = runPairing(gctx, p.gen, p.sol, size)
			mu.Lock()
			if results[i].Success {
				report.SuccessCount++
			} else {
				report.FailureCount++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Results = results
	report.TotalTime = time.Since(start)
	return report, nil
}

func runPairing(ctx context.Context, genAlgo mazegen.Algo, solAlgo mazesolve.Algo, size int) Result {
	res := Result{Generator: genAlgo, Solver: solAlgo}

	genStart := time.Now()
	grid, err := mazegen.Generate(mazegen.Config{Width: size, Height: size, Seed: defaultSeed(genAlgo, solAlgo), Algo: genAlgo, Ctx: ctx})
	res.GenerationMS = time.Since(genStart).Milliseconds()
	if err != nil {
		res.Error = err.Error()
		return res
	}

	solveStart := time.Now()
	solveResult, err := mazesolve.Solve(grid, solAlgo, grid.Start(), grid.Exit(), mazesolve.Config{Ctx: ctx})
	res.SolveMS = time.Since(solveStart).Milliseconds()
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = solveResult.Found
	res.PathLength = len(solveResult.Path)
	if !solveResult.Found {
		res.Error = "solver returned no path"
	}
	return res
}

// defaultSeed derives a stable per-pairing seed so repeated benchmark runs
// are reproducible without requiring the caller to pass one in.
func defaultSeed(genAlgo mazegen.Algo, solAlgo mazesolve.Algo) int64 {
	var h int64 = 1469598103934665603
	for _, r := range string(genAlgo) + "|" + string(solAlgo) {
		h ^= int64(r)
		h *= 1099511628211
	}
	return h
}
