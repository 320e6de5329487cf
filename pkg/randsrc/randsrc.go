// Package randsrc provides the single deterministic pseudo-random source
// every generator, braider, and organic agent borrows (spec §4.2). A fixed
// seed must reproduce a byte-identical serial generation run.
package randsrc

import "math/rand"

// Source wraps math/rand.Rand behind the narrow surface mazecore actually
// uses, so generators depend on an interface-shaped concept without paying
// for one (grounded in the teacher's direct *rand.Rand threading through
// backtracking.go's placement functions).
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded deterministically from seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a pseudo-random int in [0, n).
func (s *Source) Intn(n int) int { return s.r.Intn(n) }

// Float64 returns a pseudo-random float in [0, 1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// Shuffle randomizes the order of a swap function over n elements, same
// contract as rand.Rand.Shuffle.
func (s *Source) Shuffle(n int, swap func(i, j int)) { s.r.Shuffle(n, swap) }

// Int63 returns a non-negative pseudo-random 63-bit integer, used to derive
// child streams.
func (s *Source) Int63() int64 { return s.r.Int63() }

// Sub derives an independent child Source from the parent stream. It is
// equivalent to New(s.Int63()), which is how the fractal generator (one per
// block worker) and the organic generator (one per agent) derive their
// streams, so parallel phases don't need to serialize access to a
// single shared *rand.Rand, while still being fully determined by the
// parent seed (spec §5 "final grid state is byte-for-byte reproducible" for
// parallel generators — event *interleaving* is explicitly not guaranteed,
// only final state, so per-worker streams are sufficient).
func (s *Source) Sub() *Source {
	return New(s.r.Int63())
}
