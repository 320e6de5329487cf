package randsrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedReproducesSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.Intn(1_000_000) != b.Intn(1_000_000) {
			same = false
			break
		}
	}
	assert.False(t, same)
}

func TestSubDeterministicGivenParentSeed(t *testing.T) {
	p1 := New(7)
	c1 := p1.Sub()

	p2 := New(7)
	c2 := p2.Sub()

	assert.Equal(t, c1.Intn(1<<20), c2.Intn(1<<20))
}
