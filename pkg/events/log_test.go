package events

import (
	"bytes"
	"testing"

	"github.com/gridforge/mazecore/pkg/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []Event {
	return []Event{
		{Kind: CarveCell, X: 0, Y: 0, Aux: uint32(grid.E)},
		{Kind: CarveCell, X: 1, Y: 0, Aux: uint32(grid.S)},
		{Kind: Visit, X: 0, Y: 0},
		{Kind: Path, X: 0, Y: 0},
	}
}

func TestWriteReadRoundTripUncompressed(t *testing.T) {
	var buf bytes.Buffer
	orig := sampleEvents()
	require.NoError(t, WriteLog(&buf, orig, false))

	got, err := ReadLog(&buf)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestWriteReadRoundTripCompressed(t *testing.T) {
	var buf bytes.Buffer
	orig := sampleEvents()
	require.NoError(t, WriteLog(&buf, orig, true))

	got, err := ReadLog(&buf)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestReadLogRejectsBadMagic(t *testing.T) {
	_, err := ReadLog(bytes.NewReader([]byte("NOPE1234567890")))
	assert.Error(t, err)
}

func TestReplayReproducesFinalState(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	g.FillWalls()

	rec := NewRecorder()
	rec.OnEvent(Event{Kind: CarveCell, X: 0, Y: 0, Aux: uint32(grid.E)})
	rec.OnEvent(Event{Kind: CarveCell, X: 1, Y: 0, Aux: uint32(grid.S)})
	rec.OnEvent(Event{Kind: Visit, X: 0, Y: 0})
	rec.OnEvent(Event{Kind: Path, X: 0, Y: 0})

	fresh, err := grid.New(3, 3)
	require.NoError(t, err)
	fresh.FillWalls()
	require.NoError(t, Replay(rec.Events, fresh))

	assert.False(t, fresh.HasWall(0, 0, grid.E))
	assert.False(t, fresh.HasWall(1, 0, grid.S))
	assert.True(t, fresh.GetFlag(0, 0, grid.VisitedSolve))
	assert.True(t, fresh.GetFlag(0, 0, grid.OnPath))
}
