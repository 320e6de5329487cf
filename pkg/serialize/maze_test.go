package serialize

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridforge/mazecore/pkg/grid"
	"github.com/gridforge/mazecore/pkg/mazegen"
)

func sampleGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := mazegen.Generate(mazegen.Config{Width: 10, Height: 10, Seed: 3, Algo: mazegen.DFS})
	require.NoError(t, err)
	return g
}

func TestWriteReadRoundTripUncompressed(t *testing.T) {
	g := sampleGrid(t)
	var buf bytes.Buffer
	meta := map[string]string{"algorithm": "dfs", "seed": "3"}

	require.NoError(t, WriteMaze(&buf, g, meta))

	got, gotMeta, err := ReadMaze(&buf)
	require.NoError(t, err)
	assert.True(t, got.Equal(g))
	assert.Equal(t, meta, gotMeta)
}

func TestWriteReadRoundTripCompressed(t *testing.T) {
	g, err := mazegen.Generate(mazegen.Config{Width: 1100, Height: 1000, Seed: 9, Algo: mazegen.DFS})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteMaze(&buf, g, nil))

	// Compression flag should be set since width*height exceeds 2^20. The
	// u32 flags field follows magic(4), version(2), width(4), height(4).
	assert.Greater(t, buf.Len(), 8)
	assert.Equal(t, byte(1), buf.Bytes()[14]&1)

	got, _, err := ReadMaze(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.True(t, got.Equal(g))
}

func TestReadMazeRejectsBadMagic(t *testing.T) {
	_, _, err := ReadMaze(bytes.NewReader([]byte("nope")))
	assert.Error(t, err)
}

func TestReadMazeRejectsUnsupportedVersion(t *testing.T) {
	g := sampleGrid(t)
	var buf bytes.Buffer
	require.NoError(t, WriteMaze(&buf, g, nil))

	raw := buf.Bytes()
	// version field sits right after the 4-byte magic, little-endian u16.
	raw[4] = 0xFF
	raw[5] = 0xFF

	_, _, err := ReadMaze(bytes.NewReader(raw))
	assert.Error(t, err)
}

func TestMetadataRoundTripEmpty(t *testing.T) {
	g := sampleGrid(t)
	var buf bytes.Buffer
	require.NoError(t, WriteMaze(&buf, g, nil))

	_, meta, err := ReadMaze(&buf)
	require.NoError(t, err)
	assert.Empty(t, meta)
}
