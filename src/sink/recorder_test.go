package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automata/src/automaton"
)

func TestRecorderAppendsSnapshots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.out")
	r, err := NewRecorder(path)
	require.NoError(t, err)

	first, err := automaton.NewGrid([][]bool{
		{true, false},
		{false, true},
	})
	require.NoError(t, err)
	second, err := automaton.NewGrid([][]bool{
		{false, true},
		{true, false},
	})
	require.NoError(t, err)

	require.NoError(t, r.Receive(1, first))
	require.NoError(t, r.Receive(2, second))
	require.NoError(t, r.Finish())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 0\n0 1\n\n0 1\n1 0\n\n", string(data))
}

func TestRecorderUnwritablePath(t *testing.T) {
	_, err := NewRecorder(filepath.Join(t.TempDir(), "missing", "steps.out"))
	require.Error(t, err)
}

func TestRecorderWriteAfterCloseIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.out")
	r, err := NewRecorder(path)
	require.NoError(t, err)
	require.NoError(t, r.Finish())

	g, err := automaton.NewGrid([][]bool{{true}})
	require.NoError(t, err)
	assert.Error(t, r.Receive(1, g))
}

func TestRecorderName(t *testing.T) {
	r, err := NewRecorder(filepath.Join(t.TempDir(), "steps.out"))
	require.NoError(t, err)
	assert.Equal(t, "recorder", r.Name())
}
