package firmware

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HENQ42/SimCpuCycle/internal/types"
)

func TestSaveThenLoadRoundTrips(t *testing.T) {
	words := []types.Word{0x00000000, 0xDEADBEEF, 1, 2, 3}
	path := filepath.Join(t.TempDir(), "image.bin")

	require.NoError(t, Save(path, words))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, words, loaded)
}

func TestLoadRejectsPartialWord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.bin"))
	assert.Error(t, err)
}
