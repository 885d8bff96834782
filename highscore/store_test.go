package highscore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFileStore_MissingFile tests that a missing file reads as zero.
func TestFileStore_MissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "none.toml"))
	assert.Equal(t, 0, s.Load())
}

// TestFileStore_Malformed tests that garbage reads as zero instead of failing.
func TestFileStore_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.toml")
	require.NoError(t, os.WriteFile(path, []byte("score = \"lots\""), 0o644))

	assert.Equal(t, 0, NewFileStore(path).Load())
}

// TestFileStore_Negative tests that a negative stored score reads as zero.
func TestFileStore_Negative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.toml")
	require.NoError(t, os.WriteFile(path, []byte("score = -40\n"), 0o644))

	assert.Equal(t, 0, NewFileStore(path).Load())
}

// TestFileStore_SaveLoad tests persistence through a nested directory.
func TestFileStore_SaveLoad(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nested", "score.toml"))
	require.NoError(t, s.Save(1230))
	assert.Equal(t, 1230, s.Load())

	require.NoError(t, s.Save(40))
	assert.Equal(t, 40, s.Load())
}

// TestSubmit_KeepsBest tests that only better scores replace the stored one.
func TestSubmit_KeepsBest(t *testing.T) {
	s := &MemoryStore{}

	best, err := Submit(s, 500)
	require.NoError(t, err)
	assert.Equal(t, 500, best)

	best, err = Submit(s, 200)
	require.NoError(t, err)
	assert.Equal(t, 500, best)
	assert.Equal(t, 500, s.Load())
}

// TestMemoryStore_NegativeFloored tests the zero floor on save.
func TestMemoryStore_NegativeFloored(t *testing.T) {
	s := &MemoryStore{}
	require.NoError(t, s.Save(-3))
	assert.Equal(t, 0, s.Load())
}
