package dict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	data := "CAT\ncar\n\n  cot  \ncat\nc4t\ncar-t\nzzz\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	m := NewDictManager(zerolog.Nop())
	words, err := m.LoadWordFile(path)
	require.NoError(t, err)

	// lowercased, blanks and non-alpha dropped, duplicates removed in order
	assert.Equal(t, []string{"cat", "car", "cot", "zzz"}, words)
}

func TestLoadWordFileMissing(t *testing.T) {
	m := NewDictManager(zerolog.Nop())
	_, err := m.LoadWordFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store", "dict.json")
	store := NewDictStore(path)

	require.NoError(t, store.SetSnapshot("words.txt", []string{"cat", "car"}))

	snap, err := store.GetSnapshot()
	require.NoError(t, err)
	assert.Equal(t, "words.txt", snap.Source)
	assert.Equal(t, []string{"cat", "car"}, snap.Words)
	assert.False(t, snap.UpdatedAt.IsZero())
}

func TestSnapshotInitWhenMissing(t *testing.T) {
	store := NewDictStore(filepath.Join(t.TempDir(), "dict.json"))

	snap, err := store.GetSnapshot()
	require.NoError(t, err)
	assert.Empty(t, snap.Words)
	assert.Equal(t, "0.1.0", snap.Version)
}

func TestSnapshotRejectsBrokenJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := NewDictStore(path).GetSnapshot()
	assert.Error(t, err)
}
