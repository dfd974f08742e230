package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GJFR71/cinebusca/internal/storage"
)

type payload struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func stores(t *testing.T) map[string]storage.Store {
	t.Helper()
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return map[string]storage.Store{
		"file": fs,
		"mem":  storage.NewMemStore(),
	}
}

func TestGetMissingKeyKeepsDefault(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			v := payload{Name: "default", Count: 7}
			assert.False(t, st.Get("never-written", &v))
			assert.Equal(t, payload{Name: "default", Count: 7}, v)
		})
	}
}

func TestSetThenGetRoundTrips(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			in := payload{Name: "matrix", Count: 3, Tags: []string{"sci-fi", "action"}}
			st.Set("movies", in)

			var out payload
			assert.True(t, st.Get("movies", &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestFileStoreMalformedDataKeepsDefault(t *testing.T) {
	dir := t.TempDir()
	fs, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	v := payload{Name: "default"}
	assert.False(t, fs.Get("bad", &v))
	assert.Equal(t, "default", v.Name)
}

func TestFileStoreWriteFailureIsAbsorbed(t *testing.T) {
	dir := t.TempDir()
	fs, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	// Removing the directory makes every write fail; Set must not panic
	// and a subsequent Get reports nothing stored.
	require.NoError(t, os.RemoveAll(dir))

	fs.Set("k", payload{Name: "lost"})

	var v payload
	assert.False(t, fs.Get("k", &v))
}

func TestNewFileStoreCreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	_, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
