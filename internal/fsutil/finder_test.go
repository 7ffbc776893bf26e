package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesBySuffix(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	for _, name := range []string{"b.tests.json", "a.tests.json", "skip.txt", "nested/c.tests.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o600))
	}

	files, err := FindFilesBySuffix(dir, ".tests.json")
	require.NoError(t, err)
	require.Len(t, files, 3)
	// Lexical walk order makes discovery deterministic.
	assert.Equal(t, filepath.Join(dir, "a.tests.json"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.tests.json"), files[1])
	assert.Equal(t, filepath.Join(dir, "nested", "c.tests.json"), files[2])
}

func TestFindFilesBySuffixMissingRoot(t *testing.T) {
	_, err := FindFilesBySuffix(filepath.Join(t.TempDir(), "absent"), ".json")
	require.Error(t, err)
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.json")
	require.NoError(t, WriteFile(path, []byte("{}")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
