package srcfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	dir := t.TempDir()

	t.Run("utf-8 passes through", func(t *testing.T) {
		path := filepath.Join(dir, "utf8.java")
		require.NoError(t, os.WriteFile(path, []byte("// café\n"), 0o644))

		content, err := ReadText(path)
		require.NoError(t, err)
		assert.Equal(t, "// café\n", content)
	})

	t.Run("latin-1 fallback", func(t *testing.T) {
		path := filepath.Join(dir, "latin1.java")
		// "café" in ISO-8859-1: é is the single byte 0xE9
		require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0o644))

		content, err := ReadText(path)
		require.NoError(t, err)
		assert.Equal(t, "café", content)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadText(filepath.Join(dir, "nope.java"))
		assert.Error(t, err)
	})
}

func TestReadTextStrict(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "latin1.java")
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0o644))

	_, err := ReadTextStrict(path)
	assert.ErrorContains(t, err, "not valid UTF-8")
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mode.java")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, WriteText(path, "new"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
