package crawler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTree(t *testing.T) string {
	t.Helper()
	base := t.TempDir()

	files := []string{
		"user-features/src/Login.java",
		"user-features/target/Generated.java",
		"cage-features/src/Cage.java",
		"cage-features/notes.txt",
		"misc/Stray.java",
	}
	for _, f := range files {
		path := filepath.Join(base, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("class X {}\n"), 0o644))
	}
	return base
}

func TestCrawler_FindSourceFiles(t *testing.T) {
	base := seedTree(t)
	c := NewCrawler()

	files, err := c.FindSourceFiles(base, []string{"user-features", "cage-features", "does-not-exist"})
	require.NoError(t, err)

	want := []string{
		filepath.Join(base, "cage-features/src/Cage.java"),
		filepath.Join(base, "user-features/src/Login.java"),
	}
	assert.Equal(t, want, files, "sorted, target/ skipped, non-java skipped, missing dir ignored")
}

func TestCrawler_FindAll(t *testing.T) {
	base := seedTree(t)
	c := NewCrawler()

	files, err := c.FindAll(base)
	require.NoError(t, err)

	assert.Len(t, files, 3)
	assert.Contains(t, files, filepath.Join(base, "misc/Stray.java"))
}
