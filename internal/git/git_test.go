package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNameOnly(t *testing.T) {
	output := []byte("user-features/src/Login.java\n\ncage-features/src/Cage.java\n")

	paths, err := parseNameOnly(output)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"user-features/src/Login.java",
		"cage-features/src/Cage.java",
	}, paths)
}

func TestFilterChanged(t *testing.T) {
	files := []string{
		"/repo/user-features/src/Login.java",
		"/repo/cage-features/src/Cage.java",
		"/repo/common-shared/src/Util.java",
	}
	changed := []string{"user-features/src/Login.java", "common-shared/src/Util.java"}

	kept := FilterChanged(files, changed)
	assert.Equal(t, []string{
		"/repo/user-features/src/Login.java",
		"/repo/common-shared/src/Util.java",
	}, kept)
}

func TestFilterChanged_NoPartialNameMatch(t *testing.T) {
	files := []string{"/repo/src/NotLogin.java"}
	kept := FilterChanged(files, []string{"Login.java"})
	assert.Empty(t, kept)
}
