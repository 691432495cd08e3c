package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Project.Root)
	assert.Contains(t, cfg.Project.Dirs, "cage-features")
	assert.Contains(t, cfg.Scan.Dirs, "login-feature/src/main/java")
	assert.Equal(t, "import com.alliance.casino.common.exception.BizException;", cfg.Rewrite.ImportLine)
}

func TestLoadConfig_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
project:
  root: /srv/casino
  dirs: [payments]
rewrite:
  import_line: "import com.example.BizException;"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/casino", cfg.Project.Root)
	assert.Equal(t, []string{"payments"}, cfg.Project.Dirs)
	assert.Equal(t, "import com.example.BizException;", cfg.Rewrite.ImportLine)
	assert.NotEmpty(t, cfg.Scan.Dirs, "unset sections keep their defaults")
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("BIZCODES_ROOT", "/elsewhere")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", cfg.Project.Root)
}
