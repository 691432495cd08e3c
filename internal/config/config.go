package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Project struct {
		Root string   `yaml:"root"`
		Dirs []string `yaml:"dirs"` // module roots targeted by convert
	} `yaml:"project"`
	Scan struct {
		Dirs []string `yaml:"dirs"` // source roots targeted by dedupe
	} `yaml:"scan"`
	Rewrite struct {
		ImportLine string `yaml:"import_line"`
	} `yaml:"rewrite"`
}

const defaultImportLine = "import com.alliance.casino.common.exception.BizException;"

var defaultDirs = []string{
	"cage-features",
	"user-features",
	"gaming-table-feature",
	"common-shared",
	"shared-infrastructure",
}

var defaultScanDirs = []string{
	"cage-features/src/main/java",
	"gaming-table-feature/src/main/java",
	"user-features/src/main/java",
	"common-shared/src/main/java",
	"login-feature/src/main/java",
	"image-feature/src/main/java",
	"shared-infrastructure/src/main/java",
}

// LoadConfig reads path as YAML over built-in defaults. A missing config
// file is not an error; the defaults are returned as-is.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Built-in defaults
	cfg := &Config{}
	cfg.Project.Root = "."
	cfg.Project.Dirs = append([]string(nil), defaultDirs...)
	cfg.Scan.Dirs = append([]string(nil), defaultScanDirs...)
	cfg.Rewrite.ImportLine = defaultImportLine

	// 3. Overlay YAML config when present
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, err
	}

	// 4. Override with Environment Variables if present
	if root := os.Getenv("BIZCODES_ROOT"); root != "" {
		cfg.Project.Root = root
	}

	return cfg, nil
}
