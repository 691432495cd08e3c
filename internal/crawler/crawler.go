package crawler

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Crawler enumerates Java source files under a set of target directories.
type Crawler struct {
	ext     string
	ignored []string
}

// NewCrawler creates a new crawler instance.
func NewCrawler() *Crawler {
	return &Crawler{
		ext:     ".java",
		ignored: []string{".git", "target", "build", "node_modules"},
	}
}

// FindSourceFiles walks each target directory under base and returns every
// matching file in sorted path order. Target directories that do not exist
// are silently skipped.
func (c *Crawler) FindSourceFiles(base string, dirs []string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		root := filepath.Join(base, dir)
		if _, err := os.Stat(root); err != nil {
			continue
		}
		found, err := c.walk(root)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	sort.Strings(files)
	return files, nil
}

// FindAll scans the whole base tree, used as the fallback when none of the
// configured target directories yields a file.
func (c *Crawler) FindAll(base string) ([]string, error) {
	files, err := c.walk(base)
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func (c *Crawler) walk(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip ignored directories
		if d.IsDir() {
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if strings.HasSuffix(d.Name(), c.ext) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
