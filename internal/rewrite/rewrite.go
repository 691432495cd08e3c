// Package rewrite converts legacy exception idioms to BizException.failed()
// calls carrying generated numeric error codes.
package rewrite

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"bizcodes/internal/srcfile"
)

var (
	illegalArgPattern = regexp.MustCompile(`throw new IllegalArgumentException\(`)
	badRequestPattern = regexp.MustCompile(`BizException\.badRequest\(`)
	throwsTagPattern  = regexp.MustCompile(`@throws\s+IllegalArgumentException`)
)

// Stats counts the substitutions made in a single file.
type Stats struct {
	IllegalArg  int
	BadRequest  int
	Javadoc     int
	ImportAdded bool
	Modified    bool
}

// Converter rewrites exception idioms, minting a fresh error code for each
// conversion. The counter is strictly increasing within a run and is never
// checked against codes already present in the tree; collisions are left for
// the dedupe pass to clean up.
type Converter struct {
	DatePrefix string
	Counter    int
	ImportLine string
}

// NextCode returns the next error code literal and advances the counter.
func (c *Converter) NextCode() string {
	code := fmt.Sprintf("%s%05dL", c.DatePrefix, c.Counter)
	c.Counter++
	return code
}

// ConvertText applies the throw conversion, the badRequest conversion, and
// the @throws Javadoc update to content. Each of the first two rules consumes
// one code per match, top to bottom; all throw matches are numbered before
// the badRequest matches.
func (c *Converter) ConvertText(content string) (string, Stats) {
	var stats Stats

	content = illegalArgPattern.ReplaceAllStringFunc(content, func(string) string {
		stats.IllegalArg++
		return "throw BizException.failed(" + c.NextCode() + ","
	})

	content = badRequestPattern.ReplaceAllStringFunc(content, func(string) string {
		stats.BadRequest++
		return "BizException.failed(" + c.NextCode() + ", "
	})

	content = throwsTagPattern.ReplaceAllStringFunc(content, func(string) string {
		stats.Javadoc++
		return "@throws BizException"
	})

	return content, stats
}

// AddImport ensures the BizException import is present. The line is inserted
// after the last existing import, or after the package declaration (skipping
// the blank lines that follow it) when the file has no imports. When neither
// an import nor a package line exists the content is returned unchanged.
func (c *Converter) AddImport(content string) (string, bool) {
	if strings.Contains(content, c.ImportLine) {
		return content, false
	}

	lines := strings.Split(content, "\n")
	insert := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "import ") {
			insert = i + 1
		}
	}

	if insert == -1 {
		for i, line := range lines {
			if strings.HasPrefix(line, "package ") {
				insert = i + 1
				for insert < len(lines) && strings.TrimSpace(lines[insert]) == "" {
					insert++
				}
				break
			}
		}
	}

	if insert == -1 {
		return content, false
	}

	lines = slices.Insert(lines, insert, c.ImportLine)
	return strings.Join(lines, "\n"), true
}

// ConvertFile processes a single Java file. The file is rewritten only when
// the converted text differs and dryRun is off; the import is added only when
// at least one throw or badRequest conversion fired.
func (c *Converter) ConvertFile(path string, dryRun bool) (Stats, error) {
	content, err := srcfile.ReadText(path)
	if err != nil {
		return Stats{}, err
	}
	original := content

	content, stats := c.ConvertText(content)

	if stats.IllegalArg > 0 || stats.BadRequest > 0 {
		content, stats.ImportAdded = c.AddImport(content)
	}

	stats.Modified = content != original
	if stats.Modified && !dryRun {
		if err := srcfile.WriteText(path, content); err != nil {
			return stats, err
		}
	}
	return stats, nil
}
