// Package dedupe detects and resolves duplicated BizException error codes
// across a source tree.
package dedupe

import (
	"regexp"
	"strings"

	"bizcodes/internal/srcfile"
)

var (
	// private static final long ERROR_XXX = 202511250001L;
	constantPattern = regexp.MustCompile(`private\s+static\s+final\s+long\s+(ERROR_\w+)\s*=\s*(\d+)L?\s*;`)

	// BizException.failed(202511250001L, ...)
	inlinePattern = regexp.MustCompile(`BizException\.failed\s*\(\s*(\d+)L?\s*,`)

	// calls whose first argument is a named constant carry no literal code
	constantRefPattern = regexp.MustCompile(`BizException\.failed\s*\(\s*ERROR_`)
)

// Occurrence is one usage site of an error code.
type Occurrence struct {
	File         string
	Line         int // 1-based
	LineText     string
	ConstantName string
	IsConstant   bool
}

// Index maps an error code, as written without the L suffix, to every place
// it appears. Occurrence order follows sorted file paths and line order
// within a file.
type Index map[string][]Occurrence

// Scanner builds the code index from a file list.
type Scanner struct {
	// Warnf receives skip diagnostics for unreadable files; nil silences them.
	Warnf func(format string, args ...any)
}

// Scan reads every file line by line and records constant definitions and
// inline failed() literals. Files that cannot be read or decoded are skipped
// with a warning; the scan continues.
func (s *Scanner) Scan(files []string) Index {
	idx := make(Index)
	for _, path := range files {
		content, err := srcfile.ReadTextStrict(path)
		if err != nil {
			s.warnf("cannot read %s: %v", path, err)
			continue
		}

		for i, line := range strings.Split(content, "\n") {
			lineNum := i + 1

			for _, m := range constantPattern.FindAllStringSubmatch(line, -1) {
				idx[m[2]] = append(idx[m[2]], Occurrence{
					File:         path,
					Line:         lineNum,
					LineText:     strings.TrimSpace(line),
					ConstantName: m[1],
					IsConstant:   true,
				})
			}

			if strings.Contains(line, "BizException.failed(") && !constantRefPattern.MatchString(line) {
				for _, m := range inlinePattern.FindAllStringSubmatch(line, -1) {
					idx[m[1]] = append(idx[m[1]], Occurrence{
						File:     path,
						Line:     lineNum,
						LineText: strings.TrimSpace(line),
					})
				}
			}
		}
	}
	return idx
}

func (s *Scanner) warnf(format string, args ...any) {
	if s.Warnf != nil {
		s.Warnf(format, args...)
	}
}

// Duplicates filters the index down to codes that appear more than once.
// Pure function of the index.
func Duplicates(idx Index) Index {
	dups := make(Index)
	for code, occs := range idx {
		if len(occs) > 1 {
			dups[code] = occs
		}
	}
	return dups
}

// Codes returns the set of every code present in the index.
func Codes(idx Index) map[string]struct{} {
	taken := make(map[string]struct{}, len(idx))
	for code := range idx {
		taken[code] = struct{}{}
	}
	return taken
}
