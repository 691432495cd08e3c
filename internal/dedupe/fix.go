package dedupe

import (
	"sort"
	"strings"

	"bizcodes/internal/srcfile"
)

// Change records one reassigned occurrence of a duplicated code.
type Change struct {
	File         string
	Line         int
	OldCode      string
	NewCode      string
	ConstantName string
	IsConstant   bool
	LineText     string
}

// PlanFixes decides the replacement for every duplicated occurrence. Within
// each duplicate group the occurrence with the smallest (file, line) is kept;
// the rest receive fresh codes, each added to taken immediately so a later
// assignment cannot repeat it. Codes are visited in sorted order so the plan
// is deterministic.
func PlanFixes(dups Index, taken map[string]struct{}, datePrefix string) []Change {
	codes := make([]string, 0, len(dups))
	for code := range dups {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var changes []Change
	for _, code := range codes {
		occs := append([]Occurrence(nil), dups[code]...)
		sort.Slice(occs, func(i, j int) bool {
			if occs[i].File != occs[j].File {
				return occs[i].File < occs[j].File
			}
			return occs[i].Line < occs[j].Line
		})

		for _, occ := range occs[1:] {
			newCode := NewCode(datePrefix, taken)
			taken[newCode] = struct{}{}
			changes = append(changes, Change{
				File:         occ.File,
				Line:         occ.Line,
				OldCode:      code,
				NewCode:      newCode,
				ConstantName: occ.ConstantName,
				IsConstant:   occ.IsConstant,
				LineText:     occ.LineText,
			})
		}
	}
	return changes
}

// GroupByFile buckets changes per file, preserving plan order within each
// file, and returns the sorted file list alongside.
func GroupByFile(changes []Change) (map[string][]Change, []string) {
	byFile := make(map[string][]Change)
	for _, ch := range changes {
		byFile[ch.File] = append(byFile[ch.File], ch)
	}
	files := make([]string, 0, len(byFile))
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)
	return byFile, files
}

// ApplyFixes patches every planned change in place, rewriting each affected
// file from its patched line list. A constant definition swaps the suffixed
// literal; an inline call swaps the failed() argument, normalizing a missing
// L suffix on write.
func ApplyFixes(changes []Change) error {
	byFile, files := GroupByFile(changes)

	for _, file := range files {
		content, err := srcfile.ReadTextStrict(file)
		if err != nil {
			return err
		}
		lines := strings.Split(content, "\n")

		for _, ch := range byFile[file] {
			i := ch.Line - 1
			if i < 0 || i >= len(lines) {
				continue
			}
			lines[i] = patchLine(lines[i], ch)
		}

		if err := srcfile.WriteText(file, strings.Join(lines, "\n")); err != nil {
			return err
		}
	}
	return nil
}

func patchLine(line string, ch Change) string {
	if ch.IsConstant && ch.ConstantName != "" {
		return strings.Replace(line, ch.OldCode+"L", ch.NewCode+"L", 1)
	}

	oldCall := "BizException.failed(" + ch.OldCode + "L,"
	newCall := "BizException.failed(" + ch.NewCode + "L,"
	if strings.Contains(line, oldCall) {
		return strings.Replace(line, oldCall, newCall, 1)
	}
	// literal without the L suffix in source
	return strings.Replace(line, "BizException.failed("+ch.OldCode+",", newCall, 1)
}
