// Package report renders the human-readable console output of both tools.
// The format is informational only, not a machine contract.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bizcodes/internal/dedupe"
	"bizcodes/internal/rewrite"
)

var (
	codeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	lineNumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("221"))
	keepStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	changeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	summaryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

const rule = "------------------------------------------------------------"

// ConvertTotals aggregates per-file rewrite stats across a run.
type ConvertTotals struct {
	FilesModified int
	IllegalArg    int
	BadRequest    int
	Javadoc       int
	ImportsAdded  int
}

// Add folds one file's stats into the totals.
func (t *ConvertTotals) Add(s rewrite.Stats) {
	if !s.Modified {
		return
	}
	t.FilesModified++
	t.IllegalArg += s.IllegalArg
	t.BadRequest += s.BadRequest
	t.Javadoc += s.Javadoc
	if s.ImportAdded {
		t.ImportsAdded++
	}
}

// FileConverted prints the per-file line for a modified file.
func FileConverted(path string, s rewrite.Stats, dryRun bool) {
	var changes []string
	if s.IllegalArg > 0 {
		changes = append(changes, fmt.Sprintf("IllegalArg:%d", s.IllegalArg))
	}
	if s.BadRequest > 0 {
		changes = append(changes, fmt.Sprintf("badRequest:%d", s.BadRequest))
	}
	if s.Javadoc > 0 {
		changes = append(changes, fmt.Sprintf("@throws:%d", s.Javadoc))
	}
	if s.ImportAdded {
		changes = append(changes, "import:+1")
	}

	prefix := ""
	if dryRun {
		prefix = dimStyle.Render("[DRY] ")
	}
	fmt.Printf("%sModified: %s (%s)\n", prefix, pathStyle.Render(path), strings.Join(changes, ", "))
}

// ConvertSummary prints the closing totals, including the last code consumed.
func ConvertSummary(t ConvertTotals, lastCode string, dryRun bool) {
	fmt.Println(rule)
	fmt.Println(summaryStyle.Render("Summary:"))
	fmt.Printf("  Files modified: %d\n", t.FilesModified)
	fmt.Printf("  IllegalArgumentException converted: %d\n", t.IllegalArg)
	fmt.Printf("  BizException.badRequest converted: %d\n", t.BadRequest)
	fmt.Printf("  @throws Javadoc updated: %d\n", t.Javadoc)
	fmt.Printf("  Imports added: %d\n", t.ImportsAdded)
	fmt.Printf("  Last error code used: %s\n", codeStyle.Render(lastCode))
	if dryRun {
		fmt.Println(dimStyle.Render("\n[DRY RUN] No files were actually modified."))
	}
}

// ScanStats prints the index-wide counts before any duplicate listing.
func ScanStats(idx dedupe.Index) {
	total := 0
	constants := 0
	for _, occs := range idx {
		total += len(occs)
		for _, occ := range occs {
			if occ.IsConstant {
				constants++
			}
		}
	}

	fmt.Println(summaryStyle.Render("Scan results:"))
	fmt.Printf("  - Distinct error codes: %d\n", len(idx))
	fmt.Printf("  - Total occurrences: %d\n", total)
	fmt.Printf("  - Constant definitions (ERROR_*): %d\n", constants)
	fmt.Printf("  - Inline calls: %d\n", total-constants)
}

// Duplicates prints every duplicate group, marking the kept occurrence.
// Occurrences are shown in index order; the first one is the keeper.
func Duplicates(root string, dups dedupe.Index) {
	codes := make([]string, 0, len(dups))
	for code := range dups {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	fmt.Printf("⚠️  Found %s duplicated error codes:\n\n", changeStyle.Render(fmt.Sprintf("%d", len(codes))))

	for _, code := range codes {
		occs := dups[code]
		fmt.Println(rule)
		fmt.Printf("Error code: %s (%d occurrences)\n\n", codeStyle.Render(code+"L"), len(occs))

		for i, occ := range occs {
			marker := changeStyle.Render("🔄 reassign")
			if i == 0 {
				marker = keepStyle.Render("🔒 keep")
			}
			fmt.Printf("  %s %s:%s\n", marker, pathStyle.Render(relPath(root, occ.File)), lineNumStyle.Render(fmt.Sprintf("%d", occ.Line)))
			if occ.ConstantName != "" {
				fmt.Printf("         constant: %s\n", occ.ConstantName)
			} else {
				fmt.Println("         (inline call)")
			}
			fmt.Printf("         code: %s\n\n", dimStyle.Render(preview(occ.LineText)))
		}
	}
	fmt.Println(rule)
}

// Changes prints the applied (or planned) fixes, grouped per file.
func Changes(root string, changes []dedupe.Change) {
	byFile, files := dedupe.GroupByFile(changes)
	for _, file := range files {
		fmt.Printf("Updated: %s\n", pathStyle.Render(relPath(root, file)))
		for _, ch := range byFile[file] {
			if ch.ConstantName != "" {
				fmt.Printf("  line %s: %s = %s -> %s\n",
					lineNumStyle.Render(fmt.Sprintf("%d", ch.Line)),
					ch.ConstantName,
					ch.OldCode+"L",
					codeStyle.Render(ch.NewCode+"L"))
			} else {
				fmt.Printf("  line %s: %s -> %s\n",
					lineNumStyle.Render(fmt.Sprintf("%d", ch.Line)),
					ch.OldCode+"L",
					codeStyle.Render(ch.NewCode+"L"))
			}
		}
	}
}

func relPath(root, path string) string {
	if root == "" {
		return path
	}
	if rel := strings.TrimPrefix(path, strings.TrimSuffix(root, "/")+"/"); rel != path {
		return rel
	}
	return path
}

func preview(line string) string {
	if len(line) > 80 {
		return line[:80] + "..."
	}
	return line
}
