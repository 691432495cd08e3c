package git

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ChangedFiles runs git diff and returns the repo-relative paths of files
// changed since baseRef.
func ChangedFiles(baseRef string) ([]string, error) {
	cmd := exec.Command("git", "diff", "--name-only", baseRef)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git diff failed: %w", err)
	}
	return parseNameOnly(output)
}

func parseNameOnly(output []byte) ([]string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	var paths []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, scanner.Err()
}

// FilterChanged keeps only the candidate files matching one of the changed
// paths. Candidates may carry a base-directory prefix, so a candidate matches
// when it equals a changed path or ends with it as a path suffix.
func FilterChanged(files, changed []string) []string {
	var kept []string
	for _, file := range files {
		norm := filepath.ToSlash(file)
		for _, c := range changed {
			c = filepath.ToSlash(c)
			if norm == c || strings.HasSuffix(norm, "/"+c) {
				kept = append(kept, file)
				break
			}
		}
	}
	return kept
}
