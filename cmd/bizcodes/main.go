package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"bizcodes/internal/config"
	"bizcodes/internal/crawler"
	"bizcodes/internal/dedupe"
	"bizcodes/internal/git"
	"bizcodes/internal/report"
	"bizcodes/internal/rewrite"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "bizcodes",
		Short: "Java exception-code migration toolkit",
	}
	cfgPath string
)

var datePattern = regexp.MustCompile(`^\d{8}$`)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var (
	convertDate    string
	convertDirs    []string
	convertStart   int
	convertDryRun  bool
	convertChanged string

	dedupeRoot    string
	dedupeDate    string
	dedupeFix     bool
	dedupeChanged string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "Path to the migration config file")

	convertCmd.Flags().StringVar(&convertDate, "date", time.Now().Format("20060102"), "Date prefix for generated error codes (YYYYMMDD)")
	convertCmd.Flags().StringSliceVar(&convertDirs, "dirs", nil, "Directories to scan (default: configured module roots)")
	convertCmd.Flags().IntVar(&convertStart, "start-counter", 1, "Starting counter for generated error codes")
	convertCmd.Flags().BoolVar(&convertDryRun, "dry-run", false, "Preview changes without writing to files")
	convertCmd.Flags().StringVar(&convertChanged, "changed-only", "", "Only process files changed since the given git ref")

	dedupeCmd.Flags().StringVar(&dedupeRoot, "root", "", "Project root to scan (default: configured root)")
	dedupeCmd.Flags().StringVar(&dedupeDate, "date", time.Now().Format("20060102"), "Date prefix for replacement codes (YYYYMMDD)")
	dedupeCmd.Flags().BoolVar(&dedupeFix, "fix", false, "Rewrite duplicated codes instead of only reporting them")
	dedupeCmd.Flags().StringVar(&dedupeChanged, "changed-only", "", "Only scan files changed since the given git ref")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(dedupeCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert IllegalArgumentException and badRequest() calls to BizException.failed()",
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Validate the date prefix before touching anything
		if !datePattern.MatchString(convertDate) {
			fmt.Printf("Error: Invalid date format '%s'. Expected YYYYMMDD.\n", convertDate)
			os.Exit(1)
		}

		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		dirs := cfg.Project.Dirs
		if len(convertDirs) > 0 {
			dirs = convertDirs
		}

		fmt.Printf("Date prefix: %s\n", convertDate)
		fmt.Printf("Starting counter: %d\n", convertStart)
		fmt.Printf("Directories: %s\n", strings.Join(dirs, ", "))
		mode := "WRITE"
		if convertDryRun {
			mode = "DRY RUN"
		}
		fmt.Printf("Mode: %s\n", mode)
		fmt.Println(strings.Repeat("-", 60))

		// 2. Enumerate target files
		cr := crawler.NewCrawler()
		files, err := cr.FindSourceFiles(cfg.Project.Root, dirs)
		if err != nil {
			log.Fatalf("Failed to enumerate source files: %v", err)
		}
		files, err = filterChanged(files, convertChanged)
		if err != nil {
			log.Fatalf("Failed to resolve changed files: %v", err)
		}
		fmt.Printf("Found %d Java files\n", len(files))
		fmt.Println(strings.Repeat("-", 60))

		// 3. Convert file by file, sorted path order
		conv := &rewrite.Converter{
			DatePrefix: convertDate,
			Counter:    convertStart,
			ImportLine: cfg.Rewrite.ImportLine,
		}

		var totals report.ConvertTotals
		for _, path := range files {
			stats, err := conv.ConvertFile(path, convertDryRun)
			if err != nil {
				log.Fatalf("Failed to process %s: %v", path, err)
			}
			if stats.Modified {
				report.FileConverted(relTo(cfg.Project.Root, path), stats, convertDryRun)
			}
			totals.Add(stats)
		}

		// 4. Summary, including the highest code consumed
		lastCode := fmt.Sprintf("%s%05dL", convertDate, conv.Counter-1)
		report.ConvertSummary(totals, lastCode, convertDryRun)
	},
}

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Detect and resolve duplicated BizException error codes",
	Run: func(cmd *cobra.Command, args []string) {
		if !datePattern.MatchString(dedupeDate) {
			fmt.Printf("Error: Invalid date format '%s'. Expected YYYYMMDD.\n", dedupeDate)
			os.Exit(1)
		}

		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		root := cfg.Project.Root
		if dedupeRoot != "" {
			root = dedupeRoot
		}
		absRoot, err := filepath.Abs(root)
		if err != nil {
			log.Fatalf("Failed to resolve root: %v", err)
		}
		fmt.Printf("Scanning project: %s\n\n", absRoot)

		// 1. Enumerate files, falling back to the whole tree when the
		// configured source roots are empty or missing
		cr := crawler.NewCrawler()
		files, err := cr.FindSourceFiles(absRoot, cfg.Scan.Dirs)
		if err != nil {
			log.Fatalf("Failed to enumerate source files: %v", err)
		}
		if len(files) == 0 {
			files, err = cr.FindAll(absRoot)
			if err != nil {
				log.Fatalf("Failed to scan project tree: %v", err)
			}
		}
		files, err = filterChanged(files, dedupeChanged)
		if err != nil {
			log.Fatalf("Failed to resolve changed files: %v", err)
		}

		// 2. Build the code index
		scanner := &dedupe.Scanner{Warnf: func(format string, args ...any) {
			fmt.Printf("⚠️  "+format+"\n", args...)
		}}
		idx := scanner.Scan(files)
		dups := dedupe.Duplicates(idx)

		// 3. Report
		report.ScanStats(idx)
		fmt.Println()
		if len(dups) == 0 {
			fmt.Println("✅ No duplicated error codes found")
			return
		}
		report.Duplicates(absRoot, dups)

		if !dedupeFix {
			fmt.Println("\n💡 Hint: re-run with --fix to rewrite the duplicated codes")
			os.Exit(1)
		}

		// 4. Fix: keep the first occurrence, reassign the rest
		taken := dedupe.Codes(idx)
		changes := dedupe.PlanFixes(dups, taken, dedupeDate)
		if err := dedupe.ApplyFixes(changes); err != nil {
			log.Fatalf("Failed to apply fixes: %v", err)
		}
		fmt.Println()
		report.Changes(absRoot, changes)
		fmt.Printf("\n✅ Done! Reassigned %d duplicated error codes\n", len(changes))
	},
}

func filterChanged(files []string, ref string) ([]string, error) {
	if ref == "" {
		return files, nil
	}
	changed, err := git.ChangedFiles(ref)
	if err != nil {
		return nil, err
	}
	return git.FilterChanged(files, changed), nil
}

func relTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
