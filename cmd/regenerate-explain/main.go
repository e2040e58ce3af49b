package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sqlc-dev/oraexpr/parser"
)

func main() {
	testName := flag.String("test", "", "Single test directory name to process (if empty, process all)")
	dryRun := flag.Bool("dry-run", false, "Print the trees without writing explain.txt")
	flag.Parse()

	testdataDir := "parser/testdata"

	if *testName != "" {
		if _, err := regenerate(filepath.Join(testdataDir, *testName), *dryRun); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", *testName, err)
			os.Exit(1)
		}
		return
	}

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading testdata: %v\n", err)
		os.Exit(1)
	}

	var errors []string
	var processed, unchanged int
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		changed, err := regenerate(filepath.Join(testdataDir, entry.Name()), *dryRun)
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}
		if changed {
			processed++
		} else {
			unchanged++
		}
	}

	fmt.Printf("\nUpdated: %d, Unchanged: %d, Errors: %d\n", processed, unchanged, len(errors))
	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "\nErrors:\n")
		for _, e := range errors {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		os.Exit(1)
	}
}

// regenerate parses query.sql and rewrites explain.txt when the tree differs.
func regenerate(testDir string, dryRun bool) (bool, error) {
	queryBytes, err := os.ReadFile(filepath.Join(testDir, "query.sql"))
	if err != nil {
		return false, fmt.Errorf("reading query.sql: %w", err)
	}
	query := strings.TrimSpace(string(queryBytes))

	expr, err := parser.ParseString(context.Background(), query)
	if err != nil {
		return false, fmt.Errorf("parsing %q: %w", truncate(query, 60), err)
	}
	explain := parser.Explain(expr)

	if dryRun {
		fmt.Printf("%s:\n%s\n", filepath.Base(testDir), explain)
		return false, nil
	}

	outputPath := filepath.Join(testDir, "explain.txt")
	if old, err := os.ReadFile(outputPath); err == nil && string(old) == explain {
		return false, nil
	}
	if err := os.WriteFile(outputPath, []byte(explain), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", outputPath, err)
	}
	fmt.Printf("%s -> %s\n", filepath.Base(testDir), filepath.Base(outputPath))
	return true, nil
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
