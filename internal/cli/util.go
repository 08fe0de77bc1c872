package cli

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jahtz/gopxml/codec"
	"github.com/jahtz/gopxml/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// collectFiles expands the positional arguments into a sorted list of XML
// file paths. Directory arguments are walked recursively for *.xml files.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".xml") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", arg, err)
		}
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("no PAGE-XML files found")
	}
	return files, nil
}

// forEachPage parses every file leniently and hands the page to fn. Parse
// failures are reported and skipped so one broken file never aborts a batch.
// It returns the number of files processed successfully.
func forEachPage(files []string, fn func(path string, page *model.Page) error) (int, error) {
	opts := codec.Options{Logger: newLogger()}
	processed := 0
	for _, path := range files {
		page, err := codec.ParseFile(path, opts)
		if err != nil {
			fmt.Fprintln(os.Stderr, failStyle.Render(fmt.Sprintf("skipping %s: %v", path, err)))
			continue
		}
		if err := fn(path, page); err != nil {
			return processed, err
		}
		processed++
	}
	return processed, nil
}

// writeCSV writes rows to a CSV file. An empty header is not written.
func writeCSV(path string, header []string, rows [][]string, delimiter rune) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Comma = delimiter
	if len(header) > 0 {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// outputPath resolves the destination of a processed file: inside the output
// directory when one is given, in place otherwise.
func outputPath(input, outputDir string) string {
	if outputDir == "" {
		return input
	}
	return filepath.Join(outputDir, filepath.Base(input))
}

// summary prints a short styled completion line.
func summary(format string, args ...any) {
	fmt.Println(okStyle.Render(fmt.Sprintf(format, args...)))
}
