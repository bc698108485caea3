// Package fileutils handles the file I/O around the extraction engine: page
// text acquisition for the CLI layer and JSON output writing. The engine
// itself never touches the filesystem.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/djok/ubb-statement-extractor/internal/logging"
)

var log = logging.GetLogger()

// SetLogger sets a custom logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadPages loads per-page statement text from a path. A regular file is
// split on form-feed page breaks (a file without any form feed is a single
// page). A directory is read as one page per .txt file, in lexical order.
func ReadPages(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing input path: %w", err)
	}

	if info.IsDir() {
		return readPageDir(path)
	}

	content, err := os.ReadFile(path) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}

	pages := strings.Split(string(content), "\f")
	log.Debug("Read statement text",
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldPages, Value: len(pages)})
	return pages, nil
}

func readPageDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		files = append(files, entry.Name())
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .txt page files found in %s", dir)
	}
	sort.Strings(files)

	pages := make([]string, 0, len(files))
	for _, name := range files {
		content, err := os.ReadFile(filepath.Join(dir, name)) // #nosec G304
		if err != nil {
			return nil, fmt.Errorf("error reading page file %s: %w", name, err)
		}
		pages = append(pages, string(content))
	}

	log.Debug("Read statement pages from directory",
		logging.Field{Key: logging.FieldInputFile, Value: dir},
		logging.Field{Key: logging.FieldPages, Value: len(pages)})
	return pages, nil
}

// WriteOutput writes serialized output to a file, creating parent
// directories as needed.
func WriteOutput(data []byte, path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	log.Info("Wrote output file",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(data)})
	return nil
}
