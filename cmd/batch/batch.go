// Package batch implements the batch command: convert every statement text
// in a directory to JSON.
package batch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/djok/ubb-statement-extractor/cmd/root"
	"github.com/djok/ubb-statement-extractor/internal/fileutils"
	"github.com/djok/ubb-statement-extractor/internal/ubbparser"
	"github.com/djok/ubb-statement-extractor/internal/validation"

	"github.com/spf13/cobra"
)

var (
	inputDir  string
	outputDir string

	// Cmd is the batch command
	Cmd = &cobra.Command{
		Use:   "batch",
		Short: "Batch convert a directory of statement texts to JSON",
		Long: `Batch parses every .txt statement in a directory and writes one JSON file
per statement into the output directory. Statements that fail to parse are
skipped and counted; the command fails only when nothing converts.`,
		Run: batchFunc,
	}
)

func batchFunc(cmd *cobra.Command, args []string) {
	log := root.Log

	if inputDir == "" || outputDir == "" {
		log.Fatal("Input and output directories are required")
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		log.Fatalf("Error reading input directory: %v", err)
	}

	converted := 0
	failed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		inputFile := filepath.Join(inputDir, entry.Name())
		base := strings.TrimSuffix(entry.Name(), ".txt")
		outputFile := filepath.Join(outputDir, base+".json")

		if err := convertOne(inputFile, outputFile); err != nil {
			log.WithError(err).Errorf("Failed to convert %s", entry.Name())
			failed++
			continue
		}
		converted++
	}

	log.Infof("Batch conversion finished: %d converted, %d failed", converted, failed)
	if converted == 0 {
		log.Fatal("No statements were converted")
	}
}

func convertOne(inputFile, outputFile string) error {
	log := root.Log

	pages, err := fileutils.ReadPages(inputFile)
	if err != nil {
		return err
	}

	statement, err := ubbparser.New(pages).Parse()
	if err != nil {
		return err
	}

	result := validation.ValidateBalance(statement)
	for _, w := range result.Warnings {
		log.Warnf("%s: %s", filepath.Base(inputFile), w)
	}
	for _, e := range result.Errors {
		log.Errorf("%s: %s", filepath.Base(inputFile), e)
	}

	data, err := statement.ToJSON(2)
	if err != nil {
		return err
	}
	return fileutils.WriteOutput(data, outputFile)
}

func init() {
	Cmd.Flags().StringVarP(&inputDir, "input", "d", "", "Input directory containing statement .txt files (required)")
	Cmd.Flags().StringVarP(&outputDir, "output", "t", "", "Output directory for JSON files (required)")
}
