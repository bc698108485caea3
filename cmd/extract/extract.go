// Package extract implements the extract command: statement text in,
// structured JSON out.
package extract

import (
	"fmt"
	"strings"

	"github.com/djok/ubb-statement-extractor/cmd/root"
	"github.com/djok/ubb-statement-extractor/internal/config"
	"github.com/djok/ubb-statement-extractor/internal/export"
	"github.com/djok/ubb-statement-extractor/internal/fileutils"
	"github.com/djok/ubb-statement-extractor/internal/idempotency"
	"github.com/djok/ubb-statement-extractor/internal/parsererror"
	"github.com/djok/ubb-statement-extractor/internal/ubbparser"
	"github.com/djok/ubb-statement-extractor/internal/validation"

	"github.com/spf13/cobra"
)

var (
	csvFile string
	indent  int

	// Cmd is the extract command
	Cmd = &cobra.Command{
		Use:   "extract",
		Short: "Extract a UBB statement text into structured JSON",
		Long: `Extract parses the per-page plain text of a UBB bank statement and writes
the structured statement as JSON. The input is either a single text file with
form-feed page breaks or a directory of per-page .txt files.`,
		Run: extractFunc,
	}
)

func extractFunc(cmd *cobra.Command, args []string) {
	log := root.Log
	input := root.SharedFlags.Input
	output := root.SharedFlags.Output

	if input == "" {
		log.Fatal("Input file is required")
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	pages, err := fileutils.ReadPages(input)
	if err != nil {
		log.Fatalf("Error reading statement text: %v", err)
	}

	rules, err := loadRules(cfg)
	if err != nil {
		log.Fatalf("Error loading classifier rules: %v", err)
	}

	extractor := ubbparser.NewWithRules(pages, rules)
	statement, err := extractor.Parse()
	if err != nil {
		log.Fatalf("Error parsing statement: %v", err)
	}

	log.Infof("Statement %s #%d: %d transactions",
		statement.Statement.IBAN, statement.Statement.StatementNumber, len(statement.Transactions))
	log.Infof("Statement ID: %s", idempotency.StatementID(statement.Statement))
	if dropped := extractor.DroppedCandidates(); dropped > 0 {
		log.Warnf("Dropped %d transaction candidates without amounts", dropped)
	}

	if root.SharedFlags.Validate {
		result := validation.ValidateBalance(statement)
		for _, w := range result.Warnings {
			log.Warn(w)
		}
		for _, e := range result.Errors {
			log.Error(e)
		}
		if !result.IsValid {
			log.Fatal(&parsererror.ValidationError{
				IBAN:   statement.Statement.IBAN,
				Reason: strings.Join(result.Errors, "; "),
			})
		}
		log.Info("Statement balance validation passed")
	}

	data, err := statement.ToJSON(indent)
	if err != nil {
		log.Fatalf("Error serializing statement: %v", err)
	}

	if output == "" {
		fmt.Println(string(data))
	} else if err := fileutils.WriteOutput(data, output); err != nil {
		log.Fatalf("Error writing output: %v", err)
	}

	if csvFile != "" {
		if err := export.WriteTransactionsToCSV(statement.Transactions, csvFile); err != nil {
			log.Fatalf("Error writing CSV export: %v", err)
		}
	}
}

func loadRules(cfg *config.Config) ([]ubbparser.TypeRule, error) {
	if cfg.Classifier.RulesFile == "" {
		return nil, nil
	}
	return ubbparser.LoadTypeRules(cfg.Classifier.RulesFile)
}

func init() {
	Cmd.Flags().StringVarP(&csvFile, "csv", "c", "", "Also write a flat transaction CSV to this file")
	Cmd.Flags().IntVar(&indent, "indent", 2, "JSON indentation (0 for compact output)")
}
