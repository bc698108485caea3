// Package validate implements the validate command: parse a statement text
// and report whether its balances reconcile.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/djok/ubb-statement-extractor/cmd/root"
	"github.com/djok/ubb-statement-extractor/internal/fileutils"
	"github.com/djok/ubb-statement-extractor/internal/parsererror"
	"github.com/djok/ubb-statement-extractor/internal/ubbparser"
	"github.com/djok/ubb-statement-extractor/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd is the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a statement's balance reconciliation",
	Long: `Validate parses a UBB statement text and checks that opening balance plus
credits minus debits matches the reported closing balance within tolerance.
Turnover mismatches are reported as warnings and do not fail the check.`,
	Run: validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	log := root.Log
	input := root.SharedFlags.Input

	if input == "" {
		log.Fatal("Input file is required")
	}

	pages, err := fileutils.ReadPages(input)
	if err != nil {
		log.Fatalf("Error reading statement text: %v", err)
	}

	statement, err := ubbparser.New(pages).Parse()
	if err != nil {
		log.Fatalf("Error parsing statement: %v", err)
	}

	result := validation.ValidateBalance(statement)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Error serializing validation result: %v", err)
	}
	fmt.Println(string(data))

	if !result.IsValid {
		log.Fatal(&parsererror.ValidationError{
			IBAN:   statement.Statement.IBAN,
			Reason: strings.Join(result.Errors, "; "),
		})
	}
	log.Info("Statement balance validation passed")
}
