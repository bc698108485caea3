// Package validation reconciles a parsed statement's reported balances and
// turnover against the sums of its transactions.
package validation

import (
	"fmt"

	"github.com/djok/ubb-statement-extractor/internal/models"

	"github.com/shopspring/decimal"
)

// Tolerances for comparing calculated and reported figures. BGN accumulates
// more rounding error from the fixed EUR to BGN peg conversion (1.95583),
// so it gets the wider tolerance.
var (
	EURTolerance = decimal.RequireFromString("0.02")
	BGNTolerance = decimal.RequireFromString("0.10")
)

// ValidateBalance checks that opening balance + credits - debits equals the
// reported closing balance per currency, and that the transaction sums match
// the reported current-period turnover. Balance breaches beyond tolerance
// are errors; turnover mismatches are warnings only.
func ValidateBalance(statement *models.BankStatement) models.ValidationResult {
	var errs []string
	var warnings []string

	totalDebitEUR := decimal.Zero
	totalCreditEUR := decimal.Zero
	totalDebitBGN := decimal.Zero
	totalCreditBGN := decimal.Zero

	for _, tx := range statement.Transactions {
		if tx.IsDebit {
			totalDebitEUR = totalDebitEUR.Add(tx.Amount.EUR)
			totalDebitBGN = totalDebitBGN.Add(tx.Amount.BGN)
		} else {
			totalCreditEUR = totalCreditEUR.Add(tx.Amount.EUR)
			totalCreditBGN = totalCreditBGN.Add(tx.Amount.BGN)
		}
	}

	opening := statement.Statement.OpeningBalance
	calculatedClosingEUR := opening.EUR.Add(totalCreditEUR).Sub(totalDebitEUR)
	calculatedClosingBGN := opening.BGN.Add(totalCreditBGN).Sub(totalDebitBGN)

	expected := statement.Statement.ClosingBalance
	eurDiff := calculatedClosingEUR.Sub(expected.EUR).Abs()
	bgnDiff := calculatedClosingBGN.Sub(expected.BGN).Abs()

	if eurDiff.GreaterThan(EURTolerance) {
		errs = append(errs, fmt.Sprintf(
			"EUR balance mismatch: calculated %s, expected %s, diff %s",
			calculatedClosingEUR.StringFixed(2), expected.EUR.StringFixed(2), eurDiff.StringFixed(2)))
	}

	if bgnDiff.GreaterThan(BGNTolerance) {
		errs = append(errs, fmt.Sprintf(
			"BGN balance mismatch: calculated %s, expected %s, diff %s",
			calculatedClosingBGN.StringFixed(2), expected.BGN.StringFixed(2), bgnDiff.StringFixed(2)))
	}

	turnover := statement.Statement.Turnover
	debitEURDiff := totalDebitEUR.Sub(turnover.Debit.EUR).Abs()
	creditEURDiff := totalCreditEUR.Sub(turnover.Credit.EUR).Abs()

	if debitEURDiff.GreaterThan(EURTolerance) {
		warnings = append(warnings, fmt.Sprintf(
			"Debit turnover mismatch: transactions sum %s, reported %s",
			totalDebitEUR.StringFixed(2), turnover.Debit.EUR.StringFixed(2)))
	}

	if creditEURDiff.GreaterThan(EURTolerance) {
		warnings = append(warnings, fmt.Sprintf(
			"Credit turnover mismatch: transactions sum %s, reported %s",
			totalCreditEUR.StringFixed(2), turnover.Credit.EUR.StringFixed(2)))
	}

	return models.ValidationResult{
		IsValid:              len(errs) == 0,
		Errors:               errs,
		Warnings:             warnings,
		CalculatedClosingEUR: calculatedClosingEUR,
		CalculatedClosingBGN: calculatedClosingBGN,
		ExpectedClosingEUR:   expected.EUR,
		ExpectedClosingBGN:   expected.BGN,
		TotalDebitEUR:        totalDebitEUR,
		TotalCreditEUR:       totalCreditEUR,
		TotalDebitBGN:        totalDebitBGN,
		TotalCreditBGN:       totalCreditBGN,
	}
}
