package models

import "github.com/shopspring/decimal"

// ValidationResult is the outcome of reconciling a statement's reported
// balances against its transactions. Errors flip IsValid to false; warnings
// are informational only.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`

	CalculatedClosingEUR decimal.Decimal `json:"calculated_closing_eur"`
	CalculatedClosingBGN decimal.Decimal `json:"calculated_closing_bgn"`
	ExpectedClosingEUR   decimal.Decimal `json:"expected_closing_eur"`
	ExpectedClosingBGN   decimal.Decimal `json:"expected_closing_bgn"`

	TotalDebitEUR  decimal.Decimal `json:"total_debit_eur"`
	TotalCreditEUR decimal.Decimal `json:"total_credit_eur"`
	TotalDebitBGN  decimal.Decimal `json:"total_debit_bgn"`
	TotalCreditBGN decimal.Decimal `json:"total_credit_bgn"`
}
