// Package ubbparser extracts structured bank statements from the per-page
// plain text of UBB (ОББ) statement documents. The input text has no record
// delimiters, so transaction boundaries, continuation lines and counterparty
// sub-fields are inferred from line-level heuristics specific to this one
// statement layout.
package ubbparser

import (
	"github.com/djok/ubb-statement-extractor/internal/currencyutils"
	"github.com/djok/ubb-statement-extractor/internal/logging"
	"github.com/djok/ubb-statement-extractor/internal/models"
	"github.com/djok/ubb-statement-extractor/internal/parsererror"

	"github.com/shopspring/decimal"
)

var log = logging.GetLogger()

// SetLogger sets a custom logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// BankName identifies the issuing bank in the output contract.
const BankName = "UBB"

// Extractor parses one statement document. It holds only that document's
// page texts, so separate instances can run concurrently without locking.
type Extractor struct {
	pages     []string
	typeRules []TypeRule
	dropped   int
}

// New creates an Extractor over the given per-page texts (in page order).
func New(pages []string) *Extractor {
	return NewWithRules(pages, nil)
}

// NewWithRules creates an Extractor with a custom ordered rule set for the
// type classifier. A nil or empty rule set selects the built-in defaults.
func NewWithRules(pages []string, rules []TypeRule) *Extractor {
	if len(rules) == 0 {
		rules = defaultTypeRules
	}
	return &Extractor{pages: pages, typeRules: rules}
}

// DroppedCandidates reports how many transaction-start lines were discarded
// because no amount was found before the next transaction began. The drops
// themselves stay silent in the output for compatibility; this counter and
// the per-drop warning log are the only trace.
func (e *Extractor) DroppedCandidates() int {
	return e.dropped
}

// Parse extracts the complete statement. It fails only when no page text was
// supplied at all; missing header or footer fields degrade to defaults and
// surface later as validation mismatches.
func (e *Extractor) Parse() (*models.BankStatement, error) {
	if len(e.pages) == 0 {
		return nil, parsererror.ErrNoPages
	}

	header := e.extractHeader()
	footer := e.extractFooter()
	transactions := e.segmentTransactions()

	log.Info("Parsed statement",
		logging.Field{Key: logging.FieldIBAN, Value: header.iban},
		logging.Field{Key: logging.FieldPages, Value: len(e.pages)},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldDropped, Value: e.dropped})

	info := models.StatementInfo{
		Bank:                BankName,
		AccountHolder:       header.accountHolder,
		IBAN:                header.iban,
		Currency:            header.currency,
		Period:              header.period,
		StatementNumber:     header.statementNumber,
		StatementDate:       header.statementDate,
		OpeningBalance:      header.openingBalance,
		ClosingBalance:      footer.closingBalance,
		Turnover:            footer.turnover,
		AccumulatedTurnover: footer.accumulated,
	}

	return &models.BankStatement{
		Statement:    info,
		Transactions: transactions,
	}, nil
}

// parseBalancePair parses an EUR/BGN amount pair captured by one of the
// balance or turnover patterns. Unparseable values degrade to zero.
func parseBalancePair(eurStr, bgnStr string) models.Balance {
	return models.NewBalance(parseAmountOrZero(eurStr), parseAmountOrZero(bgnStr))
}

func parseAmountOrZero(s string) decimal.Decimal {
	amount, err := currencyutils.ParseAmount(s)
	if err != nil {
		log.WithError(err).Debug("Unparseable amount, defaulting to zero")
		return decimal.Zero
	}
	return amount
}
