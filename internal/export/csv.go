// Package export writes flat transaction exports alongside the primary JSON
// output. The JSON shape is the compatibility contract; the CSV is a
// convenience for spreadsheet review.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/djok/ubb-statement-extractor/internal/logging"
	"github.com/djok/ubb-statement-extractor/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// SetLogger sets a custom logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// transactionRow is the flat CSV projection of one transaction.
type transactionRow struct {
	PostingDate      string `csv:"posting_date"`
	ValueDate        string `csv:"value_date"`
	Reference        string `csv:"reference"`
	Type             string `csv:"type"`
	Description      string `csv:"description"`
	CounterpartyName string `csv:"counterparty_name"`
	CounterpartyIBAN string `csv:"counterparty_iban"`
	CounterpartyBank string `csv:"counterparty_bank"`
	AmountEUR        string `csv:"amount_eur"`
	AmountBGN        string `csv:"amount_bgn"`
	Direction        string `csv:"direction"`
}

func toRow(tx models.Transaction) transactionRow {
	row := transactionRow{
		PostingDate: tx.PostingDate.ISO(),
		ValueDate:   tx.ValueDate.ISO(),
		Reference:   tx.Reference,
		Type:        string(tx.Type),
		Description: tx.Description,
		AmountEUR:   tx.Amount.EUR.StringFixed(2),
		AmountBGN:   tx.Amount.BGN.StringFixed(2),
		Direction:   "credit",
	}
	if tx.IsDebit {
		row.Direction = "debit"
	}
	if cp := tx.Counterparty; cp != nil {
		if cp.Name != nil {
			row.CounterpartyName = *cp.Name
		}
		if cp.IBAN != nil {
			row.CounterpartyIBAN = *cp.IBAN
		}
		if cp.Bank != nil {
			row.CounterpartyBank = *cp.Bank
		}
	}
	return row
}

// WriteTransactionsToCSV writes the statement's transactions to a CSV file
// in document order, creating the output directory if needed.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	dir := filepath.Dir(csvFile)
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool writes user-provided paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close CSV file",
				logging.Field{Key: logging.FieldFile, Value: csvFile})
		}
	}()

	rows := make([]transactionRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, toRow(tx))
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	log.Info("Wrote transaction CSV",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}
