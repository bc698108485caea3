package idempotency

import (
	"testing"
	"time"

	"github.com/djok/ubb-statement-extractor/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleInfo() models.StatementInfo {
	return models.StatementInfo{
		IBAN:            "BG41UBBS80021012345678",
		StatementNumber: 1,
		StatementDate:   models.NewDate(2026, time.January, 31),
		OpeningBalance:  models.NewBalance(decimal.RequireFromString("1000.00"), decimal.RequireFromString("1955.83")),
	}
}

func sampleTx() models.Transaction {
	return models.Transaction{
		Reference:   "933TATB260060011",
		PostingDate: models.NewDate(2026, time.January, 5),
		Amount:      models.NewBalance(decimal.RequireFromString("200.00"), decimal.RequireFromString("391.17")),
		IsDebit:     false,
	}
}

func TestStatementIDDeterministic(t *testing.T) {
	a := StatementID(sampleInfo())
	b := StatementID(sampleInfo())

	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
	assert.Regexp(t, "^[0-9a-f]{32}$", a)
}

func TestStatementIDSensitiveToInputs(t *testing.T) {
	base := StatementID(sampleInfo())

	changed := sampleInfo()
	changed.StatementNumber = 2
	assert.NotEqual(t, base, StatementID(changed))

	changed = sampleInfo()
	changed.IBAN = "BG41UBBS80021087654321"
	assert.NotEqual(t, base, StatementID(changed))

	changed = sampleInfo()
	changed.OpeningBalance = models.NewBalance(decimal.RequireFromString("999.99"), decimal.Zero)
	assert.NotEqual(t, base, StatementID(changed))
}

func TestTransactionIDDisambiguatesByIndex(t *testing.T) {
	stID := StatementID(sampleInfo())
	tx := sampleTx()

	first := TransactionID(stID, tx, 0)
	second := TransactionID(stID, tx, 1)

	assert.NotEqual(t, first, second)
	assert.Equal(t, first, TransactionID(stID, tx, 0))
	assert.Len(t, first, 32)
}

func TestTransactionIDSensitiveToDirection(t *testing.T) {
	stID := StatementID(sampleInfo())

	credit := sampleTx()
	debit := sampleTx()
	debit.IsDebit = true

	assert.NotEqual(t, TransactionID(stID, credit, 0), TransactionID(stID, debit, 0))
}

func TestFileChecksum(t *testing.T) {
	content := []byte("statement page text")

	sum := FileChecksum(content)
	assert.Len(t, sum, 64)
	assert.Equal(t, sum, FileChecksum(content))
	assert.NotEqual(t, sum, FileChecksum([]byte("statement page text ")))
}
