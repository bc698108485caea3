// Package idempotency derives the deterministic identifiers consumed by the
// downstream import collaborator for deduplication. Everything here is a
// pure function of the parsed statement: identical input text always yields
// identical identifiers.
package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/djok/ubb-statement-extractor/internal/models"
)

// idLength is the number of hex characters kept from the SHA-256 digest.
const idLength = 32

func fingerprint(components []string) string {
	canonical := strings.Join(components, "|")
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])[:idLength]
}

// StatementID derives the statement's dedup identifier from its immutable
// properties: IBAN, statement date, statement number and opening balance.
func StatementID(info models.StatementInfo) string {
	return fingerprint([]string{
		info.IBAN,
		info.StatementDate.ISO(),
		strconv.Itoa(info.StatementNumber),
		info.OpeningBalance.EUR.String(),
	})
}

// TransactionID derives a transaction identifier unique within a statement.
// The index disambiguates entries sharing a reference, such as the fee
// immediately following a card transaction.
func TransactionID(statementID string, tx models.Transaction, index int) string {
	return fingerprint([]string{
		statementID,
		tx.Reference,
		tx.PostingDate.ISO(),
		tx.Amount.EUR.String(),
		strconv.FormatBool(tx.IsDebit),
		strconv.Itoa(index),
	})
}

// FileChecksum returns the full SHA-256 checksum of raw content, used by the
// import collaborator to detect byte-identical re-submissions.
func FileChecksum(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
