package ubbparser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/djok/ubb-statement-extractor/internal/dateutils"
	"github.com/djok/ubb-statement-extractor/internal/logging"
	"github.com/djok/ubb-statement-extractor/internal/models"
	"github.com/djok/ubb-statement-extractor/internal/parsererror"
)

var (
	// transactionStartPattern matches the date columns that open every
	// transaction line: posting date DD/MM/YY, value date DD/MM.
	transactionStartPattern = regexp.MustCompile(`^(\d{2}/\d{2}/\d{2})\s+(\d{2}/\d{2})\s+`)

	// amountPattern matches the trailing EUR/BGN amount pair that closes a
	// transaction. A negative EUR value marks a debit.
	amountPattern = regexp.MustCompile(`(-?[\d,\.]+)\s*EUR\s*/\s*(-?[\d,\.]+)\s*BGN\s*$`)
)

// isBoilerplate reports whether a line is page-break or letterhead noise
// that must not enter a transaction's description.
func isBoilerplate(line string) bool {
	return strings.HasPrefix(line, "Междинно салдо") ||
		strings.HasPrefix(line, "Страница") ||
		strings.Contains(line, "ОББ Извлечение")
}

// segmentTransactions runs the two-state line scanner over every page in
// order. The machine is in scanning state until a line matches the
// transaction-start pattern, then collects description lines until the
// closing amount is found. A candidate whose amount never appears before the
// next transaction-start line is dropped; the drop is counted and logged but
// stays out of the output.
func (e *Extractor) segmentTransactions() []models.Transaction {
	var transactions []models.Transaction

	for _, pageText := range e.pages {
		lines := strings.Split(pageText, "\n")
		i := 0
		for i < len(lines) {
			start := transactionStartPattern.FindStringSubmatchIndex(lines[i])
			if start == nil {
				// scanning state
				i++
				continue
			}
			tx, next, ok := e.collectTransaction(lines, i, start)
			if ok {
				transactions = append(transactions, tx)
			} else {
				e.dropped++
				log.Warn("Dropped transaction candidate without amount",
					logging.Field{Key: logging.FieldLine, Value: lines[i]})
			}
			i = next
		}
	}

	return transactions
}

// collectTransaction implements the collecting-description state for the
// transaction starting at lines[i]. It returns the parsed transaction, the
// index scanning should resume at, and whether an amount was found.
func (e *Extractor) collectTransaction(lines []string, i int, start []int) (models.Transaction, int, bool) {
	line := lines[i]
	postingDateStr := line[start[2]:start[3]]
	valueDateStr := line[start[4]:start[5]]
	restOfLine := line[start[1]:]

	descriptionLines := []string{restOfLine}
	amount := amountPattern.FindStringSubmatchIndex(line)

	if amount == nil {
		// Advance until the amount appears or a new transaction starts.
		i++
		for i < len(lines) {
			next := lines[i]
			if transactionStartPattern.MatchString(next) {
				break
			}
			if amount = amountPattern.FindStringSubmatchIndex(next); amount != nil {
				if before := strings.TrimSpace(next[:amount[0]]); before != "" {
					descriptionLines = append(descriptionLines, before)
				}
				line = next
				i++
				break
			}
			if !isBoilerplate(next) {
				descriptionLines = append(descriptionLines, next)
			}
			i++
		}
	} else {
		// The amount sits on the start line itself: the transaction closes
		// immediately, then trailing counterparty lines are collected until
		// the next transaction begins.
		descriptionLines = []string{strings.TrimSpace(line[start[1]:amount[0]])}
		i++
		for i < len(lines) {
			next := lines[i]
			if transactionStartPattern.MatchString(next) {
				break
			}
			if isBoilerplate(next) || strings.HasPrefix(next, "Счет. Дата") {
				i++
				continue
			}
			descriptionLines = append(descriptionLines, next)
			i++
		}
	}

	if amount == nil {
		return models.Transaction{}, i, false
	}

	postingDate, err := dateutils.ParsePostingDate(postingDateStr)
	if err != nil {
		log.WithError(&parsererror.ParseError{Parser: "ubbparser", Field: "posting_date", Value: postingDateStr, Err: err}).
			Debug("Unparseable transaction date")
		return models.Transaction{}, i, false
	}
	valueDate, err := dateutils.ParseShortDate(valueDateStr, postingDate.Year())
	if err != nil {
		log.WithError(&parsererror.ParseError{Parser: "ubbparser", Field: "value_date", Value: valueDateStr, Err: err}).
			Debug("Unparseable transaction date")
		return models.Transaction{}, i, false
	}

	fullDesc := strings.Join(descriptionLines, " ")
	reference, description := splitReference(descriptionLines[0])

	eurAmount := parseAmountOrZero(line[amount[2]:amount[3]])
	bgnAmount := parseAmountOrZero(line[amount[4]:amount[5]])
	isDebit := eurAmount.IsNegative()

	txType := e.classify(fullDesc)

	tx := models.Transaction{
		PostingDate:    postingDate,
		ValueDate:      valueDate,
		Reference:      reference,
		Type:           txType,
		Description:    description,
		RawDescription: fullDesc,
		Counterparty:   extractCounterparty(descriptionLines, txType),
		Amount:         models.NewBalance(eurAmount.Abs(), bgnAmount.Abs()),
		IsDebit:        isDebit,
	}
	return tx, i, true
}

// splitReference splits the first description line on its first whitespace
// run into (reference, description). A line with a single token yields an
// empty description.
func splitReference(line string) (string, string) {
	trimmed := strings.TrimSpace(line)
	idx := strings.IndexFunc(trimmed, unicode.IsSpace)
	if idx < 0 {
		return trimmed, ""
	}
	return trimmed[:idx], strings.TrimLeftFunc(trimmed[idx:], unicode.IsSpace)
}
