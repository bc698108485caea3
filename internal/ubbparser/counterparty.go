package ubbparser

import (
	"regexp"
	"strings"

	"github.com/djok/ubb-statement-extractor/internal/models"
)

var (
	// bankNamePattern captures the sending bank after the "ОТ БАНКА" marker,
	// tolerating a space before the colon.
	bankNamePattern = regexp.MustCompile(`(?i)ОТ БАНКА\s*[:\s]+(.+)`)

	// counterpartyIBANPattern finds a Bulgarian IBAN anywhere in a line; it
	// may follow a SWIFT code ("UBBSBGSF BG41UBBS...").
	counterpartyIBANPattern = regexp.MustCompile(`(BG\d{2}[A-Z]{4}\d{10,16})`)

	// merchantLocationPattern matches card-transaction merchant lines shaped
	// NAME-CITY-COUNTRYCODE.
	merchantLocationPattern = regexp.MustCompile(`^[A-Z0-9\s\-]+-[A-Z\s\.]+-(BG|RO|GR|TR)$`)

	numericReferencePattern   = regexp.MustCompile(`^\d{7,}$`)
	numericPunctuationPattern = regexp.MustCompile(`^[\d\-/\.\s]+$`)
	plainNumericPattern       = regexp.MustCompile(`^\d+$`)

	// invoiceMarkerPattern matches invoice references like
	// "F. 2400003707 19.12.2025" or "Ф.500003902405.01.2026".
	invoiceMarkerPattern = regexp.MustCompile(`(?i)[ФF][\.\s]`)

	// skipCounterpartyPatterns lists lines that carry no counterparty signal:
	// the bare card-transaction header, POS codes, terminal IDs, card
	// references, the bare transfer word. IBAN lines are not listed here
	// because the IBAN check runs first.
	skipCounterpartyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^КАРТОВА ТРАНЗАКЦИЯ$`),
		regexp.MustCompile(`^(PO|SI|VI|R1)\d{6}$`),
		regexp.MustCompile(`^\d{8}-\d+-\d+$`),
		regexp.MustCompile(`^\d{8}-[A-Z]\d+-\d+$`),
		regexp.MustCompile(`^\d{4}X\d{4}-\d+-\d+$`),
		regexp.MustCompile(`^ПРЕВОД$`),
	}
)

// extractCounterparty recovers counterparty name, IBAN, bank and payment
// reference from a transaction's description lines. Line 0 is the type
// description and is skipped. Each line is evaluated against an ordered rule
// list; the first matching rule consumes the line. Returns nil when no field
// was populated, which is a common, valid outcome for internal fee entries.
func extractCounterparty(descriptionLines []string, txType models.TransactionType) *models.Counterparty {
	var name, reference, bank, iban *string

	for i, raw := range descriptionLines {
		if i == 0 {
			continue
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// Bank marker first, it is the most specific signal.
		if strings.Contains(strings.ToUpper(line), "ОТ БАНКА") {
			if m := bankNamePattern.FindStringSubmatch(line); m != nil {
				v := strings.TrimSpace(m[1])
				bank = &v
			}
			continue
		}

		if m := counterpartyIBANPattern.FindStringSubmatch(line); m != nil {
			v := m[1]
			iban = &v
			continue
		}

		if matchesAny(skipCounterpartyPatterns, line) {
			continue
		}

		// Long numeric strings are payment references.
		if numericReferencePattern.MatchString(line) {
			if reference == nil {
				v := line
				reference = &v
			}
			continue
		}

		// Card transactions carry the merchant as a NAME-CITY-CC line.
		if txType == models.TypeCardTransaction && merchantLocationPattern.MatchString(line) {
			if name == nil {
				v := line
				name = &v
			}
			continue
		}

		// For transfers the first plausible line is the counterparty name;
		// purely numeric or punctuation lines are references, not names.
		if name == nil && len([]rune(line)) > 2 && !numericPunctuationPattern.MatchString(line) {
			v := line
			name = &v
			continue
		}

		// Once the name is known, invoice markers and plain numbers become
		// the payment reference.
		if reference == nil && name != nil {
			if invoiceMarkerPattern.MatchString(line) || plainNumericPattern.MatchString(line) {
				v := line
				reference = &v
				continue
			}
		}
	}

	if name == nil && reference == nil && bank == nil && iban == nil {
		return nil
	}
	return &models.Counterparty{Name: name, Reference: reference, Bank: bank, IBAN: iban}
}

func matchesAny(patterns []*regexp.Regexp, line string) bool {
	for _, p := range patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}
