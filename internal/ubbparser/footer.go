package ubbparser

import (
	"regexp"
	"strings"

	"github.com/djok/ubb-statement-extractor/internal/models"
)

// closingBalanceMarker identifies the summary page. Trailing pages may carry
// legal or currency-conversion notices after the true summary, so the page
// is located by scanning backwards for this marker.
const closingBalanceMarker = "Крайно салдо:"

// Footer patterns. The summary block prints the current-period and
// accumulated turnovers side by side in two columns:
//
//	Обороти:                              Натрупани обороти:
//	Дебит: 634.13 EUR / 1,240.25 BGN      Дебит: 1,570.94 EUR / 3,072.49 BGN
//	Кредит: 13,427.19 EUR / 26,261.30 BGN Кредит: 144,280.68 EUR / 282,188.48 BGN
//
// The line-anchored patterns capture the left (current) column. The
// accumulated debit is anchored after the left column's trailing "BGN";
// the accumulated credit has no such anchor and is taken as the second of
// all credit matches on the page. That asymmetry is dictated by the fixed
// two-column layout and must not be "fixed".
var (
	closingBalancePattern  = regexp.MustCompile(`Крайно салдо:\s*([\d,\.]+)\s*EUR\s*/\s*([\d,\.]+)\s*BGN`)
	turnoverDebitPattern   = regexp.MustCompile(`(?m)^Дебит:\s*([\d,\.]+)\s*EUR\s*/\s*([\d,\.]+)\s*BGN`)
	turnoverCreditPattern  = regexp.MustCompile(`(?m)^Кредит:\s*([\d,\.]+)\s*EUR\s*/\s*([\d,\.]+)\s*BGN`)
	accumulatedDebitPattern = regexp.MustCompile(`BGN\s+Дебит:\s*([\d,\.]+)\s*EUR\s*/\s*([\d,\.]+)\s*BGN`)
	allCreditsPattern      = regexp.MustCompile(`Кредит:\s*([\d,\.]+)\s*EUR\s*/\s*([\d,\.]+)\s*BGN`)
)

type footerFields struct {
	closingBalance models.Balance
	turnover       models.Turnover
	accumulated    models.Turnover
}

// findSummaryPage returns the last page containing the closing-balance
// marker, falling back to the physically last page when none match.
func findSummaryPage(pages []string) string {
	for i := len(pages) - 1; i >= 0; i-- {
		if strings.Contains(pages[i], closingBalanceMarker) {
			return pages[i]
		}
	}
	if len(pages) == 0 {
		return ""
	}
	return pages[len(pages)-1]
}

// extractFooter extracts the closing balance and the two turnover pairs from
// the summary page. Unmatched fields default to zero balances.
func (e *Extractor) extractFooter() footerFields {
	page := findSummaryPage(e.pages)

	f := footerFields{
		closingBalance: models.ZeroBalance(),
		turnover:       models.ZeroTurnover(),
		accumulated:    models.ZeroTurnover(),
	}

	if m := closingBalancePattern.FindStringSubmatch(page); m != nil {
		f.closingBalance = parseBalancePair(m[1], m[2])
	}

	debitMatch := turnoverDebitPattern.FindStringSubmatch(page)
	creditMatch := turnoverCreditPattern.FindStringSubmatch(page)
	if debitMatch != nil && creditMatch != nil {
		f.turnover = models.Turnover{
			Debit:  parseBalancePair(debitMatch[1], debitMatch[2]),
			Credit: parseBalancePair(creditMatch[1], creditMatch[2]),
		}
	}

	accDebitMatch := accumulatedDebitPattern.FindStringSubmatch(page)
	// The first credit on the page belongs to the current period, the second
	// to the accumulated figure.
	allCredits := allCreditsPattern.FindAllStringSubmatch(page, -1)
	if accDebitMatch != nil && len(allCredits) >= 2 {
		accCredit := allCredits[1]
		f.accumulated = models.Turnover{
			Debit:  parseBalancePair(accDebitMatch[1], accDebitMatch[2]),
			Credit: parseBalancePair(accCredit[1], accCredit[2]),
		}
	}

	return f
}
