package ubbparser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/djok/ubb-statement-extractor/internal/dateutils"
	"github.com/djok/ubb-statement-extractor/internal/models"
	"github.com/djok/ubb-statement-extractor/internal/parsererror"
)

// Header field patterns. All fields live on the first page; each pattern is
// searched independently and a miss falls back to a sentinel default.
var (
	accountHolderPattern = regexp.MustCompile(`Титуляр на сметката\s+(\d+)\s+(.+?)(?:\s+\d{4}|\s+ДАО)`)
	addressPattern       = regexp.MustCompile(`(?s)Адрес\s+(.+?)IBAN:`)
	ibanPattern          = regexp.MustCompile(`IBAN:\s*(BG\w+)`)
	currencyPattern      = regexp.MustCompile(`Валута\s+([A-Z]{3})`)
	periodPattern        = regexp.MustCompile(`Период на извлечението:\s*ОТ\s+(\d{2})\s+(\p{L}+)\s+(\d{4})\s+ДО\s+(\d{2})\s+(\p{L}+)\s+(\d{4})`)
	statementNumPattern  = regexp.MustCompile(`Пореден номер / Дата:\s*(\d+)\s*/\s*(\d{2})\s+(\p{L}+)\s+(\d{4})`)
	openingBalancePattern = regexp.MustCompile(`Начално салдо:\s*([\d,\.]+)\s*EUR\s*/\s*([\d,\.]+)\s*BGN`)
)

type headerFields struct {
	accountHolder   models.AccountHolder
	iban            string
	currency        string
	period          models.Period
	statementNumber int
	statementDate   models.Date
	openingBalance  models.Balance
}

// extractHeader scans the first page for the statement metadata. It never
// fails outright: every unmatched field gets its safe default and the
// resulting skew, if any, is caught by balance validation.
func (e *Extractor) extractHeader() headerFields {
	firstPage := e.pages[0]

	h := headerFields{
		currency:       "EUR",
		statementDate:  models.Today(),
		openingBalance: models.ZeroBalance(),
	}

	if m := accountHolderPattern.FindStringSubmatch(firstPage); m != nil {
		h.accountHolder.Code = m[1]
		h.accountHolder.Name = strings.TrimSpace(m[2])
	} else {
		log.WithError(&parsererror.ExtractionError{Field: "account_holder", Reason: "pattern did not match"}).
			Debug("Header field did not match")
	}

	if m := addressPattern.FindStringSubmatch(firstPage); m != nil {
		// collapse the multi-line address block into single-spaced text
		h.accountHolder.Address = strings.Join(strings.Fields(m[1]), " ")
	}

	if m := ibanPattern.FindStringSubmatch(firstPage); m != nil {
		h.iban = m[1]
	} else {
		log.WithError(&parsererror.ExtractionError{Field: "iban", Reason: "pattern did not match"}).
			Debug("Header field did not match")
	}

	if m := currencyPattern.FindStringSubmatch(firstPage); m != nil {
		h.currency = m[1]
	}

	if m := periodPattern.FindStringSubmatch(firstPage); m != nil {
		from, errFrom := dateutils.ParseBulgarianDate(m[1], m[2], m[3])
		to, errTo := dateutils.ParseBulgarianDate(m[4], m[5], m[6])
		if errFrom == nil && errTo == nil {
			h.period = models.Period{FromDate: from, ToDate: to}
		} else {
			h.period = models.Period{FromDate: models.Today(), ToDate: models.Today()}
		}
	} else {
		log.WithError(&parsererror.ExtractionError{Field: "period", Reason: "pattern did not match"}).
			Debug("Header field did not match")
		h.period = models.Period{FromDate: models.Today(), ToDate: models.Today()}
	}

	if m := statementNumPattern.FindStringSubmatch(firstPage); m != nil {
		if num, err := strconv.Atoi(m[1]); err == nil {
			h.statementNumber = num
		}
		if d, err := dateutils.ParseBulgarianDate(m[2], m[3], m[4]); err == nil {
			h.statementDate = d
		}
	}

	if m := openingBalancePattern.FindStringSubmatch(firstPage); m != nil {
		h.openingBalance = parseBalancePair(m[1], m[2])
	} else {
		log.WithError(&parsererror.ExtractionError{Field: "opening_balance", Reason: "pattern did not match"}).
			Debug("Header field did not match")
	}

	return h
}
