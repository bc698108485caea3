// Package dateutils parses the date notations found in UBB statements:
// long dates with Bulgarian month abbreviations ("05 ЯНУ 2026"), posting
// dates in DD/MM/YY, and value dates in DD/MM with no year.
package dateutils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/djok/ubb-statement-extractor/internal/models"
)

// bulgarianMonths maps Bulgarian month abbreviations to month numbers.
var bulgarianMonths = map[string]time.Month{
	"ЯНУ": time.January,
	"ФЕВ": time.February,
	"МАР": time.March,
	"АПР": time.April,
	"МАЙ": time.May,
	"ЮНИ": time.June,
	"ЮЛИ": time.July,
	"АВГ": time.August,
	"СЕП": time.September,
	"ОКТ": time.October,
	"НОЕ": time.November,
	"ДЕК": time.December,
}

// ParseMonth converts a Bulgarian month abbreviation to a month number.
// Unknown abbreviations fall back to January rather than failing the parse.
func ParseMonth(month string) time.Month {
	if m, ok := bulgarianMonths[strings.ToUpper(strings.TrimSpace(month))]; ok {
		return m
	}
	return time.January
}

// ParseBulgarianDate parses the long statement notation: numeric day,
// Bulgarian month abbreviation, four-digit year.
func ParseBulgarianDate(day, month, year string) (models.Date, error) {
	d, err := strconv.Atoi(day)
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid day %q: %w", day, err)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid year %q: %w", year, err)
	}
	return models.NewDate(y, ParseMonth(month), d), nil
}

// ParsePostingDate parses the DD/MM/YY posting date column. The two-digit
// year is resolved into the 2000s.
func ParsePostingDate(s string) (models.Date, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return models.Date{}, fmt.Errorf("invalid posting date %q", s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid posting date %q: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid posting date %q: %w", s, err)
	}
	yy, err := strconv.Atoi(parts[2])
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid posting date %q: %w", s, err)
	}
	return models.NewDate(2000+yy, time.Month(month), day), nil
}

// ParseShortDate parses the DD/MM value date column. The notation carries no
// year, so the caller supplies one (the posting date's year).
func ParseShortDate(s string, year int) (models.Date, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return models.Date{}, fmt.Errorf("invalid value date %q", s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid value date %q: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid value date %q: %w", s, err)
	}
	return models.NewDate(year, time.Month(month), day), nil
}
