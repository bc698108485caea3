// Package currencyutils parses the locale-formatted amounts found in UBB
// statements into exact decimal values.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses an amount string in the statement's fixed layout:
// comma as thousands separator, dot as decimal separator, optional leading
// minus ("1,234.56", "-97.79"). An empty string parses to zero.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, nil
	}

	cleaned := StandardizeAmount(amountStr)
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount strips the thousands separators and whitespace so the
// result can be handed to decimal.NewFromString.
func StandardizeAmount(amountStr string) string {
	amountStr = strings.ReplaceAll(amountStr, ",", "")
	amountStr = strings.ReplaceAll(amountStr, " ", "")
	return amountStr
}

// MustParse parses an amount and panics on failure. Only for use with
// literals in tests and defaults.
func MustParse(amountStr string) decimal.Decimal {
	d, err := ParseAmount(amountStr)
	if err != nil {
		panic(err)
	}
	return d
}
