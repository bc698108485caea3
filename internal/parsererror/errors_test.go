package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorWrapsCause(t *testing.T) {
	cause := errors.New("invalid syntax")
	err := &ParseError{Parser: "ubbparser", Field: "posting_date", Value: "aa/01/26", Err: cause}

	assert.Equal(t, "ubbparser: failed to parse posting_date='aa/01/26': invalid syntax", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestExtractionError(t *testing.T) {
	err := &ExtractionError{Field: "opening_balance", Reason: "pattern did not match"}
	assert.Equal(t, "extraction failed for field 'opening_balance': pattern did not match", err.Error())
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{IBAN: "BG41UBBS80021012345678", Reason: "EUR balance mismatch"}
	assert.Equal(t, "validation failed for statement BG41UBBS80021012345678: EUR balance mismatch", err.Error())
}
