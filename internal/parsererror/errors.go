// Package parsererror defines the typed errors surfaced by the statement
// extraction engine.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrNoPages is returned when a parse is attempted with no page text at all.
// This is the only unrecoverable input condition; missing fields inside the
// pages degrade to defaults instead of failing.
var ErrNoPages = errors.New("no page text supplied")

// ParseError represents a failure to parse a specific field value.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExtractionError represents a header or footer field that did not match and
// was filled with its sentinel default. It is reported for diagnostics, not
// raised: the parse continues and validation surfaces any resulting skew.
type ExtractionError struct {
	Field  string
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed for field '%s': %s", e.Field, e.Reason)
}

// ValidationError represents a statement whose reported balances could not be
// reconciled with its transactions.
type ValidationError struct {
	IBAN   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for statement %s: %s", e.IBAN, e.Reason)
}
