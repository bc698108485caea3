package models

import (
	"fmt"
	"time"
)

// DateLayoutISO is the wire format for all dates in the JSON contract.
const DateLayoutISO = "2006-01-02"

// Date is a calendar date without a time component. It marshals to and from
// ISO YYYY-MM-DD strings.
type Date struct {
	time.Time
}

// NewDate creates a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date. Used as the fallback for header
// fields that fail to match.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayoutISO) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date value: %s", s)
	}
	t, err := time.Parse(DateLayoutISO, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("invalid date value %s: %w", s, err)
	}
	d.Time = t
	return nil
}

// ISO returns the date formatted as YYYY-MM-DD.
func (d Date) ISO() string {
	return d.Format(DateLayoutISO)
}

// Equal reports whether two dates refer to the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month() && d.Day() == other.Day()
}
