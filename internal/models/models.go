// Package models defines the data structures produced by the statement
// extraction engine. All entities are built once per parse and treated as
// immutable afterwards; the JSON field names form a compatibility contract
// with downstream import collaborators and must not change.
package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Balance is an EUR/BGN amount pair. Standalone balances are non-negative;
// a transaction's sign lives in Transaction.IsDebit, not here.
// decimal.Decimal marshals as a quoted string, which keeps the JSON output
// decimal-precise for downstream reconciliation.
type Balance struct {
	EUR decimal.Decimal `json:"eur"`
	BGN decimal.Decimal `json:"bgn"`
}

// NewBalance creates a Balance from EUR and BGN amounts.
func NewBalance(eur, bgn decimal.Decimal) Balance {
	return Balance{EUR: eur, BGN: bgn}
}

// ZeroBalance returns a Balance with zero amounts in both currencies.
func ZeroBalance() Balance {
	return Balance{EUR: decimal.Zero, BGN: decimal.Zero}
}

// Abs returns the balance with both amounts as absolute values.
func (b Balance) Abs() Balance {
	return Balance{EUR: b.EUR.Abs(), BGN: b.BGN.Abs()}
}

// Add returns the per-currency sum of two balances.
func (b Balance) Add(other Balance) Balance {
	return Balance{EUR: b.EUR.Add(other.EUR), BGN: b.BGN.Add(other.BGN)}
}

// Sub returns the per-currency difference of two balances.
func (b Balance) Sub(other Balance) Balance {
	return Balance{EUR: b.EUR.Sub(other.EUR), BGN: b.BGN.Sub(other.BGN)}
}

// Equal reports whether both currency amounts are equal.
func (b Balance) Equal(other Balance) bool {
	return b.EUR.Equal(other.EUR) && b.BGN.Equal(other.BGN)
}

// Turnover is debit/credit activity over a period, as reported by the bank.
type Turnover struct {
	Debit  Balance `json:"debit"`
	Credit Balance `json:"credit"`
}

// ZeroTurnover returns a Turnover with zero balances on both sides.
func ZeroTurnover() Turnover {
	return Turnover{Debit: ZeroBalance(), Credit: ZeroBalance()}
}

// AccountHolder identifies the statement's account holder.
// Address is empty when the header block did not match.
type AccountHolder struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Period is the date range covered by a statement. FromDate's year is
// authoritative when resolving two-digit years elsewhere in the document.
// The JSON aliases "from"/"to" are part of the wire contract.
type Period struct {
	FromDate Date `json:"from"`
	ToDate   Date `json:"to"`
}

// StatementInfo carries the statement-level metadata and reported totals.
type StatementInfo struct {
	Bank                string        `json:"bank"`
	AccountHolder       AccountHolder `json:"account_holder"`
	IBAN                string        `json:"iban"`
	Currency            string        `json:"currency"`
	Period              Period        `json:"period"`
	StatementNumber     int           `json:"statement_number"`
	StatementDate       Date          `json:"statement_date"`
	OpeningBalance      Balance       `json:"opening_balance"`
	ClosingBalance      Balance       `json:"closing_balance"`
	Turnover            Turnover      `json:"turnover"`
	AccumulatedTurnover Turnover      `json:"accumulated_turnover"`
}

// BankStatement is a fully parsed statement: metadata plus the transactions
// in document order.
type BankStatement struct {
	Statement    StatementInfo `json:"statement"`
	Transactions []Transaction `json:"transactions"`
}

// ToJSON serializes the statement with the contract field names. The output
// is deterministic for identical input.
func (s *BankStatement) ToJSON(indent int) ([]byte, error) {
	if indent <= 0 {
		return json.Marshal(s)
	}
	prefix := ""
	pad := ""
	for i := 0; i < indent; i++ {
		pad += " "
	}
	return json.MarshalIndent(s, prefix, pad)
}
