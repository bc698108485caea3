package models

// TransactionType classifies a statement entry by its description keywords.
type TransactionType string

const (
	TypeSEPAIncoming     TransactionType = "SEPA_INCOMING"
	TypeSEPAOutgoing     TransactionType = "SEPA_OUTGOING"
	TypeCardTransaction  TransactionType = "CARD_TRANSACTION"
	TypeFee              TransactionType = "FEE"
	TypeTransferFee      TransactionType = "TRANSFER_FEE"
	TypeInternalTransfer TransactionType = "INTERNAL_TRANSFER"
	TypeCurrencyExchange TransactionType = "CURRENCY_EXCHANGE"
	TypeUnknown          TransactionType = "UNKNOWN"
)

// Counterparty is the other party to a transaction, as far as it could be
// recovered from the free-text description lines. At least one field is
// populated; a transaction with no counterparty signal carries nil instead.
type Counterparty struct {
	Name      *string `json:"name"`
	Reference *string `json:"reference"`
	Bank      *string `json:"bank"`
	IBAN      *string `json:"iban"`
}

// IsEmpty reports whether no field was populated.
func (c *Counterparty) IsEmpty() bool {
	return c == nil || (c.Name == nil && c.Reference == nil && c.Bank == nil && c.IBAN == nil)
}

// Transaction is a single statement entry. Amount is always the absolute
// value; the direction lives in IsDebit. ValueDate's year derives from
// PostingDate's year because the short date notation carries no year.
type Transaction struct {
	PostingDate    Date            `json:"posting_date"`
	ValueDate      Date            `json:"value_date"`
	Reference      string          `json:"reference"`
	Type           TransactionType `json:"type"`
	Description    string          `json:"description"`
	RawDescription string          `json:"raw_description"`
	Counterparty   *Counterparty   `json:"counterparty"`
	Amount         Balance         `json:"amount"`
	IsDebit        bool            `json:"is_debit"`
}
