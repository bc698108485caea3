package ubbparser

import (
	"testing"

	"github.com/djok/ubb-statement-extractor/internal/models"
	"github.com/djok/ubb-statement-extractor/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statementFixture returns the page texts of a small but complete statement:
// header page with one incoming transfer, a second page with a card
// transaction, the summary page, and a trailing currency-conversion notice.
func statementFixture() []string {
	page1 := `ОББ Извлечение по сметка
Титуляр на сметката 123456 АЛФА ТРЕЙД ЕООД 2026
Адрес УЛ. ВИТОША 15
СОФИЯ 1000
IBAN: BG41UBBS80021033562740
Валута EUR
Период на извлечението: ОТ 01 ЯНУ 2026 ДО 31 ЯНУ 2026
Пореден номер / Дата: 1 / 31 ЯНУ 2026
Начално салдо: 1,000.00 EUR / 1,955.83 BGN
Счет. Дата Вальор Описание Сума
05/01/26 05/01 933TATB260050006 СЕПА ПОЛУЧЕН ПРЕВОД
АЛФА ИМПОРТ ЕООД
UBBSBGSF BG80UBBS80021044523311
ОТ БАНКА: УНИКРЕДИТ БУЛБАНК
200.00 EUR / 391.17 BGN`

	page2 := `ОББ Извлечение по сметка
06/01/26 06/01 933TATB260060011 КАРТОВА ТРАНЗАКЦИЯ -50.00 EUR / -97.79 BGN
КАРТОВА ТРАНЗАКЦИЯ
PO123456
KAUFLAND 1100-SOFIA-BG
Междинно салдо: 1,150.00 EUR / 2,249.21 BGN
Страница 2 от 4`

	page3 := `Крайно салдо: 1,150.00 EUR / 2,249.21 BGN
Обороти: Натрупани обороти:
Дебит: 50.00 EUR / 97.79 BGN Дебит: 450.00 EUR / 880.12 BGN
Кредит: 200.00 EUR / 391.17 BGN Кредит: 1,200.00 EUR / 2,347.00 BGN`

	page4 := `Уведомление за превалутиране
Курс EUR/BGN 1.95583`

	return []string{page1, page2, page3, page4}
}

func TestParseNoPages(t *testing.T) {
	_, err := New(nil).Parse()
	assert.Error(t, err)
}

func TestParseFullStatement(t *testing.T) {
	statement, err := New(statementFixture()).Parse()
	require.NoError(t, err)

	info := statement.Statement
	assert.Equal(t, "UBB", info.Bank)
	assert.Equal(t, "123456", info.AccountHolder.Code)
	assert.Equal(t, "АЛФА ТРЕЙД ЕООД", info.AccountHolder.Name)
	assert.Equal(t, "УЛ. ВИТОША 15 СОФИЯ 1000", info.AccountHolder.Address)
	assert.Equal(t, "BG41UBBS80021033562740", info.IBAN)
	assert.Equal(t, "EUR", info.Currency)
	assert.Equal(t, "2026-01-01", info.Period.FromDate.ISO())
	assert.Equal(t, "2026-01-31", info.Period.ToDate.ISO())
	assert.Equal(t, 1, info.StatementNumber)
	assert.Equal(t, "2026-01-31", info.StatementDate.ISO())

	assert.Equal(t, "1000", info.OpeningBalance.EUR.String())
	assert.Equal(t, "1955.83", info.OpeningBalance.BGN.String())
	assert.Equal(t, "1150", info.ClosingBalance.EUR.String())
	assert.Equal(t, "2249.21", info.ClosingBalance.BGN.String())

	assert.Equal(t, "50", info.Turnover.Debit.EUR.String())
	assert.Equal(t, "391.17", info.Turnover.Credit.BGN.String())
	assert.Equal(t, "450", info.AccumulatedTurnover.Debit.EUR.String())
	assert.Equal(t, "1200", info.AccumulatedTurnover.Credit.EUR.String())

	require.Len(t, statement.Transactions, 2)

	incoming := statement.Transactions[0]
	assert.Equal(t, "933TATB260050006", incoming.Reference)
	assert.Equal(t, models.TypeSEPAIncoming, incoming.Type)
	assert.Equal(t, "СЕПА ПОЛУЧЕН ПРЕВОД", incoming.Description)
	assert.False(t, incoming.IsDebit)
	assert.Equal(t, "2026-01-05", incoming.PostingDate.ISO())
	assert.Equal(t, "2026-01-05", incoming.ValueDate.ISO())
	require.NotNil(t, incoming.Counterparty)
	require.NotNil(t, incoming.Counterparty.Name)
	assert.Equal(t, "АЛФА ИМПОРТ ЕООД", *incoming.Counterparty.Name)
	require.NotNil(t, incoming.Counterparty.IBAN)
	assert.Equal(t, "BG80UBBS80021044523311", *incoming.Counterparty.IBAN)
	require.NotNil(t, incoming.Counterparty.Bank)
	assert.Equal(t, "УНИКРЕДИТ БУЛБАНК", *incoming.Counterparty.Bank)

	card := statement.Transactions[1]
	assert.Equal(t, models.TypeCardTransaction, card.Type)
	assert.True(t, card.IsDebit)
	assert.Equal(t, "50", card.Amount.EUR.String())
	assert.Equal(t, "97.79", card.Amount.BGN.String())
	require.NotNil(t, card.Counterparty)
	require.NotNil(t, card.Counterparty.Name)
	assert.Equal(t, "KAUFLAND 1100-SOFIA-BG", *card.Counterparty.Name)

	result := validation.ValidateBalance(statement)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestParseIsIdempotent(t *testing.T) {
	pages := statementFixture()

	first, err := New(pages).Parse()
	require.NoError(t, err)
	second, err := New(pages).Parse()
	require.NoError(t, err)

	firstJSON, err := first.ToJSON(2)
	require.NoError(t, err)
	secondJSON, err := second.ToJSON(2)
	require.NoError(t, err)

	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestParseMissingHeaderFieldsUsesDefaults(t *testing.T) {
	statement, err := New([]string{"страница без никакви полета"}).Parse()
	require.NoError(t, err)

	info := statement.Statement
	assert.Equal(t, "", info.IBAN)
	assert.Equal(t, "EUR", info.Currency)
	assert.Equal(t, 0, info.StatementNumber)
	assert.True(t, info.OpeningBalance.EUR.IsZero())
	assert.True(t, info.ClosingBalance.BGN.IsZero())
	assert.Empty(t, statement.Transactions)
}
