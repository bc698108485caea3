package ubbparser

import (
	"testing"

	"github.com/djok/ubb-statement-extractor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segment(t *testing.T, pages ...string) (*Extractor, []models.Transaction) {
	t.Helper()
	e := New(pages)
	return e, e.segmentTransactions()
}

func TestSegmenterMultiLineDescription(t *testing.T) {
	// Three physical description lines before the amount appears.
	page := `06/01/26 06/01 REF123 ИЗХОДЯЩ ВАЛУТЕН ПРЕВОД
ДОСТАВЧИК ООД
Ф. 2400003707 19.12.2025
-75.50 EUR / -147.66 BGN`

	_, txs := segment(t, page)
	require.Len(t, txs, 1)

	tx := txs[0]
	assert.Contains(t, tx.RawDescription, "ИЗХОДЯЩ ВАЛУТЕН ПРЕВОД")
	assert.Contains(t, tx.RawDescription, "ДОСТАВЧИК ООД")
	assert.Contains(t, tx.RawDescription, "Ф. 2400003707 19.12.2025")
	assert.Equal(t, "REF123", tx.Reference)
	assert.Equal(t, "ИЗХОДЯЩ ВАЛУТЕН ПРЕВОД", tx.Description)
	assert.Equal(t, models.TypeSEPAOutgoing, tx.Type)
	assert.True(t, tx.IsDebit)
	assert.Equal(t, "75.5", tx.Amount.EUR.String())
	assert.Equal(t, "147.66", tx.Amount.BGN.String())

	require.NotNil(t, tx.Counterparty)
	require.NotNil(t, tx.Counterparty.Name)
	assert.Equal(t, "ДОСТАВЧИК ООД", *tx.Counterparty.Name)
	require.NotNil(t, tx.Counterparty.Reference)
	assert.Equal(t, "Ф. 2400003707 19.12.2025", *tx.Counterparty.Reference)
}

func TestSegmenterAmountOnStartLine(t *testing.T) {
	// The start line already carries the amount: the transaction closes on
	// that line and the following lines become trailing counterparty lines.
	page := `05/01/26 05/01 REF1 КАРТОВА ТРАНЗАКЦИЯ -20.00 EUR / -39.12 BGN
КАРТОВА ТРАНЗАКЦИЯ
MERCHANT-CITY-BG
07/01/26 07/01 REF2 ПРЕВОД 10.00 EUR / 19.56 BGN`

	_, txs := segment(t, page)
	require.Len(t, txs, 2)

	first := txs[0]
	assert.Equal(t, "REF1", first.Reference)
	assert.Equal(t, "КАРТОВА ТРАНЗАКЦИЯ", first.Description)
	assert.True(t, first.IsDebit)
	require.NotNil(t, first.Counterparty)
	require.NotNil(t, first.Counterparty.Name)
	assert.Equal(t, "MERCHANT-CITY-BG", *first.Counterparty.Name)

	second := txs[1]
	assert.Equal(t, "REF2", second.Reference)
	assert.False(t, second.IsDebit)
}

func TestSegmenterDropsCandidateWithoutAmount(t *testing.T) {
	page := `07/01/26 07/01 REFX НЕПЪЛНА ТРАНЗАКЦИЯ
НЯКАКВО ОПИСАНИЕ
08/01/26 08/01 REFY ПРЕВОД 10.00 EUR / 19.56 BGN`

	e, txs := segment(t, page)
	require.Len(t, txs, 1)
	assert.Equal(t, "REFY", txs[0].Reference)
	assert.Equal(t, 1, e.DroppedCandidates())
}

func TestSegmenterDropsTrailingCandidateAtEndOfPage(t *testing.T) {
	page := `07/01/26 07/01 REFX НЕПЪЛНА ТРАНЗАКЦИЯ
НЯКАКВО ОПИСАНИЕ`

	e, txs := segment(t, page)
	assert.Empty(t, txs)
	assert.Equal(t, 1, e.DroppedCandidates())
}

func TestSegmenterFiltersBoilerplate(t *testing.T) {
	page := `06/01/26 06/01 REF123 ПРЕВОД
Междинно салдо: 1,000.00 EUR / 1,955.83 BGN не трябва да влиза
Страница 2 от 3
ОББ Извлечение по сметка
ПОЛУЧАТЕЛ ЕООД
-5.00 EUR / -9.78 BGN`

	_, txs := segment(t, page)
	require.Len(t, txs, 1)

	tx := txs[0]
	assert.NotContains(t, tx.RawDescription, "Междинно салдо")
	assert.NotContains(t, tx.RawDescription, "Страница")
	assert.NotContains(t, tx.RawDescription, "Извлечение")
	assert.Contains(t, tx.RawDescription, "ПОЛУЧАТЕЛ ЕООД")
}

func TestSegmenterValueDateYearFromPostingDate(t *testing.T) {
	page := `05/03/26 05/03 REF1 ПРЕВОД 10.00 EUR / 19.56 BGN`

	_, txs := segment(t, page)
	require.Len(t, txs, 1)
	assert.Equal(t, "2026-03-05", txs[0].PostingDate.ISO())
	assert.Equal(t, "2026-03-05", txs[0].ValueDate.ISO())
}

func TestSplitReference(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		expectedRef  string
		expectedDesc string
	}{
		{"reference and description", "REF123 СЕПА ПОЛУЧЕН ПРЕВОД", "REF123", "СЕПА ПОЛУЧЕН ПРЕВОД"},
		{"single token", "REF123", "REF123", ""},
		{"multiple spaces", "REF123   ОПИСАНИЕ ТУК", "REF123", "ОПИСАНИЕ ТУК"},
		{"empty line", "", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ref, desc := splitReference(tc.line)
			assert.Equal(t, tc.expectedRef, ref)
			assert.Equal(t, tc.expectedDesc, desc)
		})
	}
}
