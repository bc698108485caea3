package ubbparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/djok/ubb-statement-extractor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPriority(t *testing.T) {
	e := New(nil)

	tests := []struct {
		name        string
		description string
		expected    models.TransactionType
	}{
		{"sepa incoming", "933TATB260060011 СЕПА ПОЛУЧЕН ПРЕВОД", models.TypeSEPAIncoming},
		{"sepa outgoing beats transfer", "ИЗХОДЯЩ ВАЛУТЕН ПРЕВОД КЪМ ДОСТАВЧИК", models.TypeSEPAOutgoing},
		{"outgoing short form", "ИЗХОДЯЩ ПРЕВОД БИСЕРА", models.TypeSEPAOutgoing},
		{"card transaction", "КАРТОВА ТРАНЗАКЦИЯ KAUFLAND 1100-SOFIA-BG", models.TypeCardTransaction},
		{"collected fee beats generic fee", "СЪБРАНА ТАКСА ИЛИ КОМИСИОНА ЗА ПРЕВОД", models.TypeFee},
		{"transfer fee", "ТАКСА ИЗХ. ПРЕВОД СЕПА", models.TypeTransferFee},
		{"generic fee", "ТАКСА ОБСЛУЖВАНЕ НА СМЕТКА", models.TypeTransferFee},
		{"plain transfer", "ПРЕВОД МЕЖДУ СОБСТВЕНИ СМЕТКИ", models.TypeInternalTransfer},
		{"currency sale", "ПРОДАЖБА НА ВАЛУТА", models.TypeCurrencyExchange},
		{"currency purchase", "ПОКУПКА НА ВАЛУТА", models.TypeCurrencyExchange},
		{"case insensitive", "сепа получен превод", models.TypeSEPAIncoming},
		{"no keyword", "НЯКАКВО НЕПОЗНАТО ОПИСАНИЕ", models.TypeUnknown},
		{"empty description", "", models.TypeUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, e.classify(tc.description))
		})
	}
}

func TestLoadTypeRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")

	content := `- type: CARD_TRANSACTION
  keywords: ["КАРТОВА"]
- type: UNKNOWN
  keywords: ["ПРЕВОД"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	rules, err := LoadTypeRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, models.TypeCardTransaction, rules[0].Type)
	assert.Equal(t, []string{"КАРТОВА"}, rules[0].Keywords)

	// A custom rule set replaces the built-in one wholesale, including order.
	e := NewWithRules(nil, rules)
	assert.Equal(t, models.TypeCardTransaction, e.classify("КАРТОВА ТРАНЗАКЦИЯ"))
	assert.Equal(t, models.TypeUnknown, e.classify("СЕПА ПОЛУЧЕН ПРЕВОД"))
}

func TestLoadTypeRulesMissingFile(t *testing.T) {
	_, err := LoadTypeRules(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading type rules file")
}

func TestLoadTypeRulesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("[]\n"), 0600))

	_, err := LoadTypeRules(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contains no rules")
}
