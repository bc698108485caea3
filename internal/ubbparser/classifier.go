package ubbparser

import (
	"fmt"
	"os"
	"strings"

	"github.com/djok/ubb-statement-extractor/internal/models"

	"gopkg.in/yaml.v3"
)

// TypeRule maps description keywords to a transaction type. Rules are
// evaluated top to bottom with first-match-wins semantics: several
// categories share substrings (the generic transfer keyword is contained in
// the specific transfer keywords), so priority matters, not uniqueness.
type TypeRule struct {
	Type     models.TransactionType `yaml:"type"`
	Keywords []string               `yaml:"keywords"`
}

// defaultTypeRules is the built-in ordered rule set for UBB statement
// descriptions. The order is part of the contract.
var defaultTypeRules = []TypeRule{
	{Type: models.TypeSEPAIncoming, Keywords: []string{"СЕПА ПОЛУЧЕН"}},
	{Type: models.TypeSEPAOutgoing, Keywords: []string{"ИЗХОДЯЩ ВАЛУТЕН ПРЕВОД", "ИЗХОДЯЩ"}},
	{Type: models.TypeCardTransaction, Keywords: []string{"КАРТОВА ТРАНЗАКЦИЯ"}},
	{Type: models.TypeFee, Keywords: []string{"СЪБРАНА ТАКСА ИЛИ КОМИСИОНА"}},
	{Type: models.TypeTransferFee, Keywords: []string{"ТАКСА ИЗХ.", "ТАКСА"}},
	{Type: models.TypeInternalTransfer, Keywords: []string{"ПРЕВОД"}},
	{Type: models.TypeCurrencyExchange, Keywords: []string{"ПРОДАЖБА НА ВАЛУТА", "ПОКУПКА НА ВАЛУТА"}},
}

// classify maps a transaction's accumulated description to its type.
func (e *Extractor) classify(rawDescription string) models.TransactionType {
	descUpper := strings.ToUpper(rawDescription)

	for _, rule := range e.typeRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(descUpper, strings.ToUpper(keyword)) {
				return rule.Type
			}
		}
	}
	return models.TypeUnknown
}

// LoadTypeRules reads an ordered rule set from a YAML file. The file holds a
// plain list, so document order is preserved as rule priority:
//
//	- type: SEPA_INCOMING
//	  keywords: ["СЕПА ПОЛУЧЕН"]
func LoadTypeRules(path string) ([]TypeRule, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- rule file path comes from user config
	if err != nil {
		return nil, fmt.Errorf("error reading type rules file: %w", err)
	}

	var rules []TypeRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing type rules file '%s': %w", path, err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("type rules file '%s' contains no rules", path)
	}
	return rules, nil
}
