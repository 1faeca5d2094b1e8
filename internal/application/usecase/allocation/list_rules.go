// Package allocation contains the indirect cost allocation engine.
package allocation

import (
	"github.com/ledger-console/backend/internal/domain/entity"
)

// RuleOutput represents one allocation rule in the output.
type RuleOutput struct {
	Name  string
	Lines []entity.AllocationRuleLine
}

// ListRulesOutput represents the output of listing allocation rules.
type ListRulesOutput struct {
	Rules []RuleOutput
}

// ListRulesUseCase exposes the allocation rule table read-only.
type ListRulesUseCase struct {
	ruleTable *entity.AllocationRuleTable
}

// NewListRulesUseCase creates a new ListRulesUseCase instance.
func NewListRulesUseCase(ruleTable *entity.AllocationRuleTable) *ListRulesUseCase {
	return &ListRulesUseCase{ruleTable: ruleTable}
}

// Execute returns all configured allocation rules.
func (uc *ListRulesUseCase) Execute() *ListRulesOutput {
	rules := uc.ruleTable.Rules()

	output := &ListRulesOutput{
		Rules: make([]RuleOutput, len(rules)),
	}
	for i, rule := range rules {
		output.Rules[i] = RuleOutput{
			Name:  rule.Name,
			Lines: rule.Lines,
		}
	}
	return output
}
