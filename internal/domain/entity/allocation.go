// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// AllocationRuleLine is one (business unit, percentage) pair of an allocation rule.
type AllocationRuleLine struct {
	BusinessUnit string
	Percentage   decimal.Decimal
}

// AllocationRule maps a rule name to an ordered list of business-unit percentages.
// Percentages in a rule sum to exactly 100; the engine performs no re-normalization.
type AllocationRule struct {
	Name  string
	Lines []AllocationRuleLine
}

// AllocationLine is one computed row of an allocation preview: the amount of a
// transaction attributed to a single business unit. Only the allocation engine
// produces these values; they are never hand-constructed by callers.
type AllocationLine struct {
	BusinessUnit string
	Percentage   decimal.Decimal
	Amount       int64
}

// AllocationRuleTable is the static mapping from rule name to rule. Reference
// configuration data: seeded at startup, read-only afterwards.
type AllocationRuleTable struct {
	rules map[string]AllocationRule
	order []string
}

// NewAllocationRuleTable builds a rule table from the given rules, preserving order.
func NewAllocationRuleTable(rules []AllocationRule) *AllocationRuleTable {
	table := &AllocationRuleTable{
		rules: make(map[string]AllocationRule, len(rules)),
		order: make([]string, 0, len(rules)),
	}
	for _, rule := range rules {
		if _, exists := table.rules[rule.Name]; exists {
			continue
		}
		table.rules[rule.Name] = rule
		table.order = append(table.order, rule.Name)
	}
	return table
}

// Lookup returns the rule with the given name.
func (t *AllocationRuleTable) Lookup(name string) (AllocationRule, bool) {
	rule, ok := t.rules[name]
	return rule, ok
}

// Rules returns all rules in their configured order.
func (t *AllocationRuleTable) Rules() []AllocationRule {
	rules := make([]AllocationRule, 0, len(t.order))
	for _, name := range t.order {
		rules = append(rules, t.rules[name])
	}
	return rules
}

// DefaultAllocationRules returns the built-in allocation rule table used when no
// custom configuration is provided. Business-unit names match the seeded
// business-unit reference data.
func DefaultAllocationRules() []AllocationRule {
	pct := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	return []AllocationRule{
		{
			Name: "even-3bu",
			Lines: []AllocationRuleLine{
				{BusinessUnit: "BU-North", Percentage: decimal.RequireFromString("33.34")},
				{BusinessUnit: "BU-Central", Percentage: decimal.RequireFromString("33.33")},
				{BusinessUnit: "BU-South", Percentage: decimal.RequireFromString("33.33")},
			},
		},
		{
			Name: "headcount",
			Lines: []AllocationRuleLine{
				{BusinessUnit: "BU-North", Percentage: pct(50)},
				{BusinessUnit: "BU-Central", Percentage: pct(30)},
				{BusinessUnit: "BU-South", Percentage: pct(20)},
			},
		},
		{
			Name: "revenue-weighted",
			Lines: []AllocationRuleLine{
				{BusinessUnit: "BU-North", Percentage: pct(45)},
				{BusinessUnit: "BU-Central", Percentage: pct(35)},
				{BusinessUnit: "BU-South", Percentage: pct(15)},
				{BusinessUnit: "BU-Online", Percentage: pct(5)},
			},
		},
	}
}
