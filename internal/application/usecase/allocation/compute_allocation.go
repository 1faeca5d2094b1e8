// Package allocation contains the indirect cost allocation engine.
package allocation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

// hundred is the percentage base for allocation rules.
var hundred = decimal.NewFromInt(100)

// Compute splits amount across the business units of the named rule.
//
// Each line amount is amount * percentage / 100, rounded half-up to whole VND.
// The final line absorbs rounding drift so the line amounts always sum exactly
// to amount. The result is a pure function of (amount, ruleName): identical
// inputs produce identical output, and no state is retained between calls.
func Compute(amount int64, ruleName string, table *entity.AllocationRuleTable) ([]entity.AllocationLine, error) {
	if amount <= 0 {
		return nil, domainerror.NewAllocationError(
			domainerror.ErrCodeInvalidAllocationAmount,
			"allocation amount must be greater than zero",
			domainerror.ErrInvalidAllocationAmount,
		)
	}

	rule, ok := table.Lookup(ruleName)
	if !ok {
		return nil, domainerror.NewAllocationError(
			domainerror.ErrCodeUnknownAllocationRule,
			fmt.Sprintf("allocation rule %q not found", ruleName),
			domainerror.ErrUnknownAllocationRule,
		)
	}

	total := decimal.NewFromInt(amount)
	lines := make([]entity.AllocationLine, len(rule.Lines))

	var allocated int64
	for i, ruleLine := range rule.Lines {
		lineAmount := total.Mul(ruleLine.Percentage).Div(hundred).Round(0).IntPart()

		if i == len(rule.Lines)-1 {
			// Last line absorbs rounding drift so the sum is exact.
			lineAmount = amount - allocated
		}
		allocated += lineAmount

		lines[i] = entity.AllocationLine{
			BusinessUnit: ruleLine.BusinessUnit,
			Percentage:   ruleLine.Percentage,
			Amount:       lineAmount,
		}
	}

	return lines, nil
}

// PreviewInput represents the input for an allocation preview.
type PreviewInput struct {
	Amount   int64
	RuleName string
}

// PreviewOutput represents a computed allocation preview.
type PreviewOutput struct {
	RuleName string
	Amount   int64
	Lines    []entity.AllocationLine
}

// PreviewAllocationUseCase computes allocation previews for the transaction form.
type PreviewAllocationUseCase struct {
	ruleTable *entity.AllocationRuleTable
}

// NewPreviewAllocationUseCase creates a new PreviewAllocationUseCase instance.
func NewPreviewAllocationUseCase(ruleTable *entity.AllocationRuleTable) *PreviewAllocationUseCase {
	return &PreviewAllocationUseCase{ruleTable: ruleTable}
}

// Execute computes the allocation preview for the given amount and rule.
func (uc *PreviewAllocationUseCase) Execute(input PreviewInput) (*PreviewOutput, error) {
	lines, err := Compute(input.Amount, input.RuleName, uc.ruleTable)
	if err != nil {
		return nil, err
	}

	return &PreviewOutput{
		RuleName: input.RuleName,
		Amount:   input.Amount,
		Lines:    lines,
	}, nil
}
