// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/ledger-console/backend/internal/application/usecase/allocation"
)

// PreviewAllocationRequest represents the request body for an allocation preview.
type PreviewAllocationRequest struct {
	Amount int64  `json:"amount" binding:"required"`
	Rule   string `json:"rule" binding:"required"`
}

// PreviewAllocationResponse represents a computed allocation preview.
type PreviewAllocationResponse struct {
	Rule   string                   `json:"rule"`
	Amount int64                    `json:"amount"`
	Lines  []AllocationLineResponse `json:"lines"`
}

// AllocationRuleLineResponse represents one percentage split of a rule.
type AllocationRuleLineResponse struct {
	BusinessUnit string  `json:"business_unit"`
	Percentage   float64 `json:"percentage"`
}

// AllocationRuleResponse represents one allocation rule in API responses.
type AllocationRuleResponse struct {
	Name  string                       `json:"name"`
	Lines []AllocationRuleLineResponse `json:"lines"`
}

// AllocationRuleListResponse represents the response for listing allocation rules.
type AllocationRuleListResponse struct {
	Rules []AllocationRuleResponse `json:"rules"`
}

// ToPreviewAllocationResponse converts a preview output to its DTO.
func ToPreviewAllocationResponse(output *allocation.PreviewOutput) PreviewAllocationResponse {
	return PreviewAllocationResponse{
		Rule:   output.RuleName,
		Amount: output.Amount,
		Lines:  ToAllocationLineResponses(output.Lines),
	}
}

// ToAllocationRuleListResponse converts the rule list output to its DTO.
func ToAllocationRuleListResponse(output *allocation.ListRulesOutput) AllocationRuleListResponse {
	rules := make([]AllocationRuleResponse, len(output.Rules))
	for i, rule := range output.Rules {
		lines := make([]AllocationRuleLineResponse, len(rule.Lines))
		for j, line := range rule.Lines {
			lines[j] = AllocationRuleLineResponse{
				BusinessUnit: line.BusinessUnit,
				Percentage:   line.Percentage.InexactFloat64(),
			}
		}
		rules[i] = AllocationRuleResponse{
			Name:  rule.Name,
			Lines: lines,
		}
	}
	return AllocationRuleListResponse{
		Rules: rules,
	}
}
