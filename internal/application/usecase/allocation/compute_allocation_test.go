package allocation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ledger-console/backend/internal/domain/entity"
	domainerror "github.com/ledger-console/backend/internal/domain/error"
)

func TestCompute(t *testing.T) {
	table := entity.NewAllocationRuleTable(entity.DefaultAllocationRules())

	t.Run("lines always sum exactly to the amount", func(t *testing.T) {
		amounts := []int64{1, 2, 3, 10, 99, 100, 101, 999_999, 1_000_000, 10_000_001, 333_333_333}

		for _, rule := range table.Rules() {
			for _, amount := range amounts {
				lines, err := Compute(amount, rule.Name, table)
				if err != nil {
					t.Fatalf("Compute(%d, %q) error = %v", amount, rule.Name, err)
				}
				if len(lines) != len(rule.Lines) {
					t.Fatalf("Compute(%d, %q) produced %d lines, want %d", amount, rule.Name, len(lines), len(rule.Lines))
				}

				var sum int64
				for _, line := range lines {
					sum += line.Amount
				}
				if sum != amount {
					t.Errorf("Compute(%d, %q) lines sum to %d", amount, rule.Name, sum)
				}
			}
		}
	})

	t.Run("rounds half up per line", func(t *testing.T) {
		// 50/30/20 of 99: raw lines are 49.5, 29.7, 19.8. Half-up gives 50
		// and 30; the last line absorbs the drift down to 19.
		lines, err := Compute(99, "headcount", table)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}

		want := []int64{50, 30, 19}
		for i, line := range lines {
			if line.Amount != want[i] {
				t.Errorf("line %d = %d, want %d", i, line.Amount, want[i])
			}
		}
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		first, err := Compute(10_000_001, "even-3bu", table)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		second, err := Compute(10_000_001, "even-3bu", table)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}

		for i := range first {
			if first[i].Amount != second[i].Amount || first[i].BusinessUnit != second[i].BusinessUnit {
				t.Errorf("line %d differs between runs: %+v vs %+v", i, first[i], second[i])
			}
		}
	})

	t.Run("preserves the rule's line order and percentages", func(t *testing.T) {
		rule, ok := table.Lookup("headcount")
		if !ok {
			t.Fatal("headcount rule missing from default table")
		}

		lines, err := Compute(1_000_000, "headcount", table)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		for i, line := range lines {
			if line.BusinessUnit != rule.Lines[i].BusinessUnit {
				t.Errorf("line %d unit = %q, want %q", i, line.BusinessUnit, rule.Lines[i].BusinessUnit)
			}
			if !line.Percentage.Equal(rule.Lines[i].Percentage) {
				t.Errorf("line %d percentage = %s, want %s", i, line.Percentage, rule.Lines[i].Percentage)
			}
		}
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := Compute(100, "no-such-rule", table)
		if !errors.Is(err, domainerror.ErrUnknownAllocationRule) {
			t.Errorf("Compute() error = %v, want %v", err, domainerror.ErrUnknownAllocationRule)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		for _, amount := range []int64{0, -1} {
			_, err := Compute(amount, "headcount", table)
			if !errors.Is(err, domainerror.ErrInvalidAllocationAmount) {
				t.Errorf("Compute(%d) error = %v, want %v", amount, err, domainerror.ErrInvalidAllocationAmount)
			}
		}
	})
}

func TestComputeSingleLineRule(t *testing.T) {
	table := entity.NewAllocationRuleTable([]entity.AllocationRule{
		{
			Name: "all-north",
			Lines: []entity.AllocationRuleLine{
				{BusinessUnit: "BU-North", Percentage: decimal.NewFromInt(100)},
			},
		},
	})

	lines, err := Compute(777, "all-north", table)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(lines) != 1 || lines[0].Amount != 777 {
		t.Errorf("lines = %+v, want one line carrying the full amount", lines)
	}
}

func TestPreviewAllocationUseCase(t *testing.T) {
	uc := NewPreviewAllocationUseCase(entity.NewAllocationRuleTable(entity.DefaultAllocationRules()))

	out, err := uc.Execute(PreviewInput{Amount: 1_000_000, RuleName: "even-3bu"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.RuleName != "even-3bu" || out.Amount != 1_000_000 {
		t.Errorf("output header = %+v", out)
	}

	var sum int64
	for _, line := range out.Lines {
		sum += line.Amount
	}
	if sum != 1_000_000 {
		t.Errorf("preview lines sum to %d, want 1000000", sum)
	}
}
