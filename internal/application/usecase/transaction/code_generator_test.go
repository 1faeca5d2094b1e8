package transaction

import (
	"testing"
	"time"

	"github.com/ledger-console/backend/internal/domain/entity"
)

func TestGenerateCode(t *testing.T) {
	jan2025 := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		transactionType entity.TransactionType
		date            time.Time
		existing        []string
		want            string
	}{
		{
			name:            "first income of the month",
			transactionType: entity.TransactionTypeIncome,
			date:            jan2025,
			existing:        nil,
			want:            "T0125_01",
		},
		{
			name:            "sequence continues within the same period",
			transactionType: entity.TransactionTypeIncome,
			date:            jan2025,
			existing:        []string{"T0125_01", "T0125_02"},
			want:            "T0125_03",
		},
		{
			name:            "other types do not advance the sequence",
			transactionType: entity.TransactionTypeExpense,
			date:            jan2025,
			existing:        []string{"T0125_01", "T0125_02", "V0125_01"},
			want:            "C0125_01",
		},
		{
			name:            "other months do not advance the sequence",
			transactionType: entity.TransactionTypeIncome,
			date:            jan2025,
			existing:        []string{"T1224_07", "T0225_01"},
			want:            "T0125_01",
		},
		{
			name:            "loan prefix",
			transactionType: entity.TransactionTypeLoan,
			date:            time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			existing:        []string{"V1225_01"},
			want:            "V1225_02",
		},
		{
			name:            "back-dated entry uses its own period",
			transactionType: entity.TransactionTypeExpense,
			date:            time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
			existing:        []string{"C0125_01"},
			want:            "C0324_01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCode(tt.transactionType, tt.date, tt.existing)
			if got != tt.want {
				t.Errorf("GenerateCode() = %q, want %q", got, tt.want)
			}
			if !CodePattern.MatchString(got) {
				t.Errorf("GenerateCode() = %q does not match the code pattern", got)
			}
		})
	}
}

func TestGenerateCodeDeterministic(t *testing.T) {
	date := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	existing := []string{"T0625_01", "T0625_02", "C0625_01"}

	first := GenerateCode(entity.TransactionTypeIncome, date, existing)
	second := GenerateCode(entity.TransactionTypeIncome, date, existing)
	if first != second {
		t.Errorf("GenerateCode() not deterministic: %q vs %q", first, second)
	}
}
