// Package transaction contains transaction-related use cases.
package transaction

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ledger-console/backend/internal/domain/entity"
)

// codePrefixes maps a transaction type to its code letter.
var codePrefixes = map[entity.TransactionType]string{
	entity.TransactionTypeIncome:  "T",
	entity.TransactionTypeExpense: "C",
	entity.TransactionTypeLoan:    "V",
}

// CodePattern is the fixed transaction code format: letter prefix, 2-digit
// month, 2-digit year, underscore, 2-digit sequence (e.g. "T0125_01").
var CodePattern = regexp.MustCompile(`^[TCV]\d{2}\d{2}_\d{2}$`)

// GenerateCode derives a transaction code from the type, the transaction's own
// date (not the current date, so back-dated entries get the code of their
// period) and the set of existing codes.
//
// The sequence is the count of existing codes sharing the derived
// prefix+month+year, plus one, zero-padded to two digits. The count is taken
// against the caller's current snapshot; two concurrent sessions may derive
// the same sequence, in which case the store's unique index on the code is the
// source of truth and the second write fails.
func GenerateCode(transactionType entity.TransactionType, date time.Time, existingCodes []string) string {
	prefix := codePrefixes[transactionType]
	period := fmt.Sprintf("%s%02d%02d", prefix, int(date.Month()), date.Year()%100)

	sequence := 1
	for _, code := range existingCodes {
		if strings.HasPrefix(code, period+"_") {
			sequence++
		}
	}

	return fmt.Sprintf("%s_%02d", period, sequence)
}

// codesOf extracts the code column from a transaction set.
func codesOf(transactions []*entity.Transaction) []string {
	codes := make([]string, len(transactions))
	for i, t := range transactions {
		codes[i] = t.Code
	}
	return codes
}
