// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"
)

// GetTransactionInput represents the input for fetching a single transaction.
type GetTransactionInput struct {
	TransactionID uuid.UUID
}

// GetTransactionOutput represents the output of fetching a single transaction.
type GetTransactionOutput struct {
	Transaction *TransactionOutput
}

// GetTransactionUseCase handles the transaction detail view.
type GetTransactionUseCase struct {
	snapshot *Snapshot
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(snapshot *Snapshot) *GetTransactionUseCase {
	return &GetTransactionUseCase{snapshot: snapshot}
}

// Execute returns the transaction with the given ID from the snapshot.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*GetTransactionOutput, error) {
	transaction, err := uc.snapshot.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}
	return &GetTransactionOutput{Transaction: newTransactionOutput(transaction)}, nil
}
