// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/ledger-console/backend/internal/domain/entity"
	"github.com/ledger-console/backend/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Search         string
	BusinessUnit   string
	ApprovalStatus valueobject.ApprovalStatus
	Type           entity.TransactionType
	DatePreset     RangePreset
	CustomStart    *time.Time
	CustomEnd      *time.Time
	SortField      SortField
	SortOrder      SortOrder
	Page           int
	PageSize       int
}

// ListTransactionsOutput represents one page of transactions plus the KPI
// figures over the whole filtered set.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Page         int
	PageSize     int
	Total        int
	TotalPages   int
	KPI          KPITotals
}

// ListTransactionsUseCase handles the transaction list view: filter, sort,
// paginate and the headline totals.
type ListTransactionsUseCase struct {
	snapshot *Snapshot
	now      func() time.Time
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(snapshot *Snapshot) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		snapshot: snapshot,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Execute runs the read pipeline over the current snapshot. The KPI totals are
// computed over the full filtered set, not just the returned page, so the
// figures do not change while paging.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.snapshot.Transactions(ctx)
	if err != nil {
		return nil, err
	}

	criteria := FilterCriteria{
		Search:         input.Search,
		BusinessUnit:   input.BusinessUnit,
		ApprovalStatus: input.ApprovalStatus,
		Type:           input.Type,
		DateRange:      ResolveDateRange(input.DatePreset, uc.now(), input.CustomStart, input.CustomEnd),
	}

	filtered := Filter(transactions, criteria)
	sorted := Sort(filtered, SortSpec{Field: input.SortField, Order: input.SortOrder})
	page := Paginate(sorted, input.Page, input.PageSize)

	items := make([]*TransactionOutput, len(page.Items))
	for i, t := range page.Items {
		items[i] = newTransactionOutput(t)
	}

	return &ListTransactionsOutput{
		Transactions: items,
		Page:         page.Page,
		PageSize:     page.PageSize,
		Total:        page.Total,
		TotalPages:   page.TotalPages,
		KPI:          ComputeKPI(filtered),
	}, nil
}
