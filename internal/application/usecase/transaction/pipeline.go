// Package transaction contains transaction-related use cases.
package transaction

import (
	"sort"
	"strings"

	"github.com/ledger-console/backend/internal/domain/entity"
	"github.com/ledger-console/backend/internal/domain/valueobject"
)

// FilterCriteria describes which transactions to keep. Zero values mean "all".
type FilterCriteria struct {
	Search         string // case-insensitive substring over code, object name, category, project
	BusinessUnit   string
	ApprovalStatus valueobject.ApprovalStatus
	Type           entity.TransactionType
	DateRange      DateRange
}

// SortField selects the sort column.
type SortField string

const (
	SortFieldNone   SortField = ""
	SortFieldDate   SortField = "date"
	SortFieldCode   SortField = "code"
	SortFieldAmount SortField = "amount"
)

// SortOrder selects the sort direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// SortSpec describes the requested ordering. An empty Field leaves the set in
// insertion order.
type SortSpec struct {
	Field SortField
	Order SortOrder
}

// KPITotals are the headline figures over a filtered set. Only approved
// transactions contribute; loans additionally only while unpaid. Balance is
// income minus expense minus outstanding loans.
type KPITotals struct {
	TotalIncome  int64
	TotalExpense int64
	TotalLoan    int64
	Balance      int64
}

// Matches reports whether a single transaction satisfies the criteria.
func (c FilterCriteria) Matches(t *entity.Transaction) bool {
	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(t.Code), needle) &&
			!strings.Contains(strings.ToLower(t.ObjectName), needle) &&
			!strings.Contains(strings.ToLower(t.Category), needle) &&
			!strings.Contains(strings.ToLower(t.Project), needle) {
			return false
		}
	}
	if c.BusinessUnit != "" && t.BusinessUnit != c.BusinessUnit {
		return false
	}
	if c.ApprovalStatus != "" && t.ApprovalStatus != c.ApprovalStatus {
		return false
	}
	if c.Type != "" && t.Type != c.Type {
		return false
	}
	return c.DateRange.Contains(t.Date)
}

// Filter returns the transactions matching the criteria, preserving order.
func Filter(transactions []*entity.Transaction, criteria FilterCriteria) []*entity.Transaction {
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if criteria.Matches(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Sort orders the transactions by the given spec. The sort is stable: ties keep
// their insertion order, and an empty field returns the input order unchanged.
// The input slice is not modified.
func Sort(transactions []*entity.Transaction, spec SortSpec) []*entity.Transaction {
	sorted := make([]*entity.Transaction, len(transactions))
	copy(sorted, transactions)

	if spec.Field == SortFieldNone {
		return sorted
	}

	less := func(a, b *entity.Transaction) bool {
		switch spec.Field {
		case SortFieldDate:
			return a.Date.Before(b.Date)
		case SortFieldCode:
			return a.Code < b.Code
		case SortFieldAmount:
			return a.Amount < b.Amount
		}
		return false
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if spec.Order == SortOrderDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// Page is one page of a paginated transaction set.
type Page struct {
	Items      []*entity.Transaction
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// Paginate slices the set into the requested page. The page index is clamped
// to [1, totalPages]; totalPages is at least 1 even for an empty set.
func Paginate(transactions []*entity.Transaction, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	total := len(transactions)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      transactions[start:end],
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ComputeKPI aggregates headline totals over the filtered set. The figures are
// always recomputed from scratch; nothing is cached between calls.
func ComputeKPI(transactions []*entity.Transaction) KPITotals {
	var totals KPITotals

	for _, t := range transactions {
		if t.ApprovalStatus != valueobject.ApprovalStatusApproved {
			continue
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			totals.TotalIncome += t.Amount
		case entity.TransactionTypeExpense:
			totals.TotalExpense += t.Amount
		case entity.TransactionTypeLoan:
			if t.PaymentStatus == entity.PaymentStatusUnpaid {
				totals.TotalLoan += t.Amount
			}
		}
	}

	totals.Balance = totals.TotalIncome - totals.TotalExpense - totals.TotalLoan
	return totals
}
