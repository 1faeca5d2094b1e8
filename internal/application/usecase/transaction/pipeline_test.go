package transaction

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ledger-console/backend/internal/domain/entity"
	"github.com/ledger-console/backend/internal/domain/valueobject"
)

func sample(code string, mutate ...func(*entity.Transaction)) *entity.Transaction {
	t := &entity.Transaction{
		ID:             uuid.New(),
		Code:           code,
		Date:           date(2025, time.January, 10),
		Type:           entity.TransactionTypeExpense,
		Category:       "Office supplies",
		ObjectType:     entity.ObjectTypePartner,
		ObjectName:     "ACME Ltd",
		BusinessUnit:   "BU-North",
		Amount:         1_000_000,
		CostAllocation: entity.CostAllocationDirect,
		PaymentStatus:  entity.PaymentStatusPaid,
		ApprovalStatus: valueobject.ApprovalStatusDraft,
	}
	for _, m := range mutate {
		m(t)
	}
	return t
}

func TestFilter(t *testing.T) {
	set := []*entity.Transaction{
		sample("C0125_01"),
		sample("C0125_02", func(t *entity.Transaction) {
			t.BusinessUnit = "BU-South"
			t.ObjectName = "Globex"
		}),
		sample("T0125_01", func(t *entity.Transaction) {
			t.Type = entity.TransactionTypeIncome
			t.ApprovalStatus = valueobject.ApprovalStatusApproved
		}),
		sample("C0224_01", func(t *entity.Transaction) {
			t.Date = date(2024, time.February, 20)
		}),
	}

	t.Run("search matches code case-insensitively", func(t *testing.T) {
		got := Filter(set, FilterCriteria{Search: "c0125"})
		if len(got) != 2 {
			t.Fatalf("got %d transactions, want 2", len(got))
		}
	})

	t.Run("search matches object name", func(t *testing.T) {
		got := Filter(set, FilterCriteria{Search: "globex"})
		if len(got) != 1 || got[0].Code != "C0125_02" {
			t.Fatalf("got %v, want just C0125_02", codesOf(got))
		}
	})

	t.Run("business unit filter", func(t *testing.T) {
		got := Filter(set, FilterCriteria{BusinessUnit: "BU-South"})
		if len(got) != 1 || got[0].Code != "C0125_02" {
			t.Fatalf("got %v, want just C0125_02", codesOf(got))
		}
	})

	t.Run("approval status filter", func(t *testing.T) {
		got := Filter(set, FilterCriteria{ApprovalStatus: valueobject.ApprovalStatusApproved})
		if len(got) != 1 || got[0].Code != "T0125_01" {
			t.Fatalf("got %v, want just T0125_01", codesOf(got))
		}
	})

	t.Run("type filter", func(t *testing.T) {
		got := Filter(set, FilterCriteria{Type: entity.TransactionTypeIncome})
		if len(got) != 1 || got[0].Code != "T0125_01" {
			t.Fatalf("got %v, want just T0125_01", codesOf(got))
		}
	})

	t.Run("date range filter", func(t *testing.T) {
		start := date(2025, time.January, 1)
		end := date(2025, time.January, 31)
		got := Filter(set, FilterCriteria{DateRange: DateRange{Start: &start, End: &end}})
		if len(got) != 3 {
			t.Fatalf("got %d transactions, want 3", len(got))
		}
	})

	t.Run("zero criteria keeps everything", func(t *testing.T) {
		got := Filter(set, FilterCriteria{})
		if len(got) != len(set) {
			t.Fatalf("got %d transactions, want %d", len(got), len(set))
		}
	})
}

func TestSort(t *testing.T) {
	a := sample("C0125_01", func(t *entity.Transaction) { t.Amount = 300 })
	b := sample("C0125_02", func(t *entity.Transaction) { t.Amount = 100 })
	c := sample("C0125_03", func(t *entity.Transaction) { t.Amount = 300 })
	set := []*entity.Transaction{a, b, c}

	t.Run("amount ascending", func(t *testing.T) {
		got := Sort(set, SortSpec{Field: SortFieldAmount, Order: SortOrderAsc})
		want := []string{"C0125_02", "C0125_01", "C0125_03"}
		assertOrder(t, got, want)
	})

	t.Run("amount descending keeps ties stable", func(t *testing.T) {
		got := Sort(set, SortSpec{Field: SortFieldAmount, Order: SortOrderDesc})
		// a and c tie on amount; insertion order between them is preserved.
		want := []string{"C0125_01", "C0125_03", "C0125_02"}
		assertOrder(t, got, want)
	})

	t.Run("code descending", func(t *testing.T) {
		got := Sort(set, SortSpec{Field: SortFieldCode, Order: SortOrderDesc})
		want := []string{"C0125_03", "C0125_02", "C0125_01"}
		assertOrder(t, got, want)
	})

	t.Run("empty field keeps insertion order", func(t *testing.T) {
		got := Sort(set, SortSpec{})
		assertOrder(t, got, codesOf(set))
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		Sort(set, SortSpec{Field: SortFieldAmount, Order: SortOrderAsc})
		assertOrder(t, set, []string{"C0125_01", "C0125_02", "C0125_03"})
	})
}

func assertOrder(t *testing.T, got []*entity.Transaction, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d transactions, want %d", len(got), len(want))
	}
	for i, code := range want {
		if got[i].Code != code {
			t.Fatalf("order = %v, want %v", codesOf(got), want)
		}
	}
}

func TestPaginate(t *testing.T) {
	set := make([]*entity.Transaction, 23)
	for i := range set {
		set[i] = sample("C0125_01")
	}

	t.Run("last partial page", func(t *testing.T) {
		page := Paginate(set, 3, 10)
		if len(page.Items) != 3 {
			t.Errorf("items = %d, want 3", len(page.Items))
		}
		if page.TotalPages != 3 {
			t.Errorf("totalPages = %d, want 3", page.TotalPages)
		}
		if page.Total != 23 {
			t.Errorf("total = %d, want 23", page.Total)
		}
	})

	t.Run("page beyond the end clamps to the last page", func(t *testing.T) {
		page := Paginate(set, 99, 10)
		if page.Page != 3 {
			t.Errorf("page = %d, want 3", page.Page)
		}
		if len(page.Items) != 3 {
			t.Errorf("items = %d, want 3", len(page.Items))
		}
	})

	t.Run("page below one clamps to the first page", func(t *testing.T) {
		page := Paginate(set, 0, 10)
		if page.Page != 1 {
			t.Errorf("page = %d, want 1", page.Page)
		}
		if len(page.Items) != 10 {
			t.Errorf("items = %d, want 10", len(page.Items))
		}
	})

	t.Run("empty set still reports one page", func(t *testing.T) {
		page := Paginate(nil, 1, 10)
		if page.TotalPages != 1 {
			t.Errorf("totalPages = %d, want 1", page.TotalPages)
		}
		if len(page.Items) != 0 {
			t.Errorf("items = %d, want 0", len(page.Items))
		}
	})

	t.Run("invalid page size falls back to the default", func(t *testing.T) {
		page := Paginate(set, 1, 0)
		if page.PageSize != defaultPageSize {
			t.Errorf("pageSize = %d, want %d", page.PageSize, defaultPageSize)
		}
	})
}

func TestComputeKPI(t *testing.T) {
	set := []*entity.Transaction{
		sample("T0125_01", func(t *entity.Transaction) {
			t.Type = entity.TransactionTypeIncome
			t.Amount = 10_000_000
			t.ApprovalStatus = valueobject.ApprovalStatusApproved
		}),
		sample("C0125_01", func(t *entity.Transaction) {
			t.Amount = 3_000_000
			t.ApprovalStatus = valueobject.ApprovalStatusApproved
		}),
		sample("V0125_01", func(t *entity.Transaction) {
			t.Type = entity.TransactionTypeLoan
			t.Amount = 2_000_000
			t.PaymentStatus = entity.PaymentStatusUnpaid
			t.ApprovalStatus = valueobject.ApprovalStatusApproved
		}),
		// Paid-back loan no longer counts as outstanding.
		sample("V0125_02", func(t *entity.Transaction) {
			t.Type = entity.TransactionTypeLoan
			t.Amount = 5_000_000
			t.PaymentStatus = entity.PaymentStatusPaid
			t.ApprovalStatus = valueobject.ApprovalStatusApproved
		}),
		// Pending and draft never contribute.
		sample("T0125_02", func(t *entity.Transaction) {
			t.Type = entity.TransactionTypeIncome
			t.Amount = 99_000_000
			t.ApprovalStatus = valueobject.ApprovalStatusPending
		}),
		sample("C0125_02", func(t *entity.Transaction) {
			t.Amount = 7_000_000
		}),
	}

	got := ComputeKPI(set)

	if got.TotalIncome != 10_000_000 {
		t.Errorf("TotalIncome = %d, want 10000000", got.TotalIncome)
	}
	if got.TotalExpense != 3_000_000 {
		t.Errorf("TotalExpense = %d, want 3000000", got.TotalExpense)
	}
	if got.TotalLoan != 2_000_000 {
		t.Errorf("TotalLoan = %d, want 2000000", got.TotalLoan)
	}
	if got.Balance != 5_000_000 {
		t.Errorf("Balance = %d, want 5000000", got.Balance)
	}
}
