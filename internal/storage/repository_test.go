package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"salesmetrics/internal/core"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "sales.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func insert(t *testing.T, store *SQLiteStore, year, month int, category string, amount float64) {
	t.Helper()
	rec := core.SalesRecord{
		Date:     time.Date(year, time.Month(month), 15, 0, 0, 0, 0, time.UTC),
		Year:     year,
		Month:    month,
		Category: category,
		Amount:   amount,
	}
	if err := store.InsertSale(context.Background(), rec); err != nil {
		t.Fatalf("InsertSale: %v", err)
	}
}

func TestSumsByPeriodMonthly(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	insert(t, store, 2025, 1, "Electronics", 30000)
	insert(t, store, 2025, 1, "Clothing", 15000)
	insert(t, store, 2025, 2, "Electronics", 28000)
	insert(t, store, 2024, 1, "Electronics", 20000)

	sums, err := store.SumsByPeriod(ctx, 2025, core.Monthly)
	if err != nil {
		t.Fatalf("SumsByPeriod: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("got %d periods, want 2", len(sums))
	}
	if sums[1] != 45000 {
		t.Errorf("January sum = %v, want 45000", sums[1])
	}
	if sums[2] != 28000 {
		t.Errorf("February sum = %v, want 28000", sums[2])
	}
}

func TestSumsByPeriodQuarterly(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	insert(t, store, 2025, 1, "Electronics", 100)
	insert(t, store, 2025, 3, "Clothing", 200)
	insert(t, store, 2025, 4, "Electronics", 400)
	insert(t, store, 2025, 12, "Food", 800)

	sums, err := store.SumsByPeriod(ctx, 2025, core.Quarterly)
	if err != nil {
		t.Fatalf("SumsByPeriod: %v", err)
	}
	want := map[int]float64{1: 300, 2: 400, 4: 800}
	if len(sums) != len(want) {
		t.Fatalf("got %d quarters, want %d", len(sums), len(want))
	}
	for q, total := range want {
		if sums[q] != total {
			t.Errorf("Q%d sum = %v, want %v", q, sums[q], total)
		}
	}
}

func TestSumsByPeriodEmptyYear(t *testing.T) {
	store := newTestStore(t)

	sums, err := store.SumsByPeriod(context.Background(), 2030, core.Monthly)
	if err != nil {
		t.Fatalf("SumsByPeriod: %v", err)
	}
	if len(sums) != 0 {
		t.Errorf("got %d periods for empty year, want 0", len(sums))
	}
}

func TestCategorySumsOrderedDescending(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	insert(t, store, 2025, 12, "Clothing", 20000)
	insert(t, store, 2025, 12, "Electronics", 38000)
	insert(t, store, 2025, 12, "Food", 16500)
	insert(t, store, 2025, 11, "Electronics", 99999)

	totals, err := store.CategorySums(ctx, 2025, core.Monthly, 12)
	if err != nil {
		t.Fatalf("CategorySums: %v", err)
	}
	if len(totals) != 3 {
		t.Fatalf("got %d categories, want 3", len(totals))
	}
	wantOrder := []core.CategoryTotal{
		{Category: "Electronics", Amount: 38000},
		{Category: "Clothing", Amount: 20000},
		{Category: "Food", Amount: 16500},
	}
	for i, want := range wantOrder {
		if totals[i] != want {
			t.Errorf("totals[%d] = %+v, want %+v", i, totals[i], want)
		}
	}
}

func TestCategorySumsQuarterly(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	insert(t, store, 2025, 4, "Electronics", 100)
	insert(t, store, 2025, 6, "Electronics", 50)
	insert(t, store, 2025, 5, "Food", 75)
	insert(t, store, 2025, 7, "Electronics", 999)

	totals, err := store.CategorySums(ctx, 2025, core.Quarterly, 2)
	if err != nil {
		t.Fatalf("CategorySums: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("got %d categories, want 2", len(totals))
	}
	if totals[0].Category != "Electronics" || totals[0].Amount != 150 {
		t.Errorf("totals[0] = %+v, want Electronics 150", totals[0])
	}
}

func TestYearsPresent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	years, err := store.YearsPresent(ctx)
	if err != nil {
		t.Fatalf("YearsPresent: %v", err)
	}
	if len(years) != 0 {
		t.Fatalf("got %v for empty store, want none", years)
	}

	insert(t, store, 2025, 1, "Electronics", 1)
	insert(t, store, 2023, 6, "Food", 1)
	insert(t, store, 2025, 2, "Clothing", 1)

	years, err = store.YearsPresent(ctx)
	if err != nil {
		t.Fatalf("YearsPresent: %v", err)
	}
	want := []int{2023, 2025}
	if len(years) != len(want) {
		t.Fatalf("got %v, want %v", years, want)
	}
	for i := range want {
		if years[i] != want[i] {
			t.Errorf("years[%d] = %d, want %d", i, years[i], want[i])
		}
	}
}

func TestCountSales(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	insert(t, store, 2025, 1, "Electronics", 1)
	insert(t, store, 2025, 2, "Food", 2)

	count, err := store.CountSales(ctx)
	if err != nil {
		t.Fatalf("CountSales: %v", err)
	}
	if count != 2 {
		t.Errorf("CountSales = %d, want 2", count)
	}
}
