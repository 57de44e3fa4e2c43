// Command seed recreates the sales database and populates it with the
// sample 2025 dataset, then prints a short summary of what was loaded.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"salesmetrics/internal/cli"
	"salesmetrics/internal/core"
)

type sampleRow struct {
	month    int
	category string
	amount   float64
}

// A complete 2025 year across three categories, shaped to show variance
// against typical forecasts.
var sales2025 = []sampleRow{
	{1, "Electronics", 28500.00},
	{1, "Clothing", 15200.00},
	{1, "Home & Garden", 8300.00},
	{2, "Electronics", 31200.00},
	{2, "Clothing", 14800.00},
	{2, "Home & Garden", 9100.00},
	{3, "Electronics", 35600.00},
	{3, "Clothing", 18900.00},
	{3, "Home & Garden", 12500.00},
	{4, "Electronics", 33200.00},
	{4, "Clothing", 21500.00},
	{4, "Home & Garden", 15800.00},
	{5, "Electronics", 38900.00},
	{5, "Clothing", 24300.00},
	{5, "Home & Garden", 18200.00},
	{6, "Electronics", 42100.00},
	{6, "Clothing", 22800.00},
	{6, "Home & Garden", 16500.00},
	{7, "Electronics", 39800.00},
	{7, "Clothing", 19200.00},
	{7, "Home & Garden", 14300.00},
	{8, "Electronics", 44500.00},
	{8, "Clothing", 21100.00},
	{8, "Home & Garden", 13800.00},
	{9, "Electronics", 41200.00},
	{9, "Clothing", 25600.00},
	{9, "Home & Garden", 11900.00},
	{10, "Electronics", 48700.00},
	{10, "Clothing", 28900.00},
	{10, "Home & Garden", 14500.00},
	{11, "Electronics", 62300.00},
	{11, "Clothing", 38500.00},
	{11, "Home & Garden", 19200.00},
	{12, "Electronics", 71200.00},
	{12, "Clothing", 45600.00},
	{12, "Home & Garden", 22800.00},
}

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	// Start from a fresh database.
	if err := os.Remove(cfg.SQLiteDBPath); err != nil && !os.IsNotExist(err) {
		logger.Error("Failed to remove existing database", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}

	store := cli.InitStore(logger, cfg.SQLiteDBPath)
	defer store.Close()

	ctx := context.Background()
	const year = 2025

	for _, row := range sales2025 {
		rec := core.SalesRecord{
			Date:     time.Date(year, time.Month(row.month), 15, 0, 0, 0, 0, time.UTC),
			Year:     year,
			Month:    row.month,
			Category: row.category,
			Amount:   row.amount,
		}
		if err := store.InsertSale(ctx, rec); err != nil {
			logger.Error("Failed to insert sample record", "error", err, "month", row.month, "category", row.category)
			os.Exit(1)
		}
	}

	count, err := store.CountSales(ctx)
	if err != nil {
		logger.Error("Failed to count records", "error", err)
		os.Exit(1)
	}

	monthly, err := store.SumsByPeriod(ctx, year, core.Monthly)
	if err != nil {
		logger.Error("Failed to read monthly totals", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Database initialized at: %s\n", cfg.SQLiteDBPath)
	fmt.Printf("Total records: %d\n", count)
	fmt.Printf("\n%d monthly totals:\n", year)
	for m := 1; m <= 12; m++ {
		if total, ok := monthly[m]; ok {
			fmt.Printf("  %s: $%.2f\n", time.Month(m).String()[:3], total)
		}
	}
}
