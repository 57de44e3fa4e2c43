// Package storage implements the sales store on SQLite. It is the concrete
// SalesReader behind the metrics engine plus the write path used by seeding.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"salesmetrics/internal/core"
	"salesmetrics/internal/metrics"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

var _ metrics.SalesReader = (*SQLiteStore)(nil)

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SumsByPeriod implements metrics.SalesReader. Quarters derive from month
// via integer division in SQL, matching core.QuarterOf.
func (s *SQLiteStore) SumsByPeriod(ctx context.Context, year int, g core.Granularity) (map[int]float64, error) {
	query := `
		SELECT month, SUM(amount) AS total
		FROM sales
		WHERE year = ?
		GROUP BY month
		ORDER BY month`
	if g == core.Quarterly {
		query = `
		SELECT ((month - 1) / 3 + 1) AS quarter, SUM(amount) AS total
		FROM sales
		WHERE year = ?
		GROUP BY quarter
		ORDER BY quarter`
	}

	rows, err := s.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("query sums by period: %w", err)
	}
	defer rows.Close()

	sums := make(map[int]float64)
	for rows.Next() {
		var period int
		var total float64
		if err := rows.Scan(&period, &total); err != nil {
			return nil, fmt.Errorf("scan period sum: %w", err)
		}
		sums[period] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate period sums: %w", err)
	}
	return sums, nil
}

// CategorySums implements metrics.SalesReader.
func (s *SQLiteStore) CategorySums(ctx context.Context, year int, g core.Granularity, periodNumber int) ([]core.CategoryTotal, error) {
	query := `
		SELECT category, SUM(amount) AS total
		FROM sales
		WHERE year = ? AND month = ?
		GROUP BY category
		ORDER BY total DESC`
	if g == core.Quarterly {
		query = `
		SELECT category, SUM(amount) AS total
		FROM sales
		WHERE year = ? AND ((month - 1) / 3 + 1) = ?
		GROUP BY category
		ORDER BY total DESC`
	}

	rows, err := s.db.QueryContext(ctx, query, year, periodNumber)
	if err != nil {
		return nil, fmt.Errorf("query category sums: %w", err)
	}
	defer rows.Close()

	var totals []core.CategoryTotal
	for rows.Next() {
		var ct core.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Amount); err != nil {
			return nil, fmt.Errorf("scan category sum: %w", err)
		}
		totals = append(totals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category sums: %w", err)
	}
	return totals, nil
}

// YearsPresent implements metrics.SalesReader.
func (s *SQLiteStore) YearsPresent(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT year FROM sales ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("query years present: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate years: %w", err)
	}
	return years, nil
}

// InsertSale appends one record to the dataset.
func (s *SQLiteStore) InsertSale(ctx context.Context, rec core.SalesRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sales (date, year, month, category, amount)
		VALUES (?, ?, ?, ?, ?)`,
		rec.Date.Format("2006-01-02"), rec.Year, rec.Month, rec.Category, rec.Amount)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	slog.DebugContext(ctx, "Sale inserted",
		"year", rec.Year,
		"month", rec.Month,
		"category", rec.Category,
		"amount", rec.Amount)

	return nil
}

// CountSales returns the number of records in the dataset.
func (s *SQLiteStore) CountSales(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return count, nil
}
