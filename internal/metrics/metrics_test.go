package metrics

import (
	"context"

	"salesmetrics/internal/core"
)

// fakeReader is an in-memory SalesReader for calculator tests.
type fakeReader struct {
	sums  map[sumKey]map[int]float64
	cats  map[catKey][]core.CategoryTotal
	years []int
	err   error
}

type sumKey struct {
	year int
	g    core.Granularity
}

type catKey struct {
	year   int
	g      core.Granularity
	period int
}

func (f *fakeReader) SumsByPeriod(_ context.Context, year int, g core.Granularity) (map[int]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sums[sumKey{year, g}], nil
}

func (f *fakeReader) CategorySums(_ context.Context, year int, g core.Granularity, periodNumber int) ([]core.CategoryTotal, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cats[catKey{year, g, periodNumber}], nil
}

func (f *fakeReader) YearsPresent(_ context.Context) ([]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.years, nil
}

func monthlySums(year int, sums map[int]float64) map[sumKey]map[int]float64 {
	return map[sumKey]map[int]float64{{year, core.Monthly}: sums}
}
