package metrics

import (
	"fmt"
	"slices"

	"salesmetrics/internal/core"
)

// The helpers below form the result composer: they attach the same
// availability metadata, period labels, and output rounding to every
// envelope regardless of metric kind.

func periodRef(g core.Granularity, n int) PeriodRef {
	return PeriodRef{PeriodLabel: core.PeriodLabel(g, n), PeriodNumber: n}
}

// yearAvailability evaluates a single requested year against the years
// present in the dataset.
func yearAvailability(present []int, year int) Availability {
	return availabilityFlag(year, slices.Contains(present, year))
}

// availabilityFlag builds the availability block for a single year whose
// data presence has already been decided (category breakdown treats an
// empty period within a known year as missing).
func availabilityFlag(year int, hasData bool) Availability {
	av := Availability{DataAvailableFor: []int{}, DataMissingFor: []int{}}
	if hasData {
		av.DataAvailableFor = append(av.DataAvailableFor, year)
		return av
	}
	av.DataMissingFor = append(av.DataMissingFor, year)
	av.Note = fmt.Sprintf("No data found for: %v", av.DataMissingFor)
	return av
}

// yearsAvailability evaluates each requested year independently, reporting
// every missing year.
func yearsAvailability(present []int, requested ...int) Availability {
	av := Availability{DataAvailableFor: []int{}, DataMissingFor: []int{}}
	for _, y := range requested {
		if slices.Contains(present, y) {
			av.DataAvailableFor = append(av.DataAvailableFor, y)
		} else {
			av.DataMissingFor = append(av.DataMissingFor, y)
		}
	}
	if len(av.DataMissingFor) > 0 {
		av.Note = fmt.Sprintf("No data found for: %v", av.DataMissingFor)
	}
	return av
}

// requestedPeriods returns just the filter period when one is set,
// otherwise the ascending union of period keys across the given maps.
// Union matters: a period present on either side of a merge must appear,
// with the missing side defaulting to zero.
func requestedPeriods(filter int, maps ...map[int]float64) []int {
	if filter != 0 {
		return []int{filter}
	}
	set := make(map[int]struct{})
	for _, m := range maps {
		for p := range m {
			set[p] = struct{}{}
		}
	}
	periods := make([]int, 0, len(set))
	for p := range set {
		periods = append(periods, p)
	}
	slices.Sort(periods)
	return periods
}

func sumValues(m map[int]float64) float64 {
	var total float64
	for _, v := range m {
		total += v
	}
	return total
}

// pctOf guards every ratio in the calculators: a zero denominator yields
// zero by policy, not a fault.
func pctOf(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator * 100
}

// round2Ptr rounds through a pointer, preserving nil (undefined) values.
func round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := core.Round2(*v)
	return &r
}
