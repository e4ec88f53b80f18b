// Package aggregate holds the grouping, counting and gap-filling
// primitives shared by every report builder. All functions are pure and
// total: empty input yields empty (never nil-panicking) output.
package aggregate

import (
	"sort"
	"time"

	"github.com/estatehub/backoffice/internal/report/daterange"
	"github.com/shopspring/decimal"
)

// ChartPoint is one categorical bucket of a breakdown chart.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SeriesPoint is one temporal bucket of a time series. Date is the
// canonical bucket key, so plain string sorting orders the series.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// MultiPoint is one temporal bucket carrying several named series.
type MultiPoint struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

// GroupBy partitions records by key.
func GroupBy[T any, K comparable](records []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, rec := range records {
		k := key(rec)
		groups[k] = append(groups[k], rec)
	}
	return groups
}

// GroupAndCount counts records per key and returns the buckets sorted
// by count descending, ties kept in first-seen order. Callers render
// the result as-is; nothing downstream re-sorts.
func GroupAndCount[T any](records []T, key func(T) string) []ChartPoint {
	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		k := key(rec)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	points := make([]ChartPoint, 0, len(order))
	for _, k := range order {
		points = append(points, ChartPoint{Name: k, Value: float64(counts[k])})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})
	return points
}

// GroupAndSum sums amounts per key, sorted like GroupAndCount. Sums are
// carried as decimals and converted once at the boundary so category
// totals match the scalar totals computed elsewhere.
func GroupAndSum[T any](records []T, key func(T) string, amount func(T) decimal.Decimal) []ChartPoint {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, rec := range records {
		k := key(rec)
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] = sums[k].Add(amount(rec))
	}

	points := make([]ChartPoint, 0, len(order))
	for _, k := range order {
		points = append(points, ChartPoint{Name: k, Value: sums[k].InexactFloat64()})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})
	return points
}

// GroupByDateAndCount buckets records into the given granularity and
// counts them, ascending by bucket key. Records without a date are
// excluded; there is no sensible "unspecified" time bucket.
func GroupByDateAndCount[T any](records []T, date func(T) (time.Time, bool), g daterange.Granularity) []SeriesPoint {
	return groupByDate(records, date, g, func(T) float64 { return 1 })
}

// GroupByDateAndSum is GroupByDateAndCount summing amounts instead of
// counting.
func GroupByDateAndSum[T any](records []T, date func(T) (time.Time, bool), amount func(T) decimal.Decimal, g daterange.Granularity) []SeriesPoint {
	return groupByDate(records, date, g, func(rec T) float64 { return amount(rec).InexactFloat64() })
}

func groupByDate[T any](records []T, date func(T) (time.Time, bool), g daterange.Granularity, weight func(T) float64) []SeriesPoint {
	sums := make(map[string]float64)
	for _, rec := range records {
		t, ok := date(rec)
		if !ok {
			continue
		}
		sums[daterange.BucketKey(t, g)] += weight(rec)
	}

	points := make([]SeriesPoint, 0, len(sums))
	for k, v := range sums {
		points = append(points, SeriesPoint{Date: k, Value: v})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// FillGaps expands a sparse series into a dense one covering every
// bucket of the range at the given granularity, inserting zero-valued
// buckets so consumers never distinguish "zero" from "missing".
func FillGaps(sparse []SeriesPoint, r daterange.Range, g daterange.Granularity) []SeriesPoint {
	byDate := make(map[string]float64, len(sparse))
	for _, p := range sparse {
		byDate[p.Date] += p.Value
	}

	axis := daterange.Buckets(r, g)
	dense := make([]SeriesPoint, 0, len(axis))
	for _, key := range axis {
		dense = append(dense, SeriesPoint{Date: key, Value: byDate[key]})
	}
	return dense
}

// Top returns at most n leading points of an already-sorted breakdown.
func Top(points []ChartPoint, n int) []ChartPoint {
	if len(points) <= n {
		return points
	}
	return points[:n]
}

// SumValues totals a breakdown's values.
func SumValues(points []ChartPoint) float64 {
	var total float64
	for _, p := range points {
		total += p.Value
	}
	return total
}
