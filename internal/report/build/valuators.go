package build

import (
	"sort"

	orderdomain "github.com/estatehub/backoffice/internal/order/domain"
	"github.com/estatehub/backoffice/internal/report/aggregate"
	"github.com/estatehub/backoffice/internal/report/daterange"
	reportdomain "github.com/estatehub/backoffice/internal/report/domain"
	"github.com/estatehub/backoffice/internal/report/rules"
)

const (
	rankingLimit  = 10
	workloadLimit = 15
	timelineLimit = 5
)

// Valuators builds the valuator workload report. valuators supplies the
// active reference rows; orders without an assignment are bucketed
// under the unspecified label so the totals still partition the input.
func Valuators(orders []orderdomain.Order, valuators []orderdomain.Valuator, r daterange.Range, g daterange.Granularity) reportdomain.ValuatorsAggregate {
	names := make(map[string]string, len(valuators))
	for _, v := range valuators {
		names[v.Code] = v.Name
	}

	byCode := aggregate.GroupBy(orders, func(o orderdomain.Order) string {
		return orDefault(o.ValuatorCode)
	})

	// First-seen order over codes keeps ties deterministic.
	var codes []string
	seen := make(map[string]bool)
	for _, o := range orders {
		code := orDefault(o.ValuatorCode)
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	ranking := make([]reportdomain.ValuatorStats, 0, len(codes))
	for _, code := range codes {
		assigned := byCode[code]
		stats := reportdomain.ValuatorStats{
			Code:  code,
			Name:  displayName(names, code),
			Total: len(assigned),
		}
		for _, o := range assigned {
			if rules.IsCompleted(o) {
				stats.Completed++
			} else if rules.IsInProgress(o) {
				stats.InProgress++
			}
		}
		ranking = append(ranking, stats)
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Total > ranking[j].Total
	})

	workload := make([]aggregate.ChartPoint, 0, len(ranking))
	for _, stats := range ranking {
		workload = append(workload, aggregate.ChartPoint{Name: stats.Name, Value: float64(stats.Total)})
	}

	seriesNames, timeline := valuatorTimeline(ranking, byCode, r, g)

	if len(ranking) > rankingLimit {
		ranking = ranking[:rankingLimit]
	}

	return reportdomain.ValuatorsAggregate{
		ActiveValuators: len(valuators),
		Ranking:         ranking,
		Workload:        aggregate.Top(workload, workloadLimit),
		TimelineSeries:  seriesNames,
		Timeline:        timeline,
	}
}

// valuatorTimeline carries the top valuators' counts as named series,
// each independently gap-filled against the shared bucket axis.
func valuatorTimeline(ranking []reportdomain.ValuatorStats, byCode map[string][]orderdomain.Order, r daterange.Range, g daterange.Granularity) ([]string, []aggregate.MultiPoint) {
	top := ranking
	if len(top) > timelineLimit {
		top = top[:timelineLimit]
	}

	axis := daterange.Buckets(r, g)
	points := make([]aggregate.MultiPoint, len(axis))
	for i, key := range axis {
		points[i] = aggregate.MultiPoint{Date: key, Values: make(map[string]float64, len(top))}
	}

	names := make([]string, 0, len(top))
	for _, stats := range top {
		names = append(names, stats.Name)
		dense := aggregate.FillGaps(
			aggregate.GroupByDateAndCount(byCode[stats.Code], orderCreatedAt, g),
			r, g,
		)
		for i, point := range dense {
			points[i].Values[stats.Name] = point.Value
		}
	}
	return names, points
}

func displayName(names map[string]string, code string) string {
	if name, ok := names[code]; ok && name != "" {
		return name
	}
	return code
}
