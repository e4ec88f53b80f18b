package build

import (
	"time"

	orderdomain "github.com/estatehub/backoffice/internal/order/domain"
	"github.com/estatehub/backoffice/internal/report/aggregate"
	"github.com/estatehub/backoffice/internal/report/daterange"
	reportdomain "github.com/estatehub/backoffice/internal/report/domain"
	"github.com/estatehub/backoffice/internal/report/rules"
	"github.com/shopspring/decimal"
)

var thirtyDays = decimal.NewFromInt(30)

// Revenue builds the revenue report. Only orders that are paid, done or
// auto-completed contribute; their value is always the effective price,
// never the raw stored one. now is threaded in for the naive 30-day
// projection.
func Revenue(orders []orderdomain.Order, r daterange.Range, g daterange.Granularity, now time.Time) reportdomain.RevenueAggregate {
	var billable []orderdomain.Order
	for _, o := range orders {
		if rules.CountsTowardRevenue(o) {
			billable = append(billable, o)
		}
	}

	total := decimal.Zero
	for _, o := range billable {
		total = total.Add(rules.OrderPrice(o))
	}

	average := decimal.Zero
	if len(billable) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(billable)))).Round(2)
	}

	byService := aggregate.GroupAndSum(billable,
		func(o orderdomain.Order) string { return string(o.ServiceType) },
		rules.OrderPrice,
	)

	timeline := aggregate.FillGaps(
		aggregate.GroupByDateAndSum(billable, orderCreatedAt, rules.OrderPrice, g),
		r, g,
	)

	return reportdomain.RevenueAggregate{
		Total:         total,
		Average:       average,
		Orders:        len(billable),
		ByServiceType: byService,
		Timeline:      timeline,
		Projected30d:  project30d(total, r.From, now),
	}
}

// project30d extrapolates the range's revenue linearly onto a 30-day
// window. Elapsed time is floored to one day so a range that started
// today never divides by zero.
func project30d(total decimal.Decimal, from, now time.Time) decimal.Decimal {
	days := int64(now.Sub(from).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return total.Div(decimal.NewFromInt(days)).Mul(thirtyDays).Round(2)
}
