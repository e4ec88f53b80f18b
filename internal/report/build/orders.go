// Package build contains the pure report builders. Each takes the raw
// rows for an already-resolved range plus the planned granularity and
// returns a fully shaped aggregate; no builder touches a clock or a
// store on its own.
package build

import (
	"time"

	orderdomain "github.com/estatehub/backoffice/internal/order/domain"
	"github.com/estatehub/backoffice/internal/report/aggregate"
	"github.com/estatehub/backoffice/internal/report/daterange"
	reportdomain "github.com/estatehub/backoffice/internal/report/domain"
	"github.com/estatehub/backoffice/internal/report/rules"
)

// Unspecified buckets records whose grouping dimension is absent, so a
// breakdown always partitions its input instead of dropping rows.
const Unspecified = "unspecified"

func orDefault(value string) string {
	if value == "" {
		return Unspecified
	}
	return value
}

// Orders builds the order-volume report.
func Orders(orders []orderdomain.Order, r daterange.Range, g daterange.Granularity) reportdomain.OrdersAggregate {
	byStatus := aggregate.GroupAndCount(orders, func(o orderdomain.Order) string {
		return string(rules.EffectiveStatus(o))
	})
	byService := aggregate.GroupAndCount(orders, func(o orderdomain.Order) string {
		return string(o.ServiceType)
	})
	byProperty := aggregate.GroupAndCount(orders, func(o orderdomain.Order) string {
		return orDefault(o.PropertyType)
	})
	byMunicipality := aggregate.GroupAndCount(orders, func(o orderdomain.Order) string {
		return orDefault(o.Municipality)
	})

	timeline := aggregate.FillGaps(
		aggregate.GroupByDateAndCount(orders, orderCreatedAt, g),
		r, g,
	)

	return reportdomain.OrdersAggregate{
		Total:          len(orders),
		ByStatus:       byStatus,
		ByServiceType:  byService,
		ByPropertyType: aggregate.Top(byProperty, 10),
		ByMunicipality: aggregate.Top(byMunicipality, 10),
		Timeline:       timeline,
	}
}

func orderCreatedAt(o orderdomain.Order) (time.Time, bool) {
	if o.CreatedAt.IsZero() {
		return time.Time{}, false
	}
	return o.CreatedAt, true
}
