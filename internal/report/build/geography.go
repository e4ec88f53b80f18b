package build

import (
	orderdomain "github.com/estatehub/backoffice/internal/order/domain"
	"github.com/estatehub/backoffice/internal/report/aggregate"
	reportdomain "github.com/estatehub/backoffice/internal/report/domain"
)

const (
	municipalityLimit = 15
	cityLimit         = 20
)

// Geography builds the geography report from the in-range orders.
func Geography(orders []orderdomain.Order) reportdomain.GeographyAggregate {
	byMunicipality := aggregate.GroupAndCount(orders, func(o orderdomain.Order) string {
		return orDefault(o.Municipality)
	})
	byCity := aggregate.GroupAndCount(orders, func(o orderdomain.Order) string {
		return orDefault(o.City)
	})

	locations := make(map[[2]string]struct{})
	for _, o := range orders {
		locations[[2]string{orDefault(o.Municipality), orDefault(o.City)}] = struct{}{}
	}

	return reportdomain.GeographyAggregate{
		TopMunicipalities: aggregate.Top(byMunicipality, municipalityLimit),
		TopCities:         aggregate.Top(byCity, cityLimit),
		DistinctLocations: len(locations),
	}
}
