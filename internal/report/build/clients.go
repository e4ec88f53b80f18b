package build

import (
	"sort"
	"time"

	orderdomain "github.com/estatehub/backoffice/internal/order/domain"
	"github.com/estatehub/backoffice/internal/report/aggregate"
	"github.com/estatehub/backoffice/internal/report/daterange"
	reportdomain "github.com/estatehub/backoffice/internal/report/domain"
	"github.com/estatehub/backoffice/internal/report/rules"
	"github.com/shopspring/decimal"
)

const topClientsLimit = 10

// frequencyBuckets is the fixed histogram of per-client order counts.
var frequencyBuckets = []struct {
	label string
	min   int
	max   int
}{
	{"1", 1, 1},
	{"2-3", 2, 3},
	{"4-5", 4, 5},
	{"6-10", 6, 10},
	{"11+", 11, 1 << 30},
}

// Clients builds the client activity report. totalClients is the count
// of all clients ever registered; clients supplies the registration
// rows for the time series and new-this-month figure; orders are the
// in-range rows. now anchors the calendar-month boundary.
func Clients(orders []orderdomain.Order, clients []orderdomain.Client, totalClients int, r daterange.Range, g daterange.Granularity, now time.Time) reportdomain.ClientsAggregate {
	byEmail := aggregate.GroupBy(orders, func(o orderdomain.Order) string {
		return orDefault(o.ClientEmail)
	})

	active := 0
	for email := range byEmail {
		if email != Unspecified {
			active++
		}
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	newThisMonth := 0
	for _, c := range clients {
		if !c.CreatedAt.Before(monthStart) {
			newThisMonth++
		}
	}

	registrations := aggregate.FillGaps(
		aggregate.GroupByDateAndCount(clients, clientCreatedAt, g),
		r, g,
	)

	return reportdomain.ClientsAggregate{
		TotalClients:   totalClients,
		ActiveClients:  active,
		NewThisMonth:   newThisMonth,
		Registrations:  registrations,
		OrderFrequency: orderFrequency(byEmail),
		TopClients:     topClients(orders, byEmail),
	}
}

func clientCreatedAt(c orderdomain.Client) (time.Time, bool) {
	if c.CreatedAt.IsZero() {
		return time.Time{}, false
	}
	return c.CreatedAt, true
}

// orderFrequency fills the fixed five-bucket histogram; its order is
// the bucket definition order, not count-descending.
func orderFrequency(byEmail map[string][]orderdomain.Order) []aggregate.ChartPoint {
	points := make([]aggregate.ChartPoint, len(frequencyBuckets))
	for i, bucket := range frequencyBuckets {
		points[i] = aggregate.ChartPoint{Name: bucket.label}
	}
	for email, clientOrders := range byEmail {
		if email == Unspecified {
			continue
		}
		count := len(clientOrders)
		for i, bucket := range frequencyBuckets {
			if count >= bucket.min && count <= bucket.max {
				points[i].Value++
				break
			}
		}
	}
	return points
}

// topClients ranks clients by in-range order count; spend only counts
// revenue-qualifying orders.
func topClients(orders []orderdomain.Order, byEmail map[string][]orderdomain.Order) []reportdomain.ClientStats {
	var emails []string
	seen := make(map[string]bool)
	for _, o := range orders {
		email := orDefault(o.ClientEmail)
		if email == Unspecified || seen[email] {
			continue
		}
		seen[email] = true
		emails = append(emails, email)
	}

	stats := make([]reportdomain.ClientStats, 0, len(emails))
	for _, email := range emails {
		clientOrders := byEmail[email]
		spend := decimal.Zero
		for _, o := range clientOrders {
			if rules.CountsTowardRevenue(o) {
				spend = spend.Add(rules.OrderPrice(o))
			}
		}
		stats = append(stats, reportdomain.ClientStats{
			Email:  email,
			Name:   clientOrders[0].ClientName,
			Orders: len(clientOrders),
			Spend:  spend,
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Orders > stats[j].Orders
	})

	if len(stats) > topClientsLimit {
		stats = stats[:topClientsLimit]
	}
	return stats
}
