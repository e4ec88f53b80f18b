package build

import (
	"testing"
	"time"

	orderdomain "github.com/estatehub/backoffice/internal/order/domain"
	"github.com/estatehub/backoffice/internal/report/aggregate"
	"github.com/estatehub/backoffice/internal/report/daterange"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-15 is a Sunday; the rolling week covers June 8 through 14.
var now = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func weekRange(t *testing.T) (daterange.Range, daterange.Granularity) {
	t.Helper()
	r := daterange.Resolve(daterange.Filter{Preset: daterange.PresetWeek}, now)
	g := daterange.Plan(r)
	require.Equal(t, daterange.GranularityDay, g)
	return r, g
}

func statusPtr(s orderdomain.Status) *orderdomain.Status { return &s }

func pricePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func on(day int) time.Time {
	return time.Date(2025, 6, day, 12, 0, 0, 0, time.UTC)
}

func chartValue(t *testing.T, points []aggregate.ChartPoint, name string) float64 {
	t.Helper()
	for _, p := range points {
		if p.Name == name {
			return p.Value
		}
	}
	t.Fatalf("no chart point named %q", name)
	return 0
}

func TestOrders(t *testing.T) {
	r, g := weekRange(t)
	orders := []orderdomain.Order{
		{CreatedAt: on(9), ServiceType: orderdomain.ServiceAutomated, AIDataSufficient: true, PropertyType: "apartment", Municipality: "Centrum"},
		{CreatedAt: on(9), ServiceType: orderdomain.ServiceAssessor, Status: statusPtr(orderdomain.StatusPaid), PropertyType: "house", Municipality: "Centrum"},
		{CreatedAt: on(10), ServiceType: orderdomain.ServiceAssessor, Status: statusPtr(orderdomain.StatusDone), PropertyType: "apartment", Municipality: "Noord"},
		{CreatedAt: on(12), ServiceType: orderdomain.ServiceOnSite, Status: statusPtr(orderdomain.StatusFailed), Municipality: "Noord"},
		{CreatedAt: on(12), ServiceType: orderdomain.ServiceBank, PropertyType: "office"},
	}

	agg := Orders(orders, r, g)

	assert.Equal(t, 5, agg.Total)
	assert.Equal(t, float64(5), aggregate.SumValues(agg.ByStatus))
	assert.Equal(t, float64(2), chartValue(t, agg.ByStatus, "done"))
	assert.Equal(t, float64(1), chartValue(t, agg.ByStatus, "paid"))
	assert.Equal(t, float64(1), chartValue(t, agg.ByStatus, "failed"))
	assert.Equal(t, float64(1), chartValue(t, agg.ByStatus, "pending"))

	assert.Equal(t, float64(2), chartValue(t, agg.ByServiceType, "assessor"))

	// Absent dimensions land in the unspecified bucket; the breakdown
	// still partitions the input.
	assert.Equal(t, float64(1), chartValue(t, agg.ByPropertyType, Unspecified))
	assert.Equal(t, float64(5), aggregate.SumValues(agg.ByPropertyType))
	assert.Equal(t, float64(1), chartValue(t, agg.ByMunicipality, Unspecified))

	require.Len(t, agg.Timeline, 7)
	byDate := map[string]float64{}
	for _, p := range agg.Timeline {
		byDate[p.Date] = p.Value
	}
	assert.Equal(t, float64(2), byDate["2025-06-09"])
	assert.Equal(t, float64(1), byDate["2025-06-10"])
	assert.Equal(t, float64(2), byDate["2025-06-12"])
	assert.Equal(t, float64(0), byDate["2025-06-08"])
}

func TestOrders_Empty(t *testing.T) {
	r, g := weekRange(t)
	agg := Orders(nil, r, g)

	assert.Zero(t, agg.Total)
	assert.Empty(t, agg.ByStatus)
	require.Len(t, agg.Timeline, 7)
	for _, p := range agg.Timeline {
		assert.Zero(t, p.Value)
	}
}

func TestRevenue(t *testing.T) {
	r, g := weekRange(t)
	orders := []orderdomain.Order{
		{CreatedAt: on(9), ServiceType: orderdomain.ServiceAutomated, AIDataSufficient: true},
		{CreatedAt: on(10), ServiceType: orderdomain.ServiceAssessor, Status: statusPtr(orderdomain.StatusDone)},
		{CreatedAt: on(10), ServiceType: orderdomain.ServiceOnSite, Status: statusPtr(orderdomain.StatusPaid), Price: pricePtr("100.00")},
		{CreatedAt: on(12), ServiceType: orderdomain.ServiceOnSite, Status: statusPtr(orderdomain.StatusPaid)},
		// Not billable: pending and failed orders carry no revenue.
		{CreatedAt: on(12), ServiceType: orderdomain.ServiceBank, Price: pricePtr("500.00")},
		{CreatedAt: on(13), ServiceType: orderdomain.ServiceAssessor, Status: statusPtr(orderdomain.StatusFailed)},
	}

	agg := Revenue(orders, r, g, now)

	assert.Equal(t, 4, agg.Orders)
	assert.Equal(t, "138.00", agg.Total.StringFixed(2))
	assert.Equal(t, "34.50", agg.Average.StringFixed(2))

	assert.InDelta(t, 8, chartValue(t, agg.ByServiceType, "automated"), 1e-9)
	assert.InDelta(t, 30, chartValue(t, agg.ByServiceType, "assessor"), 1e-9)
	assert.InDelta(t, 100, chartValue(t, agg.ByServiceType, "onsite"), 1e-9)

	require.Len(t, agg.Timeline, 7)
	byDate := map[string]float64{}
	for _, p := range agg.Timeline {
		byDate[p.Date] = p.Value
	}
	assert.InDelta(t, 8, byDate["2025-06-09"], 1e-9)
	assert.InDelta(t, 130, byDate["2025-06-10"], 1e-9)
	assert.Zero(t, byDate["2025-06-13"])

	// One week of revenue extrapolated onto thirty days.
	assert.Equal(t, "591.43", agg.Projected30d.StringFixed(2))
}

func TestRevenue_EmptyAndProjectionGuard(t *testing.T) {
	r, g := weekRange(t)
	agg := Revenue(nil, r, g, now)
	assert.True(t, agg.Total.IsZero())
	assert.True(t, agg.Average.IsZero())
	assert.True(t, agg.Projected30d.IsZero())

	// A range that started moments ago divides by one day, not zero.
	today := daterange.Range{From: now, To: now}
	agg = Revenue([]orderdomain.Order{
		{CreatedAt: now, ServiceType: orderdomain.ServiceAutomated, AIDataSufficient: true},
	}, today, daterange.GranularityDay, now)
	assert.Equal(t, "240.00", agg.Projected30d.StringFixed(2))
}

func TestValuators(t *testing.T) {
	r, g := weekRange(t)
	orders := []orderdomain.Order{
		{CreatedAt: on(9), ValuatorCode: "V1", ServiceType: orderdomain.ServiceAssessor, Status: statusPtr(orderdomain.StatusDone)},
		{CreatedAt: on(10), ValuatorCode: "V1", ServiceType: orderdomain.ServiceAssessor, Status: statusPtr(orderdomain.StatusPaid)},
		{CreatedAt: on(12), ValuatorCode: "V1", ServiceType: orderdomain.ServiceAssessor},
		{CreatedAt: on(10), ValuatorCode: "V2", ServiceType: orderdomain.ServiceAssessor, Status: statusPtr(orderdomain.StatusDone)},
		{CreatedAt: on(11), ServiceType: orderdomain.ServiceAutomated, AIDataSufficient: true},
	}
	valuators := []orderdomain.Valuator{
		{Code: "V1", Name: "Alice"},
		{Code: "V2", Name: "Bob"},
	}

	agg := Valuators(orders, valuators, r, g)

	assert.Equal(t, 2, agg.ActiveValuators)

	require.Len(t, agg.Ranking, 3)
	assert.Equal(t, "V1", agg.Ranking[0].Code)
	assert.Equal(t, "Alice", agg.Ranking[0].Name)
	assert.Equal(t, 3, agg.Ranking[0].Total)
	assert.Equal(t, 1, agg.Ranking[0].Completed)
	assert.Equal(t, 1, agg.Ranking[0].InProgress)

	// Unassigned orders keep their own line instead of vanishing.
	codes := []string{agg.Ranking[1].Code, agg.Ranking[2].Code}
	assert.Contains(t, codes, "V2")
	assert.Contains(t, codes, Unspecified)

	assert.Equal(t, float64(3), chartValue(t, agg.Workload, "Alice"))
	assert.Equal(t, float64(1), chartValue(t, agg.Workload, "Bob"))

	require.Len(t, agg.TimelineSeries, 3)
	assert.Equal(t, "Alice", agg.TimelineSeries[0])
	require.Len(t, agg.Timeline, 7)
	for _, point := range agg.Timeline {
		require.Len(t, point.Values, 3, point.Date)
	}

	byDate := map[string]map[string]float64{}
	for _, p := range agg.Timeline {
		byDate[p.Date] = p.Values
	}
	assert.Equal(t, float64(1), byDate["2025-06-09"]["Alice"])
	assert.Equal(t, float64(0), byDate["2025-06-09"]["Bob"])
	assert.Equal(t, float64(1), byDate["2025-06-10"]["Bob"])
}

func TestValuators_RankingTieBreaksByFirstSeen(t *testing.T) {
	r, g := weekRange(t)
	orders := []orderdomain.Order{
		{CreatedAt: on(9), ValuatorCode: "V2", ServiceType: orderdomain.ServiceAssessor},
		{CreatedAt: on(10), ValuatorCode: "V1", ServiceType: orderdomain.ServiceAssessor},
	}
	agg := Valuators(orders, nil, r, g)

	require.Len(t, agg.Ranking, 2)
	assert.Equal(t, "V2", agg.Ranking[0].Code)
	// Without a reference row the code doubles as the display name.
	assert.Equal(t, "V2", agg.Ranking[0].Name)
}

func TestClients(t *testing.T) {
	r, g := weekRange(t)
	orders := []orderdomain.Order{
		{CreatedAt: on(9), ClientEmail: "a@example.com", ClientName: "Ada", ServiceType: orderdomain.ServiceAssessor, Status: statusPtr(orderdomain.StatusDone)},
		{CreatedAt: on(10), ClientEmail: "a@example.com", ClientName: "Ada", ServiceType: orderdomain.ServiceAssessor, Status: statusPtr(orderdomain.StatusPaid)},
		{CreatedAt: on(12), ClientEmail: "a@example.com", ClientName: "Ada", ServiceType: orderdomain.ServiceOnSite},
		{CreatedAt: on(10), ClientEmail: "b@example.com", ClientName: "Bo", ServiceType: orderdomain.ServiceAutomated, AIDataSufficient: true},
		{CreatedAt: on(12), ServiceType: orderdomain.ServiceBank},
	}
	clients := []orderdomain.Client{
		{Email: "old@example.com", CreatedAt: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)},
		{Email: "a@example.com", CreatedAt: on(9)},
		{Email: "b@example.com", CreatedAt: on(10)},
	}

	agg := Clients(orders, clients, 3, r, g, now)

	assert.Equal(t, 3, agg.TotalClients)
	assert.Equal(t, 2, agg.ActiveClients)
	assert.Equal(t, 2, agg.NewThisMonth)

	require.Len(t, agg.Registrations, 7)
	byDate := map[string]float64{}
	for _, p := range agg.Registrations {
		byDate[p.Date] = p.Value
	}
	assert.Equal(t, float64(1), byDate["2025-06-09"])
	assert.Equal(t, float64(1), byDate["2025-06-10"])

	// The histogram keeps its fixed bucket order.
	require.Len(t, agg.OrderFrequency, 5)
	assert.Equal(t, "1", agg.OrderFrequency[0].Name)
	assert.Equal(t, "11+", agg.OrderFrequency[4].Name)
	assert.Equal(t, float64(1), agg.OrderFrequency[0].Value) // b: one order
	assert.Equal(t, float64(1), agg.OrderFrequency[1].Value) // a: three orders

	require.Len(t, agg.TopClients, 2)
	top := agg.TopClients[0]
	assert.Equal(t, "a@example.com", top.Email)
	assert.Equal(t, "Ada", top.Name)
	assert.Equal(t, 3, top.Orders)
	// Only the paid and done orders contribute to spend.
	assert.Equal(t, "60.00", top.Spend.StringFixed(2))
}

func TestGeography(t *testing.T) {
	orders := []orderdomain.Order{
		{Municipality: "Centrum", City: "Amsterdam"},
		{Municipality: "Centrum", City: "Amsterdam"},
		{Municipality: "Noord", City: "Amsterdam"},
		{Municipality: "Centrum", City: "Utrecht"},
		{City: "Utrecht"},
	}

	agg := Geography(orders)

	assert.Equal(t, float64(3), chartValue(t, agg.TopMunicipalities, "Centrum"))
	assert.Equal(t, float64(1), chartValue(t, agg.TopMunicipalities, Unspecified))
	assert.Equal(t, float64(3), chartValue(t, agg.TopCities, "Amsterdam"))
	assert.Equal(t, 4, agg.DistinctLocations)
}
