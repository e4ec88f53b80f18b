package domain

import (
	"errors"
	"strings"

	"github.com/estatehub/backoffice/internal/report/aggregate"
	"github.com/estatehub/backoffice/internal/report/daterange"
	"github.com/shopspring/decimal"
)

// Type identifies one of the five report types.
type Type string

const (
	TypeOrders    Type = "orders"
	TypeRevenue   Type = "revenue"
	TypeValuators Type = "valuators"
	TypeClients   Type = "clients"
	TypeGeography Type = "geography"
)

var ErrUnknownReportType = errors.New("unknown_report_type")

// ParseType validates a report type tag from the request path.
func ParseType(raw string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(raw))) {
	case TypeOrders:
		return TypeOrders, nil
	case TypeRevenue:
		return TypeRevenue, nil
	case TypeValuators:
		return TypeValuators, nil
	case TypeClients:
		return TypeClients, nil
	case TypeGeography:
		return TypeGeography, nil
	default:
		return "", ErrUnknownReportType
	}
}

// Report is one computed report: the resolved request parameters plus
// the typed aggregate. It is freshly built per request and never cached.
type Report struct {
	Type        Type                  `json:"type"`
	Filter      daterange.Filter      `json:"filter"`
	Range       daterange.Range       `json:"range"`
	Granularity daterange.Granularity `json:"granularity"`
	Aggregate   any                   `json:"aggregate"`
}

// OrdersAggregate is the order-volume report.
type OrdersAggregate struct {
	Total          int                     `json:"total"`
	ByStatus       []aggregate.ChartPoint  `json:"by_status"`
	ByServiceType  []aggregate.ChartPoint  `json:"by_service_type"`
	ByPropertyType []aggregate.ChartPoint  `json:"by_property_type"`
	ByMunicipality []aggregate.ChartPoint  `json:"by_municipality"`
	Timeline       []aggregate.SeriesPoint `json:"timeline"`
}

// RevenueAggregate is the revenue report. Only paid, done or
// auto-completed orders contribute.
type RevenueAggregate struct {
	Total         decimal.Decimal         `json:"total"`
	Average       decimal.Decimal         `json:"average"`
	Orders        int                     `json:"orders"`
	ByServiceType []aggregate.ChartPoint  `json:"by_service_type"`
	Timeline      []aggregate.SeriesPoint `json:"timeline"`
	Projected30d  decimal.Decimal         `json:"projected_30d"`
}

// ValuatorStats is one valuator's workload line.
type ValuatorStats struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	InProgress int    `json:"in_progress"`
}

// ValuatorsAggregate is the valuator workload report.
type ValuatorsAggregate struct {
	ActiveValuators int                    `json:"active_valuators"`
	Ranking         []ValuatorStats        `json:"ranking"`
	Workload        []aggregate.ChartPoint `json:"workload"`
	// TimelineSeries lists the series names carried by Timeline in
	// ranking order, so tabular renderings stay deterministic.
	TimelineSeries []string               `json:"timeline_series"`
	Timeline       []aggregate.MultiPoint `json:"timeline"`
}

// ClientStats is one client's activity line.
type ClientStats struct {
	Email  string          `json:"email"`
	Name   string          `json:"name"`
	Orders int             `json:"orders"`
	Spend  decimal.Decimal `json:"spend"`
}

// ClientsAggregate is the client activity report.
type ClientsAggregate struct {
	TotalClients   int                     `json:"total_clients"`
	ActiveClients  int                     `json:"active_clients"`
	NewThisMonth   int                     `json:"new_this_month"`
	Registrations  []aggregate.SeriesPoint `json:"registrations"`
	OrderFrequency []aggregate.ChartPoint  `json:"order_frequency"`
	TopClients     []ClientStats           `json:"top_clients"`
}

// GeographyAggregate is the geography report.
type GeographyAggregate struct {
	TopMunicipalities []aggregate.ChartPoint `json:"top_municipalities"`
	TopCities         []aggregate.ChartPoint `json:"top_cities"`
	DistinctLocations int                    `json:"distinct_locations"`
}
