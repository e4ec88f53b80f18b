package export

import (
	"github.com/estatehub/backoffice/internal/report/aggregate"
	reportdomain "github.com/estatehub/backoffice/internal/report/domain"
)

func chartRows(points []aggregate.ChartPoint, render func(float64) string) [][]string {
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.Name, render(p.Value)})
	}
	return rows
}

func seriesRows(points []aggregate.SeriesPoint, render func(float64) string) [][]string {
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.Date, render(p.Value)})
	}
	return rows
}

func composeOrders(rep *reportdomain.Report) (Document, error) {
	agg, ok := rep.Aggregate.(reportdomain.OrdersAggregate)
	if !ok {
		return Document{}, aggregateError(rep.Type, rep.Aggregate)
	}

	return Document{
		Title:  "Orders report",
		Period: periodText(rep.Range),
		Cards: []Card{
			{Label: "Total orders", Value: Int(agg.Total)},
		},
		Tables: []Table{
			{Title: "Orders by status", Header: []string{"Status", "Orders"}, Rows: chartRows(agg.ByStatus, Count)},
			{Title: "Orders by service", Header: []string{"Service", "Orders"}, Rows: chartRows(agg.ByServiceType, Count)},
			{Title: "Top property types", Header: []string{"Property type", "Orders"}, Rows: chartRows(agg.ByPropertyType, Count)},
			{Title: "Top municipalities", Header: []string{"Municipality", "Orders"}, Rows: chartRows(agg.ByMunicipality, Count)},
			{Title: "Orders over time", Header: []string{"Date", "Orders"}, Rows: seriesRows(agg.Timeline, Count), PageCap: 31},
		},
	}, nil
}

func composeRevenue(rep *reportdomain.Report) (Document, error) {
	agg, ok := rep.Aggregate.(reportdomain.RevenueAggregate)
	if !ok {
		return Document{}, aggregateError(rep.Type, rep.Aggregate)
	}

	return Document{
		Title:  "Revenue report",
		Period: periodText(rep.Range),
		Cards: []Card{
			{Label: "Total revenue", Value: Money(agg.Total)},
			{Label: "Average order value", Value: Money(agg.Average)},
			{Label: "Billable orders", Value: Int(agg.Orders)},
			{Label: "Projected 30-day revenue", Value: Money(agg.Projected30d)},
		},
		Tables: []Table{
			{Title: "Revenue by service", Header: []string{"Service", "Revenue"}, Rows: chartRows(agg.ByServiceType, MoneyValue)},
			{Title: "Revenue over time", Header: []string{"Date", "Revenue"}, Rows: seriesRows(agg.Timeline, MoneyValue), PageCap: 31},
		},
	}, nil
}

func composeValuators(rep *reportdomain.Report) (Document, error) {
	agg, ok := rep.Aggregate.(reportdomain.ValuatorsAggregate)
	if !ok {
		return Document{}, aggregateError(rep.Type, rep.Aggregate)
	}

	ranking := make([][]string, 0, len(agg.Ranking))
	for _, stats := range agg.Ranking {
		ranking = append(ranking, []string{
			stats.Name,
			stats.Code,
			Int(stats.Total),
			Int(stats.Completed),
			Int(stats.InProgress),
		})
	}

	timelineHeader := append([]string{"Date"}, agg.TimelineSeries...)
	timeline := make([][]string, 0, len(agg.Timeline))
	for _, point := range agg.Timeline {
		row := make([]string, 0, len(timelineHeader))
		row = append(row, point.Date)
		for _, name := range agg.TimelineSeries {
			row = append(row, Count(point.Values[name]))
		}
		timeline = append(timeline, row)
	}

	return Document{
		Title:  "Valuator workload report",
		Period: periodText(rep.Range),
		Cards: []Card{
			{Label: "Active valuators", Value: Int(agg.ActiveValuators)},
		},
		Tables: []Table{
			{Title: "Valuator ranking", Header: []string{"Valuator", "Code", "Assigned", "Completed", "In progress"}, Rows: ranking, PageCap: 10},
			{Title: "Orders per valuator", Header: []string{"Valuator", "Orders"}, Rows: chartRows(agg.Workload, Count), PageCap: 15},
			{Title: "Top valuators over time", Header: timelineHeader, Rows: timeline, PageCap: 31},
		},
	}, nil
}

func composeClients(rep *reportdomain.Report) (Document, error) {
	agg, ok := rep.Aggregate.(reportdomain.ClientsAggregate)
	if !ok {
		return Document{}, aggregateError(rep.Type, rep.Aggregate)
	}

	top := make([][]string, 0, len(agg.TopClients))
	for _, stats := range agg.TopClients {
		top = append(top, []string{
			stats.Name,
			stats.Email,
			Int(stats.Orders),
			Money(stats.Spend),
		})
	}

	return Document{
		Title:  "Client activity report",
		Period: periodText(rep.Range),
		Cards: []Card{
			{Label: "Registered clients", Value: Int(agg.TotalClients)},
			{Label: "Active clients", Value: Int(agg.ActiveClients)},
			{Label: "New this month", Value: Int(agg.NewThisMonth)},
		},
		Tables: []Table{
			{Title: "Registrations over time", Header: []string{"Date", "Registrations"}, Rows: seriesRows(agg.Registrations, Count), PageCap: 31},
			{Title: "Orders per client", Header: []string{"Orders per client", "Clients"}, Rows: chartRows(agg.OrderFrequency, Count)},
			{Title: "Top clients", Header: []string{"Client", "Email", "Orders", "Spend"}, Rows: top, PageCap: 10},
		},
	}, nil
}

func composeGeography(rep *reportdomain.Report) (Document, error) {
	agg, ok := rep.Aggregate.(reportdomain.GeographyAggregate)
	if !ok {
		return Document{}, aggregateError(rep.Type, rep.Aggregate)
	}

	return Document{
		Title:  "Geography report",
		Period: periodText(rep.Range),
		Cards: []Card{
			{Label: "Distinct locations", Value: Int(agg.DistinctLocations)},
		},
		Tables: []Table{
			{Title: "Top municipalities", Header: []string{"Municipality", "Orders"}, Rows: chartRows(agg.TopMunicipalities, Count), PageCap: 15},
			{Title: "Top cities", Header: []string{"City", "Orders"}, Rows: chartRows(agg.TopCities, Count)},
		},
	}, nil
}
