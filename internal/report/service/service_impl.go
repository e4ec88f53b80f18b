package service

import (
	"context"
	"fmt"
	"time"

	"github.com/estatehub/backoffice/internal/clock"
	orderdomain "github.com/estatehub/backoffice/internal/order/domain"
	"github.com/estatehub/backoffice/internal/report/build"
	"github.com/estatehub/backoffice/internal/report/daterange"
	reportdomain "github.com/estatehub/backoffice/internal/report/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// exportRecordCap bounds the raw rows fetched for export builds. The
// cap lives in the fetch (a LIMIT), not in the aggregation, so the
// bucket enumeration stays the only loop whose bound needs thought.
const exportRecordCap = 10000

type Params struct {
	fx.In

	Repo  orderdomain.Repository
	Log   *zap.Logger
	Clock clock.Clock
}

type Service struct {
	repo     orderdomain.Repository
	log      *zap.Logger
	clock    clock.Clock
	builders map[reportdomain.Type]builderFunc
}

// builderFunc assembles one aggregate from the fetched rows. Reference
// rows (clients, valuators) are fetched lazily inside the builders that
// need them.
type builderFunc func(ctx context.Context, s *Service, orders []orderdomain.Order, r daterange.Range, g daterange.Granularity, now time.Time) (any, error)

func New(p Params) reportdomain.Service {
	s := &Service{
		repo:  p.Repo,
		log:   p.Log.Named("report.service"),
		clock: p.Clock,
	}
	// Adding a report type is a row here plus a serializer entry in the
	// export registry; handlers never branch on the type tag.
	s.builders = map[reportdomain.Type]builderFunc{
		reportdomain.TypeOrders:    buildOrders,
		reportdomain.TypeRevenue:   buildRevenue,
		reportdomain.TypeValuators: buildValuators,
		reportdomain.TypeClients:   buildClients,
		reportdomain.TypeGeography: buildGeography,
	}
	return s
}

func (s *Service) Build(ctx context.Context, t reportdomain.Type, f daterange.Filter) (*reportdomain.Report, error) {
	return s.build(ctx, t, f, 0)
}

func (s *Service) BuildForExport(ctx context.Context, t reportdomain.Type, f daterange.Filter) (*reportdomain.Report, error) {
	return s.build(ctx, t, f, exportRecordCap)
}

func (s *Service) build(ctx context.Context, t reportdomain.Type, f daterange.Filter, limit int) (*reportdomain.Report, error) {
	builder, ok := s.builders[t]
	if !ok {
		return nil, reportdomain.ErrUnknownReportType
	}

	now := s.clock.Now()
	r := daterange.Resolve(f, now)
	g := daterange.Plan(r)

	orders, err := s.repo.ListOrders(ctx, r.From, r.To, orderdomain.ListOrdersFilter{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	agg, err := builder(ctx, s, orders, r, g, now)
	if err != nil {
		return nil, err
	}

	s.log.Debug("report built",
		zap.String("report", string(t)),
		zap.String("granularity", string(g)),
		zap.Int("records", len(orders)),
	)

	return &reportdomain.Report{
		Type:        t,
		Filter:      f,
		Range:       r,
		Granularity: g,
		Aggregate:   agg,
	}, nil
}

func buildOrders(_ context.Context, _ *Service, orders []orderdomain.Order, r daterange.Range, g daterange.Granularity, _ time.Time) (any, error) {
	return build.Orders(orders, r, g), nil
}

func buildRevenue(_ context.Context, _ *Service, orders []orderdomain.Order, r daterange.Range, g daterange.Granularity, now time.Time) (any, error) {
	return build.Revenue(orders, r, g, now), nil
}

func buildValuators(ctx context.Context, s *Service, orders []orderdomain.Order, r daterange.Range, g daterange.Granularity, _ time.Time) (any, error) {
	valuators, err := s.repo.ListValuators(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("fetch valuators: %w", err)
	}
	return build.Valuators(orders, valuators, r, g), nil
}

func buildClients(ctx context.Context, s *Service, orders []orderdomain.Order, r daterange.Range, g daterange.Granularity, now time.Time) (any, error) {
	clients, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch clients: %w", err)
	}
	total, err := s.repo.CountClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("count clients: %w", err)
	}
	return build.Clients(orders, clients, int(total), r, g, now), nil
}

func buildGeography(_ context.Context, _ *Service, orders []orderdomain.Order, _ daterange.Range, _ daterange.Granularity, _ time.Time) (any, error) {
	return build.Geography(orders), nil
}
