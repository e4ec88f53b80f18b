package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// Metrics exposes the application-level instruments.
type Metrics struct {
	Registry *prometheus.Registry

	ReportBuilds *prometheus.CounterVec
	Exports      *prometheus.CounterVec
	BuildSeconds *prometheus.HistogramVec
}

func New() (*Metrics, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		Registry: registry,
		ReportBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_report_builds_total",
			Help: "Report aggregates computed, by report type.",
		}, []string{"report"}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_report_exports_total",
			Help: "Report exports served, by report type and format.",
		}, []string{"report", "format"}),
		BuildSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "backoffice_report_build_seconds",
			Help:    "Time spent building report aggregates.",
			Buckets: prometheus.DefBuckets,
		}, []string{"report"}),
	}

	registry.MustRegister(m.ReportBuilds, m.Exports, m.BuildSeconds)
	return m, nil
}

var Module = fx.Module("metrics",
	fx.Provide(New),
)
