package domain

import (
	"context"

	"github.com/estatehub/backoffice/internal/report/daterange"
)

// Service builds report aggregates on demand from the order store.
type Service interface {
	// Build computes the report for on-screen display.
	Build(ctx context.Context, t Type, f daterange.Filter) (*Report, error)
	// BuildForExport is Build with the raw record fetch capped, to
	// bound export latency and memory.
	BuildForExport(ctx context.Context, t Type, f daterange.Filter) (*Report, error)
}
