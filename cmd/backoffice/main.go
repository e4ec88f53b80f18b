package main

import (
	"github.com/estatehub/backoffice/internal/clock"
	"github.com/estatehub/backoffice/internal/config"
	"github.com/estatehub/backoffice/internal/logger"
	"github.com/estatehub/backoffice/internal/metrics"
	"github.com/estatehub/backoffice/internal/migration"
	"github.com/estatehub/backoffice/internal/order"
	"github.com/estatehub/backoffice/internal/report"
	"github.com/estatehub/backoffice/internal/server"
	"github.com/estatehub/backoffice/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		clock.Module,
		db.Module,
		metrics.Module,

		// Functional domains
		order.Module,
		report.Module,
		migration.Module,

		server.Module,
	)
	app.Run()
}
