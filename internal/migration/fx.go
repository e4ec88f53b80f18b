package migration

import (
	"github.com/estatehub/backoffice/internal/config"
	"github.com/estatehub/backoffice/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if err := Run(conn); err != nil {
			return err
		}
		if cfg.DevSeed {
			return seed.EnsureDemoData(conn)
		}
		return nil
	}),
)
