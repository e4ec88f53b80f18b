// Package migration creates the domain tables on startup so the back
// office is usable out of the box for local and self-hosted setups.
package migration

import (
	"errors"

	orderdomain "github.com/estatehub/backoffice/internal/order/domain"
	"gorm.io/gorm"
)

func Run(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("migration database handle is required")
	}
	return conn.AutoMigrate(
		&orderdomain.Order{},
		&orderdomain.Client{},
		&orderdomain.Valuator{},
	)
}
