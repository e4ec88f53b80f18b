// Package seed populates demo orders, clients and valuators for local
// development so the reports have something to show.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	orderdomain "github.com/estatehub/backoffice/internal/order/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var demoValuators = []struct {
	code string
	name string
}{
	{"JK", "Janis Kalnins"},
	{"AB", "Anna Berzina"},
	{"MO", "Martins Ozols"},
}

var demoLocations = []struct {
	municipality string
	city         string
}{
	{"Riga", "Riga"},
	{"Marupe", "Marupe"},
	{"Ogre", "Ogre"},
	{"Jurmala", "Jurmala"},
}

// EnsureDemoData seeds demo rows once; a populated orders table leaves
// the database untouched.
func EnsureDemoData(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&orderdomain.Order{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, v := range demoValuators {
			if err := tx.Create(&orderdomain.Valuator{
				ID:     node.Generate(),
				Code:   v.code,
				Name:   v.name,
				Active: true,
			}).Error; err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		serviceTypes := []orderdomain.ServiceType{
			orderdomain.ServiceAutomated,
			orderdomain.ServiceAssessor,
			orderdomain.ServiceOnSite,
			orderdomain.ServiceBank,
		}
		statuses := []orderdomain.Status{
			orderdomain.StatusPending,
			orderdomain.StatusPaid,
			orderdomain.StatusDone,
		}

		for i := 0; i < 60; i++ {
			email := fmt.Sprintf("client%02d@example.com", i%12)
			name := fmt.Sprintf("Demo Client %02d", i%12)
			created := now.AddDate(0, 0, -(i % 45))

			if i < 12 {
				if err := tx.Create(&orderdomain.Client{
					ID:        node.Generate(),
					Email:     email,
					Name:      name,
					CreatedAt: created,
				}).Error; err != nil {
					return err
				}
			}

			serviceType := serviceTypes[i%len(serviceTypes)]
			status := statuses[i%len(statuses)]
			location := demoLocations[i%len(demoLocations)]

			ord := orderdomain.Order{
				ID:               node.Generate(),
				CreatedAt:        created,
				ServiceType:      serviceType,
				Status:           &status,
				AIDataSufficient: i%3 == 0,
				ValuatorCode:     demoValuators[i%len(demoValuators)].code,
				Municipality:     location.municipality,
				City:             location.city,
				PropertyType:     []string{"apartment", "house", "land"}[i%3],
				ClientEmail:      email,
				ClientName:       name,
			}
			if serviceType == orderdomain.ServiceOnSite || serviceType == orderdomain.ServiceBank {
				price := decimal.NewFromInt(int64(60 + 10*(i%5)))
				ord.Price = &price
			}
			if err := tx.Create(&ord).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
