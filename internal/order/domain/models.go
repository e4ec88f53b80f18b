package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// ServiceType is one of the four fixed service tiers.
type ServiceType string

const (
	// ServiceAutomated is the fixed-price automated valuation (tier A).
	ServiceAutomated ServiceType = "automated"
	// ServiceAssessor is the assessor-set valuation (tier B).
	ServiceAssessor ServiceType = "assessor"
	// ServiceOnSite is the individually quoted on-site price adjustment (tier C).
	ServiceOnSite ServiceType = "onsite"
	// ServiceBank is the individually quoted bank valuation (tier D).
	ServiceBank ServiceType = "bank"
)

// Status is the raw stored lifecycle field of an order. The effective
// lifecycle state is always derived from it plus the service tier; see
// internal/report/rules.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

// Order is one valuation order as stored. Status and Price are nullable:
// freshly submitted orders carry neither, and quoted tiers have no price
// until staff record one.
type Order struct {
	ID               snowflake.ID     `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time        `gorm:"index" json:"created_at"`
	ServiceType      ServiceType      `gorm:"index" json:"service_type"`
	Status           *Status          `json:"status,omitempty"`
	AIDataSufficient bool             `gorm:"column:ai_data_sufficient" json:"ai_data_sufficient"`
	Price            *decimal.Decimal `gorm:"type:numeric(12,2)" json:"price,omitempty"`
	ValuatorCode     string           `gorm:"index" json:"valuator_code"`
	Municipality     string           `json:"municipality"`
	City             string           `json:"city"`
	PropertyType     string           `json:"property_type"`
	ClientEmail      string           `gorm:"index" json:"client_email"`
	ClientName       string           `json:"client_name"`
}

func (Order) TableName() string { return "orders" }

// Client is a registered client account.
type Client struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Email     string       `gorm:"uniqueIndex" json:"email"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `gorm:"index" json:"created_at"`
}

func (Client) TableName() string { return "clients" }

// Valuator is a staff valuator reference row.
type Valuator struct {
	ID     snowflake.ID `gorm:"primaryKey" json:"id"`
	Code   string       `gorm:"uniqueIndex" json:"code"`
	Name   string       `json:"name"`
	Active bool         `json:"active"`
}

func (Valuator) TableName() string { return "valuators" }
