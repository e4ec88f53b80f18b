package rules

import (
	"testing"

	orderdomain "github.com/estatehub/backoffice/internal/order/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func statusPtr(s orderdomain.Status) *orderdomain.Status { return &s }

func TestEffectivePrice(t *testing.T) {
	quoted := decimal.RequireFromString("150.00")

	tests := []struct {
		name        string
		serviceType orderdomain.ServiceType
		explicit    *decimal.Decimal
		want        string
	}{
		{"automated ignores explicit", orderdomain.ServiceAutomated, &quoted, "8"},
		{"automated without price", orderdomain.ServiceAutomated, nil, "8"},
		{"assessor fixed", orderdomain.ServiceAssessor, nil, "30"},
		{"onsite quoted", orderdomain.ServiceOnSite, &quoted, "150"},
		{"onsite unquoted", orderdomain.ServiceOnSite, nil, "0"},
		{"bank quoted", orderdomain.ServiceBank, &quoted, "150"},
		{"bank unquoted", orderdomain.ServiceBank, nil, "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EffectivePrice(tc.serviceType, tc.explicit)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s", got)
		})
	}
}

func TestIsCompleted(t *testing.T) {
	// Tier A completes on data sufficiency alone, whatever the stored status says.
	assert.True(t, IsCompleted(orderdomain.Order{
		ServiceType:      orderdomain.ServiceAutomated,
		AIDataSufficient: true,
	}))
	assert.True(t, IsCompleted(orderdomain.Order{
		ServiceType:      orderdomain.ServiceAutomated,
		AIDataSufficient: true,
		Status:           statusPtr(orderdomain.StatusFailed),
	}))

	assert.False(t, IsCompleted(orderdomain.Order{
		ServiceType: orderdomain.ServiceAutomated,
	}))
	assert.True(t, IsCompleted(orderdomain.Order{
		ServiceType: orderdomain.ServiceAssessor,
		Status:      statusPtr(orderdomain.StatusDone),
	}))
	assert.False(t, IsCompleted(orderdomain.Order{
		ServiceType: orderdomain.ServiceAssessor,
		Status:      statusPtr(orderdomain.StatusPaid),
	}))
	assert.False(t, IsCompleted(orderdomain.Order{ServiceType: orderdomain.ServiceBank}))
}

func TestIsInProgress(t *testing.T) {
	assert.True(t, IsInProgress(orderdomain.Order{
		ServiceType: orderdomain.ServiceOnSite,
		Status:      statusPtr(orderdomain.StatusPaid),
	}))

	// A completed order is never in progress, even while marked paid.
	assert.False(t, IsInProgress(orderdomain.Order{
		ServiceType:      orderdomain.ServiceAutomated,
		AIDataSufficient: true,
		Status:           statusPtr(orderdomain.StatusPaid),
	}))
	assert.False(t, IsInProgress(orderdomain.Order{ServiceType: orderdomain.ServiceOnSite}))
}

func TestEffectiveStatus(t *testing.T) {
	tests := []struct {
		name  string
		order orderdomain.Order
		want  orderdomain.Status
	}{
		{"nil status is pending", orderdomain.Order{ServiceType: orderdomain.ServiceBank}, orderdomain.StatusPending},
		{"pending stays pending", orderdomain.Order{ServiceType: orderdomain.ServiceBank, Status: statusPtr(orderdomain.StatusPending)}, orderdomain.StatusPending},
		{"paid maps to paid", orderdomain.Order{ServiceType: orderdomain.ServiceBank, Status: statusPtr(orderdomain.StatusPaid)}, orderdomain.StatusPaid},
		{"done maps to done", orderdomain.Order{ServiceType: orderdomain.ServiceBank, Status: statusPtr(orderdomain.StatusDone)}, orderdomain.StatusDone},
		{"failed maps to failed", orderdomain.Order{ServiceType: orderdomain.ServiceBank, Status: statusPtr(orderdomain.StatusFailed)}, orderdomain.StatusFailed},
		{"auto-completion folds into done", orderdomain.Order{ServiceType: orderdomain.ServiceAutomated, AIDataSufficient: true}, orderdomain.StatusDone},
		{"auto-completion beats failed", orderdomain.Order{ServiceType: orderdomain.ServiceAutomated, AIDataSufficient: true, Status: statusPtr(orderdomain.StatusFailed)}, orderdomain.StatusDone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EffectiveStatus(tc.order))
		})
	}
}

func TestCountsTowardRevenue(t *testing.T) {
	assert.True(t, CountsTowardRevenue(orderdomain.Order{
		ServiceType: orderdomain.ServiceOnSite,
		Status:      statusPtr(orderdomain.StatusPaid),
	}))
	assert.True(t, CountsTowardRevenue(orderdomain.Order{
		ServiceType: orderdomain.ServiceAssessor,
		Status:      statusPtr(orderdomain.StatusDone),
	}))
	assert.True(t, CountsTowardRevenue(orderdomain.Order{
		ServiceType:      orderdomain.ServiceAutomated,
		AIDataSufficient: true,
	}))

	assert.False(t, CountsTowardRevenue(orderdomain.Order{ServiceType: orderdomain.ServiceBank}))
	assert.False(t, CountsTowardRevenue(orderdomain.Order{
		ServiceType: orderdomain.ServiceBank,
		Status:      statusPtr(orderdomain.StatusPending),
	}))
	assert.False(t, CountsTowardRevenue(orderdomain.Order{
		ServiceType: orderdomain.ServiceBank,
		Status:      statusPtr(orderdomain.StatusFailed),
	}))
}

func TestOrderPrice(t *testing.T) {
	quoted := decimal.RequireFromString("420.50")
	o := orderdomain.Order{ServiceType: orderdomain.ServiceBank, Price: &quoted}
	assert.True(t, OrderPrice(o).Equal(quoted))
}
