// Package rules derives an order's effective lifecycle state and
// effective price from its raw fields. Every report builder goes
// through this package; the predicates must never be re-implemented
// inline at a call site.
package rules

import (
	orderdomain "github.com/estatehub/backoffice/internal/order/domain"
	"github.com/shopspring/decimal"
)

var (
	priceAutomated = decimal.NewFromInt(8)
	priceAssessor  = decimal.NewFromInt(30)
)

// IsCompleted reports whether an order counts as done. The automated
// tier self-completes once enough source data exists, irrespective of
// its stored status.
func IsCompleted(o orderdomain.Order) bool {
	if o.ServiceType == orderdomain.ServiceAutomated && o.AIDataSufficient {
		return true
	}
	return o.Status != nil && *o.Status == orderdomain.StatusDone
}

// IsInProgress reports whether an order is paid but not yet completed.
func IsInProgress(o orderdomain.Order) bool {
	if IsCompleted(o) {
		return false
	}
	return o.Status != nil && *o.Status == orderdomain.StatusPaid
}

// IsFailed reports the terminal failed state.
func IsFailed(o orderdomain.Order) bool {
	return o.Status != nil && *o.Status == orderdomain.StatusFailed
}

// EffectiveStatus folds the derived states into the four reporting
// labels, with tier-A auto-completion folded into done. A nil stored
// status is pending.
func EffectiveStatus(o orderdomain.Order) orderdomain.Status {
	switch {
	case IsCompleted(o):
		return orderdomain.StatusDone
	case IsFailed(o):
		return orderdomain.StatusFailed
	case IsInProgress(o):
		return orderdomain.StatusPaid
	default:
		return orderdomain.StatusPending
	}
}

// CountsTowardRevenue reports whether an order's effective price may be
// summed into revenue: paid, done, or auto-completed tier A.
func CountsTowardRevenue(o orderdomain.Order) bool {
	if IsCompleted(o) {
		return true
	}
	return o.Status != nil && *o.Status == orderdomain.StatusPaid
}

// EffectivePrice returns the monetary value of an order. Automated and
// assessor tiers carry fixed prices; the quoted tiers are worth their
// recorded price, or zero until staff record one.
func EffectivePrice(serviceType orderdomain.ServiceType, explicit *decimal.Decimal) decimal.Decimal {
	switch serviceType {
	case orderdomain.ServiceAutomated:
		return priceAutomated
	case orderdomain.ServiceAssessor:
		return priceAssessor
	default:
		if explicit != nil {
			return *explicit
		}
		return decimal.Zero
	}
}

// OrderPrice is EffectivePrice applied to an order record.
func OrderPrice(o orderdomain.Order) decimal.Decimal {
	return EffectivePrice(o.ServiceType, o.Price)
}
