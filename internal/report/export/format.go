package export

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Money renders a currency amount with exactly two decimal places. Both
// serializers must use it for every monetary field.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// MoneyValue renders a chart value that carries currency.
func MoneyValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Count renders a chart value that carries a count.
func Count(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Int renders a scalar count.
func Int(v int) string {
	return strconv.Itoa(v)
}
