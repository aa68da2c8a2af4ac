package utils

import (
	"github.com/shopspring/decimal"
)

// CurrencyDecimals is the number of fractional digits every amount is shown with.
const CurrencyDecimals = 2

// FormatAmount renders an amount with exactly two decimal places, e.g. 6.5 → "6.50".
//
// Go Learning Note — "github.com/shopspring/decimal":
// float64 cannot represent most decimal fractions exactly (0.1 + 0.2 !=
// 0.3). For money, Go projects usually either store integer cents or use an
// arbitrary-precision decimal type. shopspring/decimal is the common choice:
// values are immutable, arithmetic methods return new values, and
// StringFixed rounds half away from zero to the requested precision.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(CurrencyDecimals)
}

// FormatDecimal renders a decimal amount with two decimal places.
func FormatDecimal(amount decimal.Decimal) string {
	return amount.StringFixed(CurrencyDecimals)
}
