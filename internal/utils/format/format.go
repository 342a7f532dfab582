package format

import (
	"fmt"
	"math"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/songzhibin97/cosmoboard/internal/models"
)

// Placeholder 未知数值的显示符号
const Placeholder = "-"

const defaultPrecision = 2

const (
	million  = 1_000_000
	thousand = 1_000
)

// FormatCurrency formats an amount as dollars, scaled to M or K by magnitude.
// precision defaults to 2.
func FormatCurrency(amount models.Value, precision ...int) string {
	v, ok := amount.Float()
	if !ok {
		return Placeholder
	}

	places := defaultPrecision
	if len(precision) > 0 && precision[0] >= 0 {
		places = precision[0]
	}

	switch {
	case v >= million:
		return "$" + fixed(v/million, places) + "M"
	case v >= thousand:
		return "$" + fixed(v/thousand, places) + "K"
	default:
		return "$" + fixed(v, places)
	}
}

// FormatPrice formats a spot price with four decimals and no scaling.
func FormatPrice(price models.Value) string {
	v, ok := price.Float()
	if !ok {
		return Placeholder
	}
	return "$" + fixed(v, 4)
}

// FormatPercent renders a signed change as an HTML span tagged positive or negative.
// Zero counts as positive.
func FormatPercent(change models.Value) string {
	v, ok := change.Float()
	if !ok {
		return Placeholder
	}

	sign, class := "", "negative"
	if v >= 0 {
		sign, class = "+", "positive"
	}
	return fmt.Sprintf(`<span class="%s">%s%s%%</span>`, class, sign, fixed(v, 2))
}

// fixed rounds the exact binary value of v, not its shortest decimal form,
// so 1.005 (stored as 1.00499...) becomes "1.00".
func fixed(v float64, places int) string {
	return exactDecimal(v).StringFixed(int32(places))
}

func exactDecimal(v float64) decimal.Decimal {
	if v == 0 {
		return decimal.Zero
	}

	// v = mant * 2^exp，mant 为 53 位整数
	frac, exp := math.Frexp(v)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53

	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	// mant * 2^exp == mant * 5^-exp * 10^exp
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(five.Mul(five, mant), int32(exp))
}

func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}
