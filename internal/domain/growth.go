package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Growth is the percentage change from previous to current, rounded to two decimals.
// A previous value that is zero or negative has no meaningful baseline and yields 0.
func Growth(current, previous decimal.Decimal) float64 {
	if previous.Sign() <= 0 {
		return 0
	}

	return current.Sub(previous).Div(previous).Mul(hundred).Round(2).InexactFloat64()
}

func GrowthInt(current, previous int64) float64 {
	return Growth(decimal.NewFromInt(current), decimal.NewFromInt(previous))
}

// Percentage returns part as a share of total, rounded to two decimals. Empty totals yield 0.
func Percentage(part, total decimal.Decimal) float64 {
	if total.Sign() <= 0 {
		return 0
	}

	return part.Div(total).Mul(hundred).Round(2).InexactFloat64()
}

func PercentageInt(part, total int64) float64 {
	return Percentage(decimal.NewFromInt(part), decimal.NewFromInt(total))
}

// Money converts an exact amount to the two decimal float the dashboards consume.
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Average divides total by count, returning zero when there is nothing to divide by.
func Average(total decimal.Decimal, count int64) float64 {
	if count <= 0 {
		return 0
	}

	return Money(total.Div(decimal.NewFromInt(count)))
}
