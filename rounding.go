package money

import "github.com/govalues/decimal"

// RoundingFunc rounds a number of minor units to a whole number.
// It is passed explicitly to [Money.Mul] and [Money.Quo] so that the
// rounding policy is visible at each call site.
// A RoundingFunc must return a decimal without significant fractional digits.
//
// The argument keeps the sign and the whole part of the exact result, while
// its fraction is condensed to a single digit: .0 when the result is exact,
// .5 on a tie, .2 below a tie and .8 above it.
// For results of 10^18 minor units or more the whole part is reduced to its
// parity, so a RoundingFunc must also satisfy f(x+2) = f(x)+2.
// [Floor], [Ceil], [Trunc] and [HalfEven] meet these requirements.
type RoundingFunc func(d decimal.Decimal) decimal.Decimal

// Floor rounds toward negative infinity.
func Floor(d decimal.Decimal) decimal.Decimal {
	return d.Floor(0)
}

// Ceil rounds toward positive infinity.
func Ceil(d decimal.Decimal) decimal.Decimal {
	return d.Ceil(0)
}

// Trunc rounds toward zero.
func Trunc(d decimal.Decimal) decimal.Decimal {
	return d.Trunc(0)
}

// HalfEven rounds to the nearest whole number, ties to even (banker's rounding).
func HalfEven(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}
