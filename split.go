package money

import (
	"fmt"

	"github.com/govalues/decimal"
	bigdec "github.com/shopspring/decimal"
)

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice,
// one minor unit each.
// See also method [Money.WeightedSplit].
//
// Split returns an error if the number of parts is less than 1.
func (a Money) Split(parts int) ([]Money, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Money) split(parts int) ([]Money, error) {
	if parts < 1 {
		return nil, fmt.Errorf("%w: number of parts must be positive", ErrInvalidCount)
	}
	weights := make([]bigdec.Decimal, parts)
	for i := range weights {
		weights[i] = bigdec.NewFromInt(1)
	}
	return a.allocate(weights)
}

// WeightedSplit returns a slice of amounts proportional to the ratios that
// sum up to the original amount.
// The i-th part receives the amount multiplied by ratios[i] / sum(ratios),
// rounded toward zero. The minor units lost to rounding are then handed out
// one at a time to the parts in input order, so the first ratios absorb the
// remainder. For example, splitting 10.00 by [1, 1, 1] gives
// [3.34, 3.33, 3.33].
// Negative amounts are split by magnitude and every part keeps the sign.
//
// WeightedSplit returns an error if:
//   - no ratios are given;
//   - any ratio is negative;
//   - all ratios are zero.
func (a Money) WeightedSplit(ratios ...int64) ([]Money, error) {
	weights := make([]bigdec.Decimal, len(ratios))
	for i, r := range ratios {
		weights[i] = bigdec.NewFromInt(r)
	}
	res, err := a.allocate(weights)
	if err != nil {
		return nil, fmt.Errorf("splitting %v by %v: %w", a, ratios, err)
	}
	return res, nil
}

// WeightedSplitDec is like [Money.WeightedSplit] but accepts fractional ratios,
// for example percentages such as 33.5 and 66.5.
func (a Money) WeightedSplitDec(ratios ...decimal.Decimal) ([]Money, error) {
	res, err := a.weightedSplitDec(ratios)
	if err != nil {
		return nil, fmt.Errorf("splitting %v by %v: %w", a, ratios, err)
	}
	return res, nil
}

func (a Money) weightedSplitDec(ratios []decimal.Decimal) ([]Money, error) {
	weights := make([]bigdec.Decimal, len(ratios))
	for i, r := range ratios {
		weights[i] = toBig(r)
	}
	return a.allocate(weights)
}

// allocate distributes the magnitude of the amount across the weights.
//
// Each provisional share is floor(|a| * w / total), computed without
// rounding. Every share loses less than one minor unit, so the remainder
// is always within [0, len(weights)) and a single pass over the leading
// shares hands it out.
func (a Money) allocate(weights []bigdec.Decimal) ([]Money, error) {
	if !a.curr.IsValid() {
		return nil, ErrMissingOperand
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: at least one ratio is required", ErrInvalidRatios)
	}
	total := bigdec.Zero
	for i, w := range weights {
		if w.IsNegative() {
			return nil, fmt.Errorf("%w: ratio %v at position %v is negative", ErrInvalidRatios, w, i)
		}
		total = total.Add(w)
	}
	if total.IsZero() {
		return nil, fmt.Errorf("%w: ratios sum up to zero", ErrInvalidRatios)
	}

	// Provisional shares
	whole := bigdec.NewFromInt(a.units).Abs()
	rem := whole
	shares := make([]bigdec.Decimal, len(weights))
	for i, w := range weights {
		shares[i], _ = whole.Mul(w).QuoRem(total, 0)
		rem = rem.Sub(shares[i])
	}

	// Remainder distribution
	one := bigdec.NewFromInt(1)
	for i := 0; rem.IsPositive(); i++ {
		shares[i] = shares[i].Add(one)
		rem = rem.Sub(one)
	}

	res := make([]Money, len(shares))
	for i, s := range shares {
		if a.IsNeg() {
			s = s.Neg()
		}
		res[i] = newMoneyUnsafe(a.curr, s.IntPart())
	}
	return res, nil
}
