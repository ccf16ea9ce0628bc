package money

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/govalues/decimal"
	bigdec "github.com/shopspring/decimal"
)

// Money type represents a monetary amount as a whole number of minor units
// of its currency (e.g. cents, pennies, fens).
// Its zero value has no currency and is rejected as an operand.
// Money is immutable and safe for concurrent use by multiple goroutines:
// every operation returns a new value.
type Money struct {
	curr  Currency // currency of the amount
	units int64    // amount in minor units
}

// newMoneyUnsafe creates a new amount without checking the currency.
// Use it only if you are absolutely sure that the arguments are valid.
func newMoneyUnsafe(c Currency, units int64) Money {
	return Money{curr: c, units: units}
}

// NewMoney returns an amount of units minor units of the currency.
// For example, NewMoney(499, USD()) is 4.99 US dollars.
//
// NewMoney returns an error if the currency is the zero value.
func NewMoney(units int64, curr Currency) (Money, error) {
	if !curr.IsValid() {
		return Money{}, fmt.Errorf("creating amount: %w", ErrInvalidCurrency)
	}
	return newMoneyUnsafe(curr, units), nil
}

// MustNewMoney is like [NewMoney] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewMoney(units int64, curr Currency) Money {
	m, err := NewMoney(units, curr)
	if err != nil {
		panic(fmt.Sprintf("NewMoney(%v, %q) failed: %v", units, curr, err))
	}
	return m
}

// NewMoneyFromFloat64 converts a float holding a number of minor units
// to an amount.
//
// NewMoneyFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the float has a fractional part;
//   - the float is outside the range of int64;
//   - the currency is the zero value.
func NewMoneyFromFloat64(units float64, curr Currency) (Money, error) {
	switch {
	case math.IsNaN(units) || math.IsInf(units, 0):
		return Money{}, fmt.Errorf("converting float: %w: special value %v", ErrInvalidAmount, units)
	case units != math.Trunc(units):
		return Money{}, fmt.Errorf("converting float: %w: %v is not a whole number of minor units", ErrInvalidAmount, units)
	case units < math.MinInt64 || units >= math.MaxInt64+1:
		return Money{}, fmt.Errorf("converting float: %w: %v is out of range", ErrInvalidAmount, units)
	}
	return NewMoney(int64(units), curr)
}

// NewMoneyFromDecimal converts a decimal holding a number of minor units
// to an amount.
//
// NewMoneyFromDecimal returns an error if:
//   - the decimal has significant digits after the decimal point;
//   - the decimal is outside the range of int64;
//   - the currency is the zero value.
func NewMoneyFromDecimal(units decimal.Decimal, curr Currency) (Money, error) {
	u, err := toUnits(units)
	if err != nil {
		return Money{}, fmt.Errorf("converting decimal: %w", err)
	}
	return NewMoney(u, curr)
}

// ParseMoney converts a currency code and a decimal string in major units
// to an amount.
// For example, ParseMoney("USD", "4.99") is 499 cents.
//
// ParseMoney returns an error if:
//   - the currency code is not registered in the default registry;
//   - the string is not a valid decimal;
//   - the string has more digits after the decimal point than the currency scale;
//   - the result is outside the range of int64 minor units.
func ParseMoney(curr, amount string) (Money, error) {
	// Currency
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Decimal
	d, err := decimal.Parse(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w: %w", ErrInvalidAmount, err)
	}
	if d.MinScale() > c.Scale() {
		return Money{}, fmt.Errorf("parsing amount: %w: %q has more than %v digits after the decimal point", ErrInvalidAmount, amount, c.Scale())
	}
	// Minor units
	d, err = d.Mul(pow10(c.Scale()))
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w: %w", ErrAmountOverflow, err)
	}
	return NewMoneyFromDecimal(d, c)
}

// MustParseMoney is like [ParseMoney] but panics if any of the strings cannot be parsed.
func MustParseMoney(curr, amount string) Money {
	m, err := ParseMoney(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q, %q) failed: %v", curr, amount, err))
	}
	return m
}

// toUnits converts an integral decimal to int64.
func toUnits(d decimal.Decimal) (int64, error) {
	if !d.IsInt() {
		return 0, fmt.Errorf("%w: %v is not a whole number of minor units", ErrInvalidAmount, d)
	}
	u, _, ok := d.Int64(0)
	if !ok {
		return 0, fmt.Errorf("%w: %v does not fit into int64", ErrAmountOverflow, d)
	}
	return u, nil
}

// pow10 returns 10^n, n must be within [0, 18].
func pow10(n int) decimal.Decimal {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return decimal.MustNew(p, 0)
}

// MinorUnits returns the amount in minor units of its currency.
func (a Money) MinorUnits() int64 {
	return a.units
}

// Curr returns the currency of the amount.
func (a Money) Curr() Currency {
	return a.curr
}

// Decimal returns the amount in major units, for example 4.99 for 499 cents.
// The result always has the scale of the currency.
func (a Money) Decimal() decimal.Decimal {
	return decimal.MustNew(a.units, a.curr.Scale())
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Money) Sign() int {
	switch {
	case a.units < 0:
		return -1
	case a.units > 0:
		return 1
	}
	return 0
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Money) IsZero() bool {
	return a.units == 0
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Money) IsNeg() bool {
	return a.units < 0
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Money) IsPos() bool {
	return a.units > 0
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Currency.Equal].
func (a Money) SameCurr(b Money) bool {
	return a.Curr().Equal(b.Curr())
}

// Equal returns true if amounts have the same number of minor units and
// the same currency.
// See also function [Equal].
func (a Money) Equal(b Money) bool {
	return a.units == b.units && a.SameCurr(b)
}

// Equal is a nil-safe version of [Money.Equal].
// It returns true if both amounts are nil and false if only one of them is.
func Equal(a, b *Money) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are denominated in different currencies.
func (a Money) Cmp(b Money) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	switch {
	case a.units < b.units:
		return -1, nil
	case a.units > b.units:
		return 1, nil
	}
	return 0, nil
}

// Add returns the sum of amounts a and b in the currency of a.
// The currency of b is not checked, use [Money.SameCurr] beforehand
// when operands may differ.
//
// Add returns an error if:
//   - either amount is the zero value;
//   - the result does not fit into int64 minor units.
func (a Money) Add(b Money) (Money, error) {
	c, err := a.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Money) add(b Money) (Money, error) {
	if !a.curr.IsValid() || !b.curr.IsValid() {
		return Money{}, ErrMissingOperand
	}
	u := a.units + b.units
	if (u > a.units) != (b.units > 0) {
		return Money{}, ErrAmountOverflow
	}
	return newMoneyUnsafe(a.curr, u), nil
}

// Sub returns the difference between amounts a and b in the currency of a.
// The currency of b is not checked, use [Money.SameCurr] beforehand
// when operands may differ.
//
// Sub returns an error if:
//   - either amount is the zero value;
//   - the result does not fit into int64 minor units.
func (a Money) Sub(b Money) (Money, error) {
	c, err := a.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Money) sub(b Money) (Money, error) {
	if !a.curr.IsValid() || !b.curr.IsValid() {
		return Money{}, ErrMissingOperand
	}
	u := a.units - b.units
	if (u < a.units) != (b.units > 0) {
		return Money{}, ErrAmountOverflow
	}
	return newMoneyUnsafe(a.curr, u), nil
}

// Mul returns amount a multiplied by the scalar e.
// The product is computed exactly in minor units and then rounded to
// a whole number of minor units with the given rounding function,
// see [RoundingFunc] for what the function receives.
// There is no default rounding: callers state the policy, see [Floor],
// [Ceil], [Trunc] and [HalfEven].
//
// Mul returns an error if:
//   - amount a is the zero value or the rounding function is nil;
//   - the rounding function returns a value with a fractional part;
//   - the result does not fit into int64 minor units.
func (a Money) Mul(e decimal.Decimal, round RoundingFunc) (Money, error) {
	c, err := a.mul(e, round)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Money) mul(e decimal.Decimal, round RoundingFunc) (Money, error) {
	if err := a.checkScalarOp(round); err != nil {
		return Money{}, err
	}
	num := bigdec.NewFromInt(a.units).Mul(toBig(e))
	return a.rounded(num, bigdec.NewFromInt(1), round)
}

// Quo returns amount a divided by the scalar e.
// The quotient is computed exactly in minor units and then rounded to
// a whole number of minor units with the given rounding function.
//
// Quo returns an error if:
//   - amount a is the zero value or the rounding function is nil;
//   - the divisor is 0;
//   - the rounding function returns a value with a fractional part;
//   - the result does not fit into int64 minor units.
func (a Money) Quo(e decimal.Decimal, round RoundingFunc) (Money, error) {
	c, err := a.quo(e, round)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Money) quo(e decimal.Decimal, round RoundingFunc) (Money, error) {
	if err := a.checkScalarOp(round); err != nil {
		return Money{}, err
	}
	if e.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	return a.rounded(bigdec.NewFromInt(a.units), toBig(e), round)
}

func (a Money) checkScalarOp(round RoundingFunc) error {
	if !a.curr.IsValid() {
		return ErrMissingOperand
	}
	if round == nil {
		return fmt.Errorf("%w: rounding function is required", ErrMissingOperand)
	}
	return nil
}

var (
	two        = bigdec.NewFromInt(2)
	unitsLimit = bigdec.NewFromInt(math.MaxInt64).Add(bigdec.NewFromInt(1))
	wholeLimit = bigdec.New(1, 18)
)

// rounded rounds num / den to a whole number of minor units.
//
// The quotient is computed exactly. The rounding function receives its
// whole part with the fraction condensed to one digit: .0 when exact,
// .5 on a tie, .2 below a tie and .8 above it. From 10^18 minor units on
// only the parity of the whole part is passed and the rest is added back.
func (a Money) rounded(num, den bigdec.Decimal, round RoundingFunc) (Money, error) {
	q, r := num.Abs().QuoRem(den.Abs(), 0)
	if q.GreaterThan(unitsLimit) {
		return Money{}, ErrAmountOverflow
	}

	// Fraction
	var frac int64
	if !r.IsZero() {
		switch r.Mul(two).Cmp(den.Abs()) {
		case -1:
			frac = 2
		case 0:
			frac = 5
		default:
			frac = 8
		}
	}

	// Whole part
	shift := bigdec.Zero
	if !q.LessThan(wholeLimit) {
		shift = q.Sub(q.Mod(two))
		q = q.Sub(shift)
	}
	whole, err := decimal.Parse(q.BigInt().String())
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrAmountOverflow, err)
	}
	x, err := whole.Add(decimal.MustNew(frac, 1))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrAmountOverflow, err)
	}
	y, err := decimal.Parse(shift.BigInt().String())
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrAmountOverflow, err)
	}
	if num.Sign()*den.Sign() < 0 {
		x, y = x.Neg(), y.Neg()
	}

	d, err := round(x).Add(y)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrAmountOverflow, err)
	}
	u, err := toUnits(d)
	if err != nil {
		return Money{}, err
	}
	return newMoneyUnsafe(a.curr, u), nil
}

// toBig converts a decimal to its arbitrary-precision counterpart.
func toBig(d decimal.Decimal) bigdec.Decimal {
	return bigdec.RequireFromString(d.String())
}

type moneyJSON struct {
	Units    int64    `json:"units"`
	Currency Currency `json:"currency"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is encoded as an object with minor units and a currency code:
//
//	{"units":499,"currency":"USD"}
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Money) MarshalJSON() ([]byte, error) {
	if !a.curr.IsValid() {
		return nil, fmt.Errorf("marshaling %T: %w", a, ErrMissingOperand)
	}
	return json.Marshal(moneyJSON{Units: a.units, Currency: a.curr})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The currency is resolved through the default registry.
// Fractional units are rejected.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Money) UnmarshalJSON(data []byte) error {
	var v moneyJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	m, err := NewMoney(v.Units, v.Currency)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	*a = m
	return nil
}
