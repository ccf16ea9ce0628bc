package money

import "errors"

var (
	// ErrInvalidAmount is returned when a value cannot be represented as
	// a whole number of minor units.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMissingOperand is returned when an operation is called with a
	// zero-value Money or a nil rounding function.
	ErrMissingOperand = errors.New("missing operand")
	// ErrInvalidRatios is returned when a weighted split receives no ratios,
	// a negative ratio, or ratios summing to zero.
	ErrInvalidRatios = errors.New("invalid ratios")
	// ErrInvalidCount is returned when an equal split is asked for fewer than one part.
	ErrInvalidCount = errors.New("invalid count")
	// ErrUnsupportedFormat is returned for a style outside the supported set.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrDivisionByZero is returned when a scalar divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidCurrency is returned for unknown codes, malformed
	// definitions, and the zero Currency.
	ErrInvalidCurrency = errors.New("invalid currency")
	// ErrCurrencyMismatch is returned when comparing amounts in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrAmountOverflow is returned when a result does not fit into int64 minor units.
	ErrAmountOverflow = errors.New("amount overflow")
)
