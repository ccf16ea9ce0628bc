package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/go-playground/validator/v10"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency together with the precision of its
// minor unit.
// The zero value is not a valid currency, see method [Currency.IsValid].
//
// Two currencies are equal if and only if their codes are equal,
// see method [Currency.Equal].
// Currency is immutable and safe for concurrent use by multiple goroutines.
type Currency struct {
	code   string // ISO 4217 code, e.g. USD
	name   string // US Dollar
	plural string // US dollars
	symbol string // $
	scale  int    // number of minor unit digits
}

// CurrencyDef describes a currency for [NewCurrency], [NewRegistry] and
// [LoadRegistry].
type CurrencyDef struct {
	Code   string `yaml:"code" validate:"required,alphanum,uppercase,max=8"`
	Name   string `yaml:"name" validate:"required"`
	Plural string `yaml:"plural"`
	Symbol string `yaml:"symbol" validate:"required"`
	Scale  int    `yaml:"scale" validate:"gte=0,lte=18"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewCurrency returns a currency described by the definition.
//
// NewCurrency returns an error if:
//   - the code is empty, longer than 8 characters, or not upper-case alphanumeric;
//   - the name or the symbol is empty;
//   - the scale is negative or greater than 18.
func NewCurrency(def CurrencyDef) (Currency, error) {
	if err := validate.Struct(def); err != nil {
		return Currency{}, fmt.Errorf("validating %q: %w: %w", def.Code, ErrInvalidCurrency, err)
	}
	c := Currency{
		code:   def.Code,
		name:   def.Name,
		plural: def.Plural,
		symbol: def.Symbol,
		scale:  def.Scale,
	}
	return c, nil
}

// MustNewCurrency is like [NewCurrency] but panics if the definition is not valid.
func MustNewCurrency(def CurrencyDef) Currency {
	c, err := NewCurrency(def)
	if err != nil {
		panic(fmt.Sprintf("NewCurrency(%q) failed: %v", def.Code, err))
	}
	return c
}

// Code returns the code of the currency, for example "USD".
// Code returns an empty string for the zero value.
func (c Currency) Code() string {
	return c.code
}

// Name returns the display name of the currency, for example "US Dollar".
func (c Currency) Name() string {
	return c.name
}

// Plural returns the plural display name, for example "US dollars".
func (c Currency) Plural() string {
	return c.plural
}

// Symbol returns the display glyph of the currency, for example "$".
func (c Currency) Symbol() string {
	return c.symbol
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of a currency.
//   - A scale of 0 indicates currencies without minor units,
//     such as the [Japanese Yen].
//   - A scale of 2 is used by the [US Dollar]: 1 cent is 0.01 dollars.
//   - A scale of 3 is used by the [Omani Rial]: 1 baisa is 0.001 rials.
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
// [Omani Rial]: https://en.wikipedia.org/wiki/Omani_rial
func (c Currency) Scale() int {
	return c.scale
}

// IsValid returns false for the zero value.
func (c Currency) IsValid() bool {
	return c.code != ""
}

// Equal returns true if currencies have the same code.
// Other properties are not compared.
// See also function [CurrEqual].
func (c Currency) Equal(d Currency) bool {
	return c.code == d.code
}

// CurrEqual is a nil-safe version of [Currency.Equal].
// It returns true if both currencies are nil and false if only one of them is.
func CurrEqual(a, b *Currency) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// String method implements the [fmt.Stringer] interface and returns
// the code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// The code is resolved through the default registry, see [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns the code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("marshaling %T: %w", c, ErrInvalidCurrency)
	}
	return []byte(c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
// The column must hold a currency code of the default registry.
// A NULL column is rejected since the zero Currency is not valid.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var code string
	switch v := value.(type) {
	case string:
		code = v
	case []byte:
		code = string(v)
	case nil:
		return fmt.Errorf("scanning %T: %w: NULL code", Currency{}, ErrInvalidCurrency)
	default:
		return fmt.Errorf("scanning %T: unsupported column type %T", Currency{}, value)
	}
	curr, err := ParseCurr(code)
	if err != nil {
		return fmt.Errorf("scanning %T: %w", Currency{}, err)
	}
	*c = curr
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	if !c.IsValid() {
		return nil, ErrInvalidCurrency
	}
	return c.Code(), nil
}
