package money

import "fmt"

// Style selects one of the supported text layouts of an amount.
// Each style is named after the way it renders one US dollar.
type Style string

const (
	StyleAmount      Style = "1"        // 4.99, 30
	StyleAmountFixed Style = "1.00"     // 4.99, 30.00
	StyleSymbol      Style = "$1"       // $4.99, $30
	StyleSymbolFixed Style = "$1.00"    // $4.99, $30.00
	StyleCode        Style = "1 USD"    // 4.99 USD, 30 USD
	StyleCodeFixed   Style = "1.00 USD" // 4.99 USD, 30.00 USD
)

// ParseStyle converts a string to a style.
// ParseStyle returns an error if the string is not one of the supported styles.
func ParseStyle(s string) (Style, error) {
	st := Style(s)
	if _, err := st.fixed(); err != nil {
		return "", err
	}
	return st, nil
}

// fixed reports whether the style always shows the fractional digits.
func (s Style) fixed() (bool, error) {
	switch s {
	case StyleAmountFixed, StyleSymbolFixed, StyleCodeFixed:
		return true, nil
	case StyleAmount, StyleSymbol, StyleCode:
		return false, nil
	}
	return false, fmt.Errorf("%w %q", ErrUnsupportedFormat, string(s))
}

// Text returns the amount in major units rendered with the given style.
//
// The number has exactly [Currency.Scale] digits after the decimal point if
// the style is one of the fixed styles or the amount is not a whole number of
// major units. Otherwise it is rendered without a decimal point.
// There are no thousands separators.
//
// Text returns an error if the style is not supported.
func (a Money) Text(style Style) (string, error) {
	fixed, err := style.fixed()
	if err != nil {
		return "", fmt.Errorf("formatting %v: %w", a.Decimal(), err)
	}

	d := a.Decimal()
	if !fixed && d.IsInt() {
		d = d.Trim(0)
	}
	num := d.String()

	switch style {
	case StyleSymbol, StyleSymbolFixed:
		return a.Curr().Symbol() + num, nil
	case StyleCode, StyleCodeFixed:
		return num + " " + a.Curr().Code(), nil
	default:
		return num, nil
	}
}

// String implements the [fmt.Stringer] interface and returns the amount
// rendered with [StyleCodeFixed], for example "4.99 USD".
// The zero value is rendered without a currency code.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Money) String() string {
	style := StyleCodeFixed
	if !a.curr.IsValid() {
		style = StyleAmountFixed
	}
	s, _ := a.Text(style)
	return s
}
