/*
Package money implements exact monetary values with currency-safe arithmetic.
An amount is stored as a whole number of minor units of its currency
(cents, pennies, fens) in an int64, so there is no floating-point drift and
no minor unit is ever silently lost.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Arithmetic between amounts and multiplication or division by decimal scalars
  - Explicit rounding policies for every operation that can produce fractions
  - Proportional splitting where the parts always sum up to the original amount
  - A small set of text styles such as "$4.99" and "4.99 USD"

# Representation

The package consists of two main structs: [Money] and [Currency].
A Money pairs an int64 number of minor units with a Currency.
A Currency carries a code, display names, a symbol, and a scale, the number
of digits of its minor unit.
Currencies are obtained from a [Registry]; package-level functions such as
[USD] and [ParseCurr] use the default registry of built-in currencies.

# Operations

[Money.Add] and [Money.Sub] combine amounts.
[Money.Mul] and [Money.Quo] scale an amount by a decimal and round the result
with a caller-supplied [RoundingFunc]; there is no implicit rounding.

# Splitting

[Money.WeightedSplit] divides an amount proportionally to a list of ratios.
Every part is rounded toward zero and the lost minor units are handed out
one at a time starting from the first part, so the parts always sum up to
the original amount. [Money.Split] is the equal-ratio special case.

# Errors

Constructors and operations return errors wrapping one of the exported
sentinel errors, such as [ErrInvalidAmount] or [ErrInvalidRatios], which can
be checked with [errors.Is]. Must* constructors panic instead.
*/
package money
