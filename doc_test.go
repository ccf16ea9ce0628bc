package money_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
	"github.com/ledgerkit/money"
)

// In this example, a restaurant bill with a tip is shared between guests.
// The parts always add up to the total, the first guest covers the odd cent.
func Example_billSplitting() {
	bill := money.MustParseMoney("USD", "87.40")
	tip, err := bill.Mul(decimal.MustParse("0.18"), money.HalfEven)
	if err != nil {
		panic(err)
	}
	total, err := bill.Add(tip)
	if err != nil {
		panic(err)
	}
	parts, err := total.Split(3)
	if err != nil {
		panic(err)
	}
	fmt.Println("Tip:  ", tip)
	fmt.Println("Total:", total)
	for i, p := range parts {
		s, _ := p.Text(money.StyleSymbolFixed)
		fmt.Printf("Guest %v: %v\n", i+1, s)
	}
	// Output:
	// Tip:   15.73 USD
	// Total: 103.13 USD
	// Guest 1: $34.38
	// Guest 2: $34.38
	// Guest 3: $34.37
}

// In this example, a payout is allocated between partners by ownership share.
func Example_profitAllocation() {
	profit := money.MustNewMoney(999, money.USD())
	parts, err := profit.WeightedSplit(1, 2, 4, 8)
	if err != nil {
		panic(err)
	}
	fmt.Println(parts)
	// Output: [0.67 USD 1.34 USD 2.66 USD 5.32 USD]
}

func ExampleNewMoney() {
	m, err := money.NewMoney(499, money.USD())
	fmt.Println(m, err)
	fmt.Println(m.MinorUnits(), m.Decimal())
	// Output:
	// 4.99 USD <nil>
	// 499 4.99
}

func ExampleNewMoneyFromFloat64() {
	_, err := money.NewMoneyFromFloat64(1.99, money.USD())
	fmt.Println(errors.Is(err, money.ErrInvalidAmount))
	m, err := money.NewMoneyFromFloat64(199, money.USD())
	fmt.Println(m, err)
	// Output:
	// true
	// 1.99 USD <nil>
}

func ExampleParseMoney() {
	fmt.Println(money.ParseMoney("USD", "4.99"))
	fmt.Println(money.ParseMoney("JPY", "1500"))
	_, err := money.ParseMoney("USD", "4.999")
	fmt.Println(errors.Is(err, money.ErrInvalidAmount))
	// Output:
	// 4.99 USD <nil>
	// 1500 JPY <nil>
	// true
}

func ExampleMoney_Add() {
	a := money.MustNewMoney(3000, money.USD())
	b := money.MustNewMoney(1499, money.USD())
	fmt.Println(a.Add(b))
	// Output: 44.99 USD <nil>
}

func ExampleMoney_Sub() {
	a := money.MustNewMoney(3000, money.USD())
	b := money.MustNewMoney(1499, money.USD())
	fmt.Println(a.Sub(b))
	// Output: 15.01 USD <nil>
}

func ExampleMoney_Mul() {
	a := money.MustNewMoney(125, money.USD())
	e := decimal.MustParse("2.5")
	fmt.Println(a.Mul(e, money.Floor))
	fmt.Println(a.Mul(e, money.Ceil))
	// Output:
	// 3.12 USD <nil>
	// 3.13 USD <nil>
}

func ExampleMoney_Quo() {
	a := money.MustNewMoney(125, money.USD())
	e := decimal.MustParse("2")
	fmt.Println(a.Quo(e, money.Floor))
	fmt.Println(a.Quo(e, money.Ceil))
	_, err := a.Quo(decimal.MustParse("0"), money.Floor)
	fmt.Println(errors.Is(err, money.ErrDivisionByZero))
	// Output:
	// 0.62 USD <nil>
	// 0.63 USD <nil>
	// true
}

func ExampleMoney_Split() {
	a := money.MustNewMoney(1000, money.USD())
	fmt.Println(a.Split(4))
	fmt.Println(a.Split(3))
	// Output:
	// [2.50 USD 2.50 USD 2.50 USD 2.50 USD] <nil>
	// [3.34 USD 3.33 USD 3.33 USD] <nil>
}

func ExampleMoney_WeightedSplit() {
	a := money.MustNewMoney(1000, money.USD())
	fmt.Println(a.WeightedSplit(1, 1, 1))
	fmt.Println(a.WeightedSplit(70, 20, 10))
	// Output:
	// [3.34 USD 3.33 USD 3.33 USD] <nil>
	// [7.00 USD 2.00 USD 1.00 USD] <nil>
}

func ExampleMoney_WeightedSplitDec() {
	a := money.MustNewMoney(1000, money.USD())
	fmt.Println(a.WeightedSplitDec(decimal.MustParse("33.5"), decimal.MustParse("66.5")))
	// Output: [3.35 USD 6.65 USD] <nil>
}

func ExampleMoney_Text() {
	a := money.MustNewMoney(499, money.USD())
	b := money.MustNewMoney(3000, money.USD())
	for _, s := range []money.Style{
		money.StyleAmount,
		money.StyleAmountFixed,
		money.StyleSymbol,
		money.StyleSymbolFixed,
		money.StyleCode,
		money.StyleCodeFixed,
	} {
		x, _ := a.Text(s)
		y, _ := b.Text(s)
		fmt.Printf("%-8v | %-8v | %v\n", s, x, y)
	}
	// Output:
	// 1        | 4.99     | 30
	// 1.00     | 4.99     | 30.00
	// $1       | $4.99    | $30
	// $1.00    | $4.99    | $30.00
	// 1 USD    | 4.99 USD | 30 USD
	// 1.00 USD | 4.99 USD | 30.00 USD
}

func ExampleEqual() {
	a := money.MustNewMoney(199, money.USD())
	b := money.MustNewMoney(199, money.USD())
	fmt.Println(a.Equal(b))
	fmt.Println(money.Equal(&a, nil))
	fmt.Println(money.Equal(nil, nil))
	// Output:
	// true
	// false
	// true
}

func ExampleUSD() {
	c := money.USD()
	fmt.Println(c.Code(), c.Name(), c.Plural(), c.Symbol(), c.Scale())
	// Output: USD US Dollar US dollars $ 2
}

func ExampleLookupCurr() {
	fmt.Println(money.LookupCurr("EUR"))
	c, ok := money.LookupCurr("XTS")
	fmt.Println(c.IsValid(), ok)
	// Output:
	// EUR true
	// false false
}

func ExampleCodes() {
	fmt.Println(money.Codes())
	// Output: [AUD CAD CHF EUR GBP JPY OMR USD]
}

func ExampleLoadRegistry() {
	r, err := money.LoadRegistry(strings.NewReader(`
currencies:
  - {code: XBT, name: Bitcoin, plural: bitcoins, symbol: "₿", scale: 8}
`))
	if err != nil {
		panic(err)
	}
	c, _ := r.Lookup("XBT")
	m := money.MustNewMoney(150000, c)
	fmt.Println(m.Text(money.StyleSymbol))
	// Output: ₿0.00150000 <nil>
}
