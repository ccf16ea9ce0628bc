package money

import (
	"errors"
	"testing"
)

func TestNewCurrency(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		def := CurrencyDef{Code: "XBT", Name: "Bitcoin", Plural: "bitcoins", Symbol: "₿", Scale: 8}
		got, err := NewCurrency(def)
		if err != nil {
			t.Fatalf("NewCurrency(%q) failed: %v", def.Code, err)
		}
		if got.Code() != "XBT" || got.Name() != "Bitcoin" || got.Plural() != "bitcoins" || got.Symbol() != "₿" || got.Scale() != 8 {
			t.Errorf("NewCurrency(%q) = %+v, want fields of %+v", def.Code, got, def)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]CurrencyDef{
			"empty code":     {Code: "", Name: "Nothing", Symbol: "?", Scale: 2},
			"lower case":     {Code: "usd", Name: "US Dollar", Symbol: "$", Scale: 2},
			"long code":      {Code: "ABCDEFGHI", Name: "Long", Symbol: "L", Scale: 2},
			"punctuation":    {Code: "US$", Name: "US Dollar", Symbol: "$", Scale: 2},
			"missing name":   {Code: "USD", Symbol: "$", Scale: 2},
			"missing symbol": {Code: "USD", Name: "US Dollar", Scale: 2},
			"scale range 1":  {Code: "USD", Name: "US Dollar", Symbol: "$", Scale: -1},
			"scale range 2":  {Code: "USD", Name: "US Dollar", Symbol: "$", Scale: 19},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewCurrency(tt)
				if !errors.Is(err, ErrInvalidCurrency) {
					t.Errorf("NewCurrency(%+v) = %v, want %v", tt, err, ErrInvalidCurrency)
				}
			})
		}
	})
}

func TestMustNewCurrency(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewCurrency(\"\") did not panic")
			}
		}()
		MustNewCurrency(CurrencyDef{})
	})
}

func TestCurrency_Equal(t *testing.T) {
	usd := USD()
	other := MustNewCurrency(CurrencyDef{Code: "USD", Name: "Dollar", Symbol: "US$", Scale: 3})
	eur := MustParseCurr("EUR")

	tests := []struct {
		a, b Currency
		want bool
	}{
		{usd, usd, true},
		{usd, other, true},
		{other, usd, true},
		{usd, eur, false},
		{Currency{}, Currency{}, true},
		{usd, Currency{}, false},
	}
	for _, tt := range tests {
		got := tt.a.Equal(tt.b)
		if got != tt.want {
			t.Errorf("%q.Equal(%q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCurrEqual(t *testing.T) {
	usd, eur := USD(), MustParseCurr("EUR")
	usd2 := USD()

	tests := []struct {
		a, b *Currency
		want bool
	}{
		{nil, nil, true},
		{&usd, nil, false},
		{nil, &usd, false},
		{&usd, &usd2, true},
		{&usd, &eur, false},
	}
	for _, tt := range tests {
		got := CurrEqual(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("CurrEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCurrency_IsValid(t *testing.T) {
	if (Currency{}).IsValid() {
		t.Errorf("Currency{}.IsValid() = true, want false")
	}
	if !USD().IsValid() {
		t.Errorf("USD().IsValid() = false, want true")
	}
}

func TestCurrency_Text(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		got, err := USD().MarshalText()
		if err != nil {
			t.Fatalf("USD().MarshalText() failed: %v", err)
		}
		if string(got) != "USD" {
			t.Errorf("USD().MarshalText() = %q, want %q", got, "USD")
		}
		_, err = Currency{}.MarshalText()
		if err == nil {
			t.Errorf("Currency{}.MarshalText() did not fail")
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		var c Currency
		if err := c.UnmarshalText([]byte("jpy")); err != nil {
			t.Fatalf("UnmarshalText(\"jpy\") failed: %v", err)
		}
		if c.Code() != "JPY" || c.Scale() != 0 {
			t.Errorf("UnmarshalText(\"jpy\") = %v (scale %v), want JPY (scale 0)", c, c.Scale())
		}
		if err := c.UnmarshalText([]byte("ZZZ")); !errors.Is(err, ErrInvalidCurrency) {
			t.Errorf("UnmarshalText(\"ZZZ\") = %v, want %v", err, ErrInvalidCurrency)
		}
	})
}

func TestCurrency_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  string
		}{
			{"USD", "USD"},
			{[]byte("eur"), "EUR"},
		}
		for _, tt := range tests {
			var got Currency
			if err := got.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if got.Code() != tt.want {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{nil, 840, "ZZZ", 1.5}
		for _, tt := range tests {
			var c Currency
			if err := c.Scan(tt); err == nil {
				t.Errorf("Scan(%v) did not fail", tt)
			}
		}
	})

	t.Run("null", func(t *testing.T) {
		c := USD()
		err := c.Scan(nil)
		if !errors.Is(err, ErrInvalidCurrency) {
			t.Errorf("Scan(nil) = %v, want %v", err, ErrInvalidCurrency)
		}
		if c.Code() != "USD" {
			t.Errorf("Scan(nil) changed the currency to %q", c)
		}
	})
}

func TestCurrency_Value(t *testing.T) {
	got, err := USD().Value()
	if err != nil {
		t.Fatalf("USD().Value() failed: %v", err)
	}
	if got != "USD" {
		t.Errorf("USD().Value() = %v, want %v", got, "USD")
	}
	if _, err := (Currency{}).Value(); err == nil {
		t.Errorf("Currency{}.Value() did not fail")
	}
}
