package money

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry is an immutable lookup table from currency codes to currencies.
// A registry is populated once by [NewRegistry] or [LoadRegistry] and is
// read-only afterwards, so it is safe for concurrent use.
//
// Package-level functions such as [ParseCurr] and [USD] use the default
// registry, which holds a small built-in set of currencies.
type Registry struct {
	byCode map[string]Currency
	codes  []string // sorted
}

// NewRegistry returns a registry holding the given currencies.
//
// NewRegistry returns an error if any definition is not valid
// (see [NewCurrency]) or if a code is defined more than once.
func NewRegistry(defs ...CurrencyDef) (*Registry, error) {
	r := &Registry{
		byCode: make(map[string]Currency, len(defs)),
		codes:  make([]string, 0, len(defs)),
	}
	for _, def := range defs {
		c, err := NewCurrency(def)
		if err != nil {
			return nil, fmt.Errorf("creating registry: %w", err)
		}
		if _, ok := r.byCode[c.Code()]; ok {
			return nil, fmt.Errorf("creating registry: %w: duplicate code %q", ErrInvalidCurrency, c.Code())
		}
		r.byCode[c.Code()] = c
		r.codes = append(r.codes, c.Code())
	}
	slices.Sort(r.codes)
	return r, nil
}

type registryFile struct {
	Currencies []CurrencyDef `yaml:"currencies"`
}

// LoadRegistry reads currency definitions from a YAML document of the form:
//
//	currencies:
//	  - code: USD
//	    name: US Dollar
//	    plural: US dollars
//	    symbol: $
//	    scale: 2
//
// LoadRegistry returns an error if the document cannot be decoded or if
// [NewRegistry] rejects the definitions.
func LoadRegistry(r io.Reader) (*Registry, error) {
	var f registryFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding registry: %w", err)
	}
	return NewRegistry(f.Currencies...)
}

// Lookup returns the currency registered under the code.
// The code is case-insensitive.
// If no such currency exists, the zero Currency and false are returned.
func (r *Registry) Lookup(code string) (Currency, bool) {
	c, ok := r.byCode[strings.ToUpper(code)]
	return c, ok
}

// Parse is like [Registry.Lookup] but returns an error for unknown codes.
func (r *Registry) Parse(code string) (Currency, error) {
	c, ok := r.Lookup(code)
	if !ok {
		return Currency{}, fmt.Errorf("%w: unknown code %q", ErrInvalidCurrency, code)
	}
	return c, nil
}

// Codes returns the registered codes in ascending order.
// The returned slice is a copy and may be modified by the caller.
func (r *Registry) Codes() []string {
	return slices.Clone(r.codes)
}

// Len returns the number of registered currencies.
func (r *Registry) Len() int {
	return len(r.codes)
}

var defaultRegistry = mustNewRegistry(builtinCurrencies...)

func mustNewRegistry(defs ...CurrencyDef) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(fmt.Sprintf("NewRegistry() failed: %v", err))
	}
	return r
}

// DefaultRegistry returns the registry of built-in currencies.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// USD returns the built-in US Dollar.
func USD() Currency {
	return MustParseCurr("USD")
}

// LookupCurr returns the built-in currency with the given code.
// See also method [Registry.Lookup].
func LookupCurr(code string) (Currency, bool) {
	return defaultRegistry.Lookup(code)
}

// ParseCurr converts a code to a built-in currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//
// ParseCurr returns an error if the code is not registered.
func ParseCurr(code string) (Currency, error) {
	return defaultRegistry.Parse(code)
}

// MustParseCurr is like [ParseCurr] but panics if the code cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(code string) Currency {
	c, err := ParseCurr(code)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", code, err))
	}
	return c
}

// Codes returns the codes of all built-in currencies in ascending order.
func Codes() []string {
	return defaultRegistry.Codes()
}
