// Package exchange holds the currency domain model and the quote provider client.
package exchange

import "strings"

// Code identifies one of the currencies the bot converts between.
type Code string

const (
	BRL Code = "BRL"
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	JPY Code = "JPY"
)

// All returns the supported currencies in menu order.
func All() []Code {
	return []Code{BRL, USD, EUR, GBP, JPY}
}

var labels = map[Code]string{
	BRL: "Real (BRL)",
	USD: "Dólar (USD)",
	EUR: "Euro (EUR)",
	GBP: "Libra (GBP)",
	JPY: "Iene (JPY)",
}

// Label returns the button caption for a currency.
func (c Code) Label() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return string(c)
}

func (c Code) String() string { return string(c) }

// Parse validates a raw currency code against the supported set.
func Parse(raw string) (Code, bool) {
	code := Code(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := labels[code]
	return code, ok
}
