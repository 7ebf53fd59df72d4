package model

import "fmt"

// Currency is one of the fixed set of currencies offered by the converter.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyCAD Currency = "CAD"
	CurrencyINR Currency = "INR"
)

// Currencies is the closed set exposed to clients, in display order.
var Currencies = []Currency{CurrencyUSD, CurrencyEUR, CurrencyCAD, CurrencyINR}

// ParseCurrency validates a currency code against the closed set.
func ParseCurrency(code string) (Currency, error) {
	for _, c := range Currencies {
		if string(c) == code {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported currency %q", code)
}
