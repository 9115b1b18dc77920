package pays

import "fmt"

// Currency is an ISO 4217 code accepted by the gateway.
type Currency string

const (
	CurrencyCZK Currency = "CZK"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// Minor units per major unit. A lookup table rather than a constant so a
// currency with a different scale can be added without touching call sites.
var currencyBaseUnits = map[Currency]int64{
	CurrencyCZK: 100,
	CurrencyEUR: 100,
	CurrencyUSD: 100,
}

// ParseCurrency validates a currency code received from the caller or the
// gateway.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if _, ok := currencyBaseUnits[c]; !ok {
		return "", fmt.Errorf("%w: unknown currency %q (use CZK, EUR or USD)", ErrInvalidArgument, code)
	}
	return c, nil
}

// BaseUnits returns the number of minor units in one major unit, e.g. 100
// for CZK.
func (c Currency) BaseUnits() int64 {
	return currencyBaseUnits[c]
}
