package pays

import (
	"fmt"
	"math"
)

// Money holds a decimal price in a single currency and converts it to the
// integer minor-unit amount the gateway works with. The zero value has no
// price and the default CZK currency.
type Money struct {
	price    float64
	priceSet bool
	currency Currency
}

// SetPrice stores the decimal price. Negative prices are rejected; no
// currency-specific clamping happens here.
func (m *Money) SetPrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidArgument)
	}
	m.price = price
	m.priceSet = true
	return nil
}

// Price returns the decimal price and whether one was set.
func (m *Money) Price() (float64, bool) {
	return m.price, m.priceSet
}

// SetCurrency validates and stores the currency code.
func (m *Money) SetCurrency(code string) error {
	c, err := ParseCurrency(code)
	if err != nil {
		return err
	}
	m.currency = c
	return nil
}

// Currency returns the stored currency, defaulting to CZK.
func (m *Money) Currency() Currency {
	if m.currency == "" {
		return CurrencyCZK
	}
	return m.currency
}

// Amount converts the price to minor units, rounding half away from zero
// (19.99 CZK -> 1999, 0.005 CZK -> 1). Fails with ErrPriceNotSet if SetPrice
// was never called.
func (m *Money) Amount() (int64, error) {
	if !m.priceSet {
		return 0, fmt.Errorf("%w: call SetPrice before requesting the amount", ErrPriceNotSet)
	}
	return int64(math.Round(m.price * float64(m.Currency().BaseUnits()))), nil
}

// BaseUnits returns the minor-unit scale of the stored currency.
func (m *Money) BaseUnits() int64 {
	return m.Currency().BaseUnits()
}

// moneyFromMinorUnits rebuilds the decimal price from a callback's integer
// amount and divisor. The divisor has already been cross-checked against the
// currency table by the caller.
func moneyFromMinorUnits(amount, baseUnits int64, currency Currency) Money {
	return Money{
		price:    float64(amount) / float64(baseUnits),
		priceSet: true,
		currency: currency,
	}
}
