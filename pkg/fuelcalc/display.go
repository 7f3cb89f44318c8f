package fuelcalc

import "github.com/shopspring/decimal"

// DisplayPolicy fixes how many decimal places are shown at the presentation
// boundary. Internal arithmetic never rounds; only rendered values do.
type DisplayPolicy struct {
	CurrencyPlaces int32
	QuantityPlaces int32
}

// DefaultDisplay is the station's policy: 2 decimals for currency,
// 3 for fuel quantities.
func DefaultDisplay() DisplayPolicy {
	return DisplayPolicy{CurrencyPlaces: 2, QuantityPlaces: 3}
}

// RoundCurrency rounds a currency value to the policy's precision.
func (p DisplayPolicy) RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(p.CurrencyPlaces)
}

// RoundQuantity rounds a quantity value to the policy's precision.
func (p DisplayPolicy) RoundQuantity(d decimal.Decimal) decimal.Decimal {
	return d.Round(p.QuantityPlaces)
}

// Currency renders a currency value with fixed decimals.
func (p DisplayPolicy) Currency(d decimal.Decimal) string {
	return d.StringFixed(p.CurrencyPlaces)
}

// Quantity renders a quantity value with fixed decimals.
func (p DisplayPolicy) Quantity(d decimal.Decimal) string {
	return d.StringFixed(p.QuantityPlaces)
}
