package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/mtlprog/patrimoine/internal/domain"
)

// Converter converts amounts into a base currency using a rate table anchored at
// domain.ReferenceCurrency.
type Converter struct {
	rates domain.RateTable
	base  domain.Currency
}

// NewConverter creates a Converter for the given rates and base currency.
func NewConverter(rates domain.RateTable, base domain.Currency) Converter {
	return Converter{rates: rates, base: base}
}

// Base returns the currency results are expressed in.
func (c Converter) Base() domain.Currency { return c.base }

// Convert converts amount from its native currency into the base currency.
// The amount is first normalized to the reference currency, then scaled to the base.
// Any currency absent from the rate table, on either side, yields zero.
func (c Converter) Convert(amount decimal.Decimal, from domain.Currency) decimal.Decimal {
	fromRate, ok := c.rates.Rate(from)
	if !ok {
		return decimal.Zero
	}
	inReference := amount.Div(fromRate)
	if c.base == domain.ReferenceCurrency {
		return inReference
	}

	baseRate, ok := c.rates.Rate(c.base)
	if !ok {
		return decimal.Zero
	}
	return inReference.Mul(baseRate)
}
