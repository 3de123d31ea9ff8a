package domain

import (
	"github.com/shopspring/decimal"
)

// RateTable maps a currency to the number of its units worth one ReferenceCurrency.
type RateTable map[Currency]decimal.Decimal

// FallbackRates returns the static table used when live rates are unavailable.
func FallbackRates() RateTable {
	return RateTable{
		EUR: decimal.NewFromInt(1),
		AED: decimal.RequireFromString("4.01"),
		USD: decimal.RequireFromString("1.09"),
		GEL: decimal.RequireFromString("2.98"),
	}
}

// Rate returns the rate for c. A missing or zero rate is reported as absent.
func (t RateTable) Rate(c Currency) (decimal.Decimal, bool) {
	r, ok := t[c]
	if !ok || r.IsZero() {
		return decimal.Zero, false
	}
	return r, true
}

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for c, r := range t {
		out[c] = r
	}
	return out
}
