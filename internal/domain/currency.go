package domain

import (
	"strings"

	"github.com/samber/lo"
)

// Currency is an ISO 4217 currency code.
type Currency string

const (
	EUR Currency = "EUR"
	AED Currency = "AED"
	GEL Currency = "GEL"
	USD Currency = "USD"
)

// ReferenceCurrency anchors the rate table at 1.0.
const ReferenceCurrency = EUR

// DisplayCurrencies lists the currencies a dashboard can be shown in.
var DisplayCurrencies = []Currency{EUR, AED}

// NormalizeCurrency upper-cases and trims a currency code.
func NormalizeCurrency(code string) Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(code)))
}

// IsDisplayCurrency reports whether c can be selected as base currency.
func IsDisplayCurrency(c Currency) bool {
	return lo.Contains(DisplayCurrencies, c)
}

func (c Currency) String() string { return string(c) }
