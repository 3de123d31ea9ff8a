package domain

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Account is a cash account recorded in its group's native currency.
// A zero Interest or Rate means the account has none.
type Account struct {
	Bank     string          `json:"bank" yaml:"bank"`
	Name     string          `json:"name" yaml:"name"`
	Balance  decimal.Decimal `json:"balance" yaml:"balance"`
	Interest decimal.Decimal `json:"interest,omitzero" yaml:"interest,omitempty"`
	Rate     decimal.Decimal `json:"rate,omitzero" yaml:"rate,omitempty"` // annual, percent
}

// HasInterest reports whether accrued interest is recorded for the account.
func (a Account) HasInterest() bool { return !a.Interest.IsZero() }

// HasRate reports whether an annual rate is recorded for the account.
func (a Account) HasRate() bool { return !a.Rate.IsZero() }

// Total is the balance plus accrued interest, in the native currency.
func (a Account) Total() decimal.Decimal { return a.Balance.Add(a.Interest) }

// AccountGroup holds the accounts sharing one native currency.
type AccountGroup struct {
	Currency Currency  `json:"currency" yaml:"currency"`
	Accounts []Account `json:"accounts" yaml:"accounts"`
}

// Property is a real-estate holding valued in the ReferenceCurrency.
type Property struct {
	Name    string          `json:"name" yaml:"name"`
	Value   decimal.Decimal `json:"value" yaml:"value"`
	Revenue decimal.Decimal `json:"revenue" yaml:"revenue"` // per year
}

// Holdings is the full set of accounts and properties shown on the dashboard.
type Holdings struct {
	Groups     []AccountGroup `json:"accounts" yaml:"accounts"`
	Properties []Property     `json:"properties" yaml:"properties"`
}

// Currencies returns the native currencies of all account groups, in order.
func (h Holdings) Currencies() []Currency {
	return lo.Map(h.Groups, func(g AccountGroup, _ int) Currency { return g.Currency })
}

// AccountCount returns the number of accounts across all groups.
func (h Holdings) AccountCount() int {
	return lo.SumBy(h.Groups, func(g AccountGroup) int { return len(g.Accounts) })
}

// DefaultHoldings returns a fresh copy of the built-in registry.
func DefaultHoldings() Holdings {
	return Holdings{
		Groups: []AccountGroup{
			{Currency: GEL, Accounts: []Account{
				{Bank: "Bank of Georgia", Name: "Universal Account", Balance: dec("655.54")},
				{Bank: "Bank of Georgia", Name: "Rainy days", Balance: dec("15000"), Interest: dec("1599.25"), Rate: dec("10.75")},
				{Bank: "Bank of Georgia", Name: "Revenues 2025", Balance: dec("69000"), Interest: dec("4658.70"), Rate: dec("10.75")},
			}},
			{Currency: AED, Accounts: []Account{
				{Bank: "Wio Bank", Name: "Livret classique", Balance: dec("573746.36"), Rate: dec("3.25")},
				{Bank: "Wio Bank", Name: "Fixed Saving Space", Balance: dec("1000000"), Rate: dec("6.0")},
				{Bank: "HSBC", Name: "MT PERSO", Balance: dec("197.21")},
				{Bank: "ADCB", Name: "Current Account", Balance: dec("112.22")},
			}},
			{Currency: EUR, Accounts: []Account{
				{Bank: "Wise", Name: "Compte principal", Balance: dec("18767.76")},
				{Bank: "Crédit Agricole", Name: "Parts sociales", Balance: dec("23000")},
			}},
		},
		Properties: []Property{
			{Name: "La Garenne-Colombes", Value: dec("500000"), Revenue: dec("20000")},
			{Name: "Quiberon", Value: dec("500000"), Revenue: dec("10000")},
			{Name: "Gudauri", Value: dec("210000"), Revenue: dec("25000")},
		},
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
