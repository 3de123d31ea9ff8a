package valuation

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mtlprog/patrimoine/internal/domain"
)

// Totals holds the dashboard KPIs in the converter's base currency.
type Totals struct {
	NetWorth    decimal.Decimal `json:"netWorth"`
	Liquidities decimal.Decimal `json:"liquidities"`
	RealEstate  decimal.Decimal `json:"realEstate"`
}

// AccountValue is an account with its converted equivalent.
type AccountValue struct {
	domain.Account
	Converted decimal.Decimal `json:"converted"`
}

// GroupValue is an account group with per-account and subtotal conversions.
type GroupValue struct {
	Currency domain.Currency `json:"currency"`
	Accounts []AccountValue  `json:"accounts"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// PropertyValue is a property with its converted equivalent.
type PropertyValue struct {
	domain.Property
	Converted decimal.Decimal `json:"converted"`
}

// RealEstateSummary sums property values and revenues in the reference currency.
type RealEstateSummary struct {
	Value   decimal.Decimal `json:"value"`
	Revenue decimal.Decimal `json:"revenue"`
}

// AggregateLiquidities sums balance plus interest of every account, converted from
// its group currency.
func AggregateLiquidities(c Converter, h domain.Holdings) decimal.Decimal {
	return lo.Reduce(h.Groups, func(acc decimal.Decimal, g domain.AccountGroup, _ int) decimal.Decimal {
		return acc.Add(groupTotal(c, g))
	}, decimal.Zero)
}

// AggregateRealEstate sums every property value, converted from the reference currency.
func AggregateRealEstate(c Converter, h domain.Holdings) decimal.Decimal {
	return lo.Reduce(h.Properties, func(acc decimal.Decimal, p domain.Property, _ int) decimal.Decimal {
		return acc.Add(c.Convert(p.Value, domain.ReferenceCurrency))
	}, decimal.Zero)
}

// Compute returns the three dashboard KPIs. NetWorth is always the sum of the other two.
func Compute(c Converter, h domain.Holdings) Totals {
	liquidities := AggregateLiquidities(c, h)
	realEstate := AggregateRealEstate(c, h)
	return Totals{
		NetWorth:    liquidities.Add(realEstate),
		Liquidities: liquidities,
		RealEstate:  realEstate,
	}
}

// ValueGroups converts every account of every group.
func ValueGroups(c Converter, h domain.Holdings) []GroupValue {
	return lo.Map(h.Groups, func(g domain.AccountGroup, _ int) GroupValue {
		accounts := lo.Map(g.Accounts, func(a domain.Account, _ int) AccountValue {
			return AccountValue{Account: a, Converted: c.Convert(a.Total(), g.Currency)}
		})
		return GroupValue{
			Currency: g.Currency,
			Accounts: accounts,
			Subtotal: groupTotal(c, g),
		}
	})
}

// ValueProperties converts every property.
func ValueProperties(c Converter, h domain.Holdings) []PropertyValue {
	return lo.Map(h.Properties, func(p domain.Property, _ int) PropertyValue {
		return PropertyValue{Property: p, Converted: c.Convert(p.Value, domain.ReferenceCurrency)}
	})
}

// SummarizeRealEstate sums raw property values and revenues, without conversion.
func SummarizeRealEstate(h domain.Holdings) RealEstateSummary {
	return lo.Reduce(h.Properties, func(acc RealEstateSummary, p domain.Property, _ int) RealEstateSummary {
		return RealEstateSummary{
			Value:   acc.Value.Add(p.Value),
			Revenue: acc.Revenue.Add(p.Revenue),
		}
	}, RealEstateSummary{})
}

func groupTotal(c Converter, g domain.AccountGroup) decimal.Decimal {
	return lo.Reduce(g.Accounts, func(acc decimal.Decimal, a domain.Account, _ int) decimal.Decimal {
		return acc.Add(c.Convert(a.Total(), g.Currency))
	}, decimal.Zero)
}
