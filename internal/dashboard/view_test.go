package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/patrimoine/internal/domain"
)

func TestBuildTabDoesNotChangeKPIs(t *testing.T) {
	h := domain.DefaultHoldings()
	rates := domain.FallbackRates()
	s := Initial(domain.AED).Loaded()

	overview := Build(s, h, rates)
	liquidities := Build(s.WithTab(TabLiquidities), h, rates)
	realEstate := Build(s.WithTab(TabRealEstate), h, rates)

	for _, v := range []View{liquidities, realEstate} {
		assert.True(t, overview.Totals.NetWorth.Equal(v.Totals.NetWorth))
		assert.True(t, overview.Totals.Liquidities.Equal(v.Totals.Liquidities))
		assert.True(t, overview.Totals.RealEstate.Equal(v.Totals.RealEstate))
	}

	assert.Nil(t, overview.Liquidities)
	assert.Nil(t, overview.RealEstate)

	assert.Len(t, liquidities.Liquidities, 3)
	assert.Nil(t, liquidities.RealEstate)

	require.NotNil(t, realEstate.RealEstate)
	assert.Nil(t, realEstate.Liquidities)
	assert.Len(t, realEstate.RealEstate.Properties, 3)
	assert.Equal(t, "1210000", realEstate.RealEstate.Summary.Value.String())
	assert.Equal(t, "55000", realEstate.RealEstate.Summary.Revenue.String())
}

func TestBuildEditBannerDoesNotTouchData(t *testing.T) {
	h := domain.DefaultHoldings()
	rates := domain.FallbackRates()
	s := Initial(domain.EUR).Loaded()

	plain := Build(s, h, rates)
	editing := Build(s.ToggleEdit(), h, rates)

	assert.False(t, plain.ShowEditBanner)
	assert.True(t, editing.ShowEditBanner)
	assert.True(t, plain.Totals.NetWorth.Equal(editing.Totals.NetWorth))
	assert.Equal(t, domain.DefaultHoldings(), h)
}

func TestBuildWhileLoading(t *testing.T) {
	v := Build(Initial(domain.EUR), domain.DefaultHoldings(), domain.RateTable{})

	assert.True(t, v.RefreshDisabled)
	assert.True(t, v.Totals.NetWorth.IsZero())
}

func TestBuildBaseCurrencyScenario(t *testing.T) {
	h := domain.Holdings{Groups: []domain.AccountGroup{{
		Currency: domain.AED,
		Accounts: []domain.Account{{Bank: "Wio Bank", Name: "Savings", Balance: decimal.NewFromInt(100)}},
	}}}
	rates := domain.RateTable{domain.EUR: decimal.NewFromInt(1), domain.AED: decimal.RequireFromString("4.0")}

	v := Build(Initial(domain.EUR).Loaded(), h, rates)
	assert.Equal(t, "25.00", v.Totals.Liquidities.StringFixed(2))
	assert.Equal(t, "25.00", v.Totals.NetWorth.StringFixed(2))
}
