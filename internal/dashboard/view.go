package dashboard

import (
	"github.com/mtlprog/patrimoine/internal/domain"
	"github.com/mtlprog/patrimoine/internal/valuation"
)

// RealEstateSection is the real-estate detail view.
type RealEstateSection struct {
	Properties []valuation.PropertyValue   `json:"properties"`
	Summary    valuation.RealEstateSummary `json:"summary"`
	Currency   domain.Currency             `json:"currency"`
}

// View is an immutable snapshot of everything a renderer needs.
type View struct {
	State           State                  `json:"state"`
	Totals          valuation.Totals       `json:"totals"`
	Liquidities     []valuation.GroupValue `json:"liquidities,omitempty"`
	RealEstate      *RealEstateSection     `json:"realEstate,omitempty"`
	ShowEditBanner  bool                   `json:"showEditBanner"`
	RefreshDisabled bool                   `json:"refreshDisabled"`
}

// Build computes a fresh snapshot. KPIs never depend on the active tab; only the
// populated detail section does.
func Build(s State, h domain.Holdings, rates domain.RateTable) View {
	c := valuation.NewConverter(rates, s.Base)

	v := View{
		State:           s,
		Totals:          valuation.Compute(c, h),
		ShowEditBanner:  s.EditMode,
		RefreshDisabled: s.Loading,
	}

	switch s.Tab {
	case TabLiquidities:
		v.Liquidities = valuation.ValueGroups(c, h)
	case TabRealEstate:
		v.RealEstate = &RealEstateSection{
			Properties: valuation.ValueProperties(c, h),
			Summary:    valuation.SummarizeRealEstate(h),
			Currency:   domain.ReferenceCurrency,
		}
	}

	return v
}
