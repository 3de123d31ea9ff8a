package render

import (
	"github.com/samber/lo"

	"github.com/mtlprog/patrimoine/internal/dashboard"
	"github.com/mtlprog/patrimoine/internal/domain"
	"github.com/mtlprog/patrimoine/internal/format"
	"github.com/mtlprog/patrimoine/internal/valuation"
)

// Labels shown in every rendering.
const (
	title          = "Patrimoine Global"
	subtitle       = "Référence PR2025 • Dashboard minimaliste"
	footer         = "Taux de change mis à jour en temps réel • Dashboard privé"
	editTitle      = "✏️ Mode édition activé"
	editMessage    = "Pour modifier les données, contactez-moi avec la liste des corrections à appliquer."
	realEstateHead = "Patrimoine Immobilier"
)

var tabLabels = map[dashboard.Tab]string{
	dashboard.TabOverview:    "Vue d'ensemble",
	dashboard.TabLiquidities: "Liquidités",
	dashboard.TabRealEstate:  "Immobilier",
}

type link struct {
	Label  string
	Href   string
	Active bool
}

type kpi struct {
	Label    string
	Value    string
	Primary  bool
	Positive bool
}

type accountLine struct {
	Name      string
	Bank      string
	Rate      string
	Balance   string
	Interest  string
	Converted string
}

type groupSection struct {
	Heading  string
	Accounts []accountLine
}

type propertyLine struct {
	Name      string
	Revenue   string
	Value     string
	Converted string
}

type realEstateSection struct {
	Heading    string
	Properties []propertyLine
	TotalValue string
	TotalRent  string
}

// page is a View with every number already formatted.
type page struct {
	Title       string
	Subtitle    string
	Footer      string
	Bases       []link
	Tabs        []link
	EditLink    link
	RefreshText string
	Refreshing  bool
	EditBanner  bool
	EditTitle   string
	EditMessage string
	KPIs        []kpi
	Groups      []groupSection
	RealEstate  *realEstateSection
}

func newPage(v dashboard.View, f *format.Formatter) page {
	s := v.State
	base := s.Base

	p := page{
		Title:       title,
		Subtitle:    subtitle,
		Footer:      footer,
		Refreshing:  v.RefreshDisabled,
		RefreshText: "⟳ Actualiser",
		EditBanner:  v.ShowEditBanner,
		EditTitle:   editTitle,
		EditMessage: editMessage,
	}
	if v.RefreshDisabled {
		p.RefreshText = "Chargement..."
	}

	p.Bases = lo.Map(domain.DisplayCurrencies, func(c domain.Currency, _ int) link {
		return link{Label: format.Symbol(c) + " " + string(c), Href: href(s.WithBase(c)), Active: c == base}
	})
	p.Tabs = lo.Map(dashboard.Tabs, func(t dashboard.Tab, _ int) link {
		return link{Label: tabLabels[t], Href: href(s.WithTab(t)), Active: t == s.Tab}
	})
	p.EditLink = link{Label: "✏️ Modifier", Href: href(s.ToggleEdit()), Active: s.EditMode}
	if s.EditMode {
		p.EditLink.Label = "✓ Mode édition"
	}

	p.KPIs = []kpi{
		{Label: "Patrimoine Net", Value: f.Money(v.Totals.NetWorth, base), Primary: true},
		{Label: "Liquidités", Value: f.Money(v.Totals.Liquidities, base), Positive: true},
		{Label: "Immobilier", Value: f.Money(v.Totals.RealEstate, base)},
	}

	p.Groups = lo.Map(v.Liquidities, func(g valuation.GroupValue, _ int) groupSection {
		return groupSection{
			Heading: format.Symbol(g.Currency) + " " + string(g.Currency),
			Accounts: lo.Map(g.Accounts, func(a valuation.AccountValue, _ int) accountLine {
				line := accountLine{
					Name:      a.Name,
					Bank:      a.Bank,
					Balance:   f.Money(a.Balance, g.Currency),
					Converted: "≈ " + f.Money(a.Converted, base),
				}
				if a.HasRate() {
					line.Rate = "Taux: " + format.Percent(a.Rate)
				}
				if a.HasInterest() {
					line.Interest = "+" + f.Amount(a.Interest)
				}
				return line
			}),
		}
	})

	if re := v.RealEstate; re != nil {
		sym := format.Symbol(re.Currency)
		p.RealEstate = &realEstateSection{
			Heading: realEstateHead,
			Properties: lo.Map(re.Properties, func(pv valuation.PropertyValue, _ int) propertyLine {
				return propertyLine{
					Name:      pv.Name,
					Revenue:   "Revenus: " + f.Amount(pv.Revenue) + " " + sym + "/an",
					Value:     f.Amount(pv.Value) + " " + sym,
					Converted: "≈ " + f.Money(pv.Converted, base),
				}
			}),
			TotalValue: f.Amount(re.Summary.Value) + " " + sym,
			TotalRent:  f.Amount(re.Summary.Revenue) + " " + sym,
		}
	}

	return p
}

func href(s dashboard.State) string {
	return "?" + s.Query().Encode()
}
