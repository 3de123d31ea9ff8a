package dashboard

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mtlprog/patrimoine/internal/domain"
)

var (
	// ErrUnsupportedBase is returned for a base currency that cannot be displayed.
	ErrUnsupportedBase = errors.New("unsupported base currency")
	// ErrUnknownTab is returned for a tab name outside Tabs.
	ErrUnknownTab = errors.New("unknown tab")
)

// Tab selects which detail section is visible.
type Tab string

const (
	TabOverview    Tab = "overview"
	TabLiquidities Tab = "liquidities"
	TabRealEstate  Tab = "realestate"
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabOverview, TabLiquidities, TabRealEstate}

// State is the transient display state. Transitions return a new value.
type State struct {
	Base     domain.Currency `json:"base"`
	Tab      Tab             `json:"tab"`
	Loading  bool            `json:"loading"`
	EditMode bool            `json:"editMode"`
}

// Initial returns the state of a freshly opened dashboard.
func Initial(base domain.Currency) State {
	return State{Base: base, Tab: TabOverview, Loading: true}
}

// WithBase selects the display currency.
func (s State) WithBase(c domain.Currency) State {
	s.Base = c
	return s
}

// WithTab selects the visible section.
func (s State) WithTab(t Tab) State {
	s.Tab = t
	return s
}

// ToggleEdit flips the edit banner.
func (s State) ToggleEdit() State {
	s.EditMode = !s.EditMode
	return s
}

// Loaded leaves the loading state. It never re-enters it.
func (s State) Loaded() State {
	s.Loading = false
	return s
}

// Query encodes the user-controlled part of the state as URL query parameters.
func (s State) Query() url.Values {
	q := url.Values{}
	q.Set("base", string(s.Base))
	q.Set("tab", string(s.Tab))
	if s.EditMode {
		q.Set("edit", "1")
	}
	return q
}

// ParseBase parses a display currency code.
func ParseBase(v string) (domain.Currency, error) {
	c := domain.NormalizeCurrency(v)
	if !domain.IsDisplayCurrency(c) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedBase, v)
	}
	return c, nil
}

// ParseTab parses a tab name.
func ParseTab(v string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(v)))
	for _, known := range Tabs {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, v)
}

// FromQuery applies query parameters to s. Missing parameters keep their current value.
func FromQuery(s State, q url.Values) (State, error) {
	if v := q.Get("base"); v != "" {
		base, err := ParseBase(v)
		if err != nil {
			return State{}, err
		}
		s = s.WithBase(base)
	}
	if v := q.Get("tab"); v != "" {
		tab, err := ParseTab(v)
		if err != nil {
			return State{}, err
		}
		s = s.WithTab(tab)
	}
	switch q.Get("edit") {
	case "1", "true", "on":
		s.EditMode = true
	case "0", "false", "off":
		s.EditMode = false
	}
	return s, nil
}
