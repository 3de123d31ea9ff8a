package holdings

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/mtlprog/patrimoine/internal/domain"
	"github.com/mtlprog/patrimoine/internal/format"
)

// ErrInvalid wraps every validation failure of a holdings file.
var ErrInvalid = errors.New("invalid holdings")

// Load returns the built-in registry when path is empty, or the holdings read from
// the YAML file at path.
func Load(path string) (domain.Holdings, error) {
	if path == "" {
		return domain.DefaultHoldings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Holdings{}, fmt.Errorf("reading holdings: %w", err)
	}
	h, err := Parse(data)
	if err != nil {
		return domain.Holdings{}, err
	}
	slog.Info("Holdings: file loaded", "path", path, "groups", len(h.Groups), "accounts", h.AccountCount(), "properties", len(h.Properties))
	return h, nil
}

// Parse decodes and validates a YAML holdings document.
func Parse(data []byte) (domain.Holdings, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var h domain.Holdings
	if err := dec.Decode(&h); err != nil {
		return domain.Holdings{}, fmt.Errorf("parsing holdings: %w", err)
	}
	for i := range h.Groups {
		h.Groups[i].Currency = domain.NormalizeCurrency(string(h.Groups[i].Currency))
	}
	if err := Validate(h); err != nil {
		return domain.Holdings{}, err
	}
	return h, nil
}

// Validate checks currency codes, duplicate groups and amount signs.
func Validate(h domain.Holdings) error {
	if dups := lo.FindDuplicates(h.Currencies()); len(dups) > 0 {
		return fmt.Errorf("%w: duplicate currency group %s", ErrInvalid, dups[0])
	}
	for _, g := range h.Groups {
		if !format.IsKnownCurrency(g.Currency) {
			return fmt.Errorf("%w: unknown currency %q", ErrInvalid, g.Currency)
		}
		for _, a := range g.Accounts {
			if a.Name == "" {
				return fmt.Errorf("%w: account without name in %s group", ErrInvalid, g.Currency)
			}
			if a.Balance.IsNegative() || a.Interest.IsNegative() {
				return fmt.Errorf("%w: negative amount on account %q", ErrInvalid, a.Name)
			}
		}
	}

	for _, p := range h.Properties {
		if p.Name == "" {
			return fmt.Errorf("%w: property without name", ErrInvalid)
		}
		if p.Value.IsNegative() || p.Revenue.IsNegative() {
			return fmt.Errorf("%w: negative amount on property %q", ErrInvalid, p.Name)
		}
	}
	return nil
}
