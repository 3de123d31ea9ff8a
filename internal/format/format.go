package format

import (
	"fmt"

	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mtlprog/patrimoine/internal/domain"
)

// DefaultLocale is the locale amounts are formatted in unless configured otherwise.
const DefaultLocale = "fr-FR"

// symbolOverrides replaces go-money graphemes that differ from the ones we display.
var symbolOverrides = map[domain.Currency]string{
	domain.AED: "د.إ",
	domain.GEL: "₾",
}

// Formatter formats numbers for one locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// New creates a Formatter for a BCP 47 locale such as "fr-FR".
func New(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}, nil
}

// Must is like New but panics on an invalid locale.
func Must(locale string) *Formatter {
	f, err := New(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() string { return f.tag.String() }

// Amount formats d with exactly two decimals and locale separators.
func (f *Formatter) Amount(d decimal.Decimal) string {
	v := d.Round(2)
	if v.IsZero() {
		v = decimal.Zero
	}
	return f.printer.Sprintf("%.2f", v.InexactFloat64())
}

// Money formats d followed by the currency code, e.g. "1 234,50 EUR".
func (f *Formatter) Money(d decimal.Decimal, c domain.Currency) string {
	return f.Amount(d) + " " + string(c)
}

// Percent formats an annual rate as recorded, e.g. "10.75%".
func Percent(d decimal.Decimal) string {
	return d.String() + "%"
}

// Symbol returns the display grapheme for a currency, or its code when unknown.
func Symbol(c domain.Currency) string {
	if s, ok := symbolOverrides[c]; ok {
		return s
	}
	if cur := money.GetCurrency(string(c)); cur != nil && cur.Grapheme != "" {
		return cur.Grapheme
	}
	return string(c)
}

// IsKnownCurrency reports whether c is an ISO 4217 code.
func IsKnownCurrency(c domain.Currency) bool {
	return money.GetCurrency(string(c)) != nil
}
