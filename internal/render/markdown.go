package render

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	md "github.com/nao1215/markdown"
	"github.com/samber/lo"

	"github.com/mtlprog/patrimoine/internal/dashboard"
	"github.com/mtlprog/patrimoine/internal/format"
)

// Markdown renders the dashboard as a markdown document.
func Markdown(v dashboard.View, f *format.Formatter) (string, error) {
	p := newPage(v, f)

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(p.Title)
	doc.PlainText(p.Subtitle)
	doc.LF()

	if p.EditBanner {
		doc.Note(p.EditTitle + ". " + p.EditMessage)
		doc.LF()
	}

	active, _ := lo.Find(p.Tabs, func(l link) bool { return l.Active })
	doc.PlainTextf("**%s** · %s", active.Label, p.RefreshText)
	doc.LF()

	doc.Table(md.TableSet{
		Header: []string{"Indicateur", "Valeur"},
		Rows: lo.Map(p.KPIs, func(k kpi, _ int) []string {
			return []string{k.Label, k.Value}
		}),
	})

	for _, g := range p.Groups {
		doc.LF()
		doc.H2(g.Heading)
		doc.Table(md.TableSet{
			Header: []string{"Compte", "Banque", "Taux", "Solde", "Intérêts", "Équivalent"},
			Rows: lo.Map(g.Accounts, func(a accountLine, _ int) []string {
				return []string{a.Name, a.Bank, a.Rate, a.Balance, a.Interest, a.Converted}
			}),
		})
	}

	if re := p.RealEstate; re != nil {
		doc.LF()
		doc.H2(re.Heading)
		doc.Table(md.TableSet{
			Header: []string{"Bien", "Valeur", "Revenus", "Équivalent"},
			Rows: lo.Map(re.Properties, func(pl propertyLine, _ int) []string {
				return []string{pl.Name, pl.Value, pl.Revenue, pl.Converted}
			}),
		})
		doc.LF()
		doc.PlainTextf("Valeur totale: %s", re.TotalValue)
		doc.LF()
		doc.PlainTextf("Revenus annuels: %s", re.TotalRent)
	}

	doc.LF()
	doc.PlainText(p.Footer)

	if err := doc.Build(); err != nil {
		return "", fmt.Errorf("building markdown: %w", err)
	}
	return buf.String(), nil
}

// Terminal renders the dashboard for an ANSI terminal.
func Terminal(v dashboard.View, f *format.Formatter, width int) (string, error) {
	text, err := Markdown(v, f)
	if err != nil {
		return "", err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}

	out, err := r.Render(text)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
