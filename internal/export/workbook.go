package export

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/mtlprog/patrimoine/internal/dashboard"
	"github.com/mtlprog/patrimoine/internal/domain"
	"github.com/mtlprog/patrimoine/internal/valuation"
)

// Sheet names.
const (
	SheetSummary     = "Synthèse"
	SheetLiquidities = "Liquidités"
	SheetRealEstate  = "Immobilier"
)

// Workbook builds an export from the complete holdings, whichever tab is active.
func Workbook(s dashboard.State, h domain.Holdings, rates domain.RateTable) (*excelize.File, error) {
	c := valuation.NewConverter(rates, s.Base)
	totals := valuation.Compute(c, h)
	base := c.Base()

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, fmt.Errorf("renaming default sheet: %w", err)
	}

	summary := [][]any{
		{"Indicateur", "Valeur", "Devise"},
		{"Patrimoine Net", toFloat(totals.NetWorth), string(base)},
		{"Liquidités", toFloat(totals.Liquidities), string(base)},
		{"Immobilier", toFloat(totals.RealEstate), string(base)},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeSheet(f, SheetLiquidities, buildLiquidities(valuation.ValueGroups(c, h), base)); err != nil {
		f.Close()
		return nil, err
	}

	re := buildRealEstate(valuation.ValueProperties(c, h), valuation.SummarizeRealEstate(h), base)
	if err := writeSheet(f, SheetRealEstate, re); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// WriteWorkbook builds the export and writes it as XLSX to w.
func WriteWorkbook(w io.Writer, s dashboard.State, h domain.Holdings, rates domain.RateTable) error {
	f, err := Workbook(s, h, rates)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// buildLiquidities builds one row per account.
// Columns: Devise | Banque | Compte | Solde | Intérêts | Taux (%) | Équivalent | Base
func buildLiquidities(groups []valuation.GroupValue, base domain.Currency) [][]any {
	data := [][]any{
		{"Devise", "Banque", "Compte", "Solde", "Intérêts", "Taux (%)", "Équivalent", "Base"},
	}
	for _, g := range groups {
		for _, a := range g.Accounts {
			data = append(data, []any{
				string(g.Currency), a.Bank, a.Name,
				toFloat(a.Balance), optionalFloat(a.Interest), optionalFloat(a.Rate),
				toFloat(a.Converted), string(base),
			})
		}
	}
	return data
}

// buildRealEstate builds one row per property followed by a totals row.
// Columns: Bien | Valeur (EUR) | Revenus (EUR/an) | Équivalent | Base
func buildRealEstate(props []valuation.PropertyValue, summary valuation.RealEstateSummary, base domain.Currency) [][]any {
	ref := string(domain.ReferenceCurrency)
	data := [][]any{
		{"Bien", "Valeur (" + ref + ")", "Revenus (" + ref + "/an)", "Équivalent", "Base"},
	}
	data = append(data, lo.Map(props, func(p valuation.PropertyValue, _ int) []any {
		return []any{p.Name, toFloat(p.Value), toFloat(p.Revenue), toFloat(p.Converted), string(base)}
	})...)
	data = append(data, []any{"Total", toFloat(summary.Value), toFloat(summary.Revenue), nil, nil})
	return data
}

func writeSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet %s: %w", name, err)
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("resolving cell for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func toFloat(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func optionalFloat(d decimal.Decimal) any {
	if d.IsZero() {
		return nil
	}
	return d.InexactFloat64()
}
