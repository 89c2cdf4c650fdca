package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/fersproj/internal/domain"
)

// ProjectionColumns is the exact 14-column header spec.md §6 specifies for
// projection CSV export.
var ProjectionColumns = []string{
	"Year", "Age", "Annuity", "FERS Supplement", "Social Security",
	"TSP Withdrawal", "Gross Income", "Federal Tax", "State Tax",
	"IRMAA Surcharge", "After-Tax Income", "Total Expenses", "Net Surplus",
	"TSP Balance (EOY)",
}

// ExportProjection writes result as a 14-column CSV, per spec.md §6:
// integer dollars with thousands separators, no currency symbol.
func ExportProjection(w io.Writer, result domain.FullSimulationResult) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(ProjectionColumns); err != nil {
		return err
	}

	for _, y := range result.Years {
		record := []string{
			strconv.Itoa(y.Year),
			strconv.Itoa(y.Age),
			formatDollars(y.Annuity),
			formatDollars(y.Supplement),
			formatDollars(y.SocialSecurityGross),
			formatDollars(y.TSPWithdrawalTraditional.Add(y.TSPWithdrawalRoth)),
			formatDollars(y.GrossIncome),
			formatDollars(y.FederalTax),
			formatDollars(y.StateTax),
			formatDollars(y.IRMAASurcharge),
			formatDollars(y.AfterTaxIncome),
			formatDollars(y.TotalExpenses),
			formatDollars(y.Surplus),
			formatDollars(y.TotalTSPBalance()),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

// formatDollars renders d as an integer-dollar amount with thousands
// separators and no currency symbol, per spec.md §6.
func formatDollars(d decimal.Decimal) string {
	rounded := d.Round(0)
	neg := rounded.IsNegative()
	if neg {
		rounded = rounded.Neg()
	}
	digits := rounded.StringFixed(0)

	var grouped []byte
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, c)
	}

	s := string(grouped)
	if neg {
		s = "-" + s
	}
	return s
}
