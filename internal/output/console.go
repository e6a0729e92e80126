// Package output renders engine results for the CLI, CSV export, PDF
// reports and share links.
package output

import (
	"bytes"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/ogerard/immoval/internal/domain"
)

// FormatValuation renders a viager valuation as a plain-text report.
func FormatValuation(s domain.ViagerScenario, r domain.ValuationResult) string {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "Viager Valuation (%s)\n", modeLabel(s.Mode))
	fmt.Fprintf(buf, "=====================================\n")
	fmt.Fprintf(buf, "Market value:          %s\n", Currency(s.MarketValue))
	fmt.Fprintf(buf, "Horizon:               %.1f years\n", r.HorizonYears)
	if s.Mode == domain.SaleOccupied {
		fmt.Fprintf(buf, "Occupancy right (DUH): %s (%.1f%% of market value)\n", Currency(r.OccupancyValue), r.DiscountPct)
	}
	fmt.Fprintf(buf, "Base value:            %s\n", Currency(r.BaseValue))
	fmt.Fprintf(buf, "Bouquet (%.0f%%):        %s\n", s.UpfrontPct, Currency(r.UpfrontAmount))
	fmt.Fprintf(buf, "Monthly payment:       %s\n", Currency(r.MonthlyPayment))
	fmt.Fprintf(buf, "Notary fees:           %s\n", Currency(r.NotaryFees))
	fmt.Fprintf(buf, "-------------------------------------\n")
	fmt.Fprintf(buf, "Total outlay:          %s\n", Currency(r.TotalOutlay))
	fmt.Fprintf(buf, "Projected resale:      %s\n", Currency(r.ProjectedPrice))
	fmt.Fprintf(buf, "Net proceeds:          %s\n", Currency(r.NetProceeds))
	fmt.Fprintf(buf, "Annualized return:     %s\n", Percent(r.AnnualizedReturnPct))

	return buf.String()
}

// FormatRental renders a buy-to-let evaluation as a plain-text report.
func FormatRental(in domain.RentalInput, r domain.RentalResult) string {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "Rental Evaluation\n")
	fmt.Fprintf(buf, "=====================================\n")
	fmt.Fprintf(buf, "Price:                 %s\n", Currency(in.Price))
	fmt.Fprintf(buf, "Notary fees:           %s\n", Currency(r.NotaryFees))
	fmt.Fprintf(buf, "Gross yield:           %s\n", Percent(r.GrossYieldPct))
	fmt.Fprintf(buf, "Net yield:             %s\n", Percent(r.NetYieldPct))
	fmt.Fprintf(buf, "Annual debt service:   %s\n", Currency(r.AnnualDebtService))
	fmt.Fprintf(buf, "After-tax cashflow:    %s / month\n", Currency(r.AfterTaxMonthlyCashflow))

	return buf.String()
}

// FormatScheduleSummary renders the headline figures of a schedule.
func FormatScheduleSummary(lp domain.LoanParameters, rows []domain.AmortizationRow) string {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "Loan %s over %.0f years at %.2f%%\n", Currency(lp.Principal), lp.TermYears, lp.AnnualRatePct)
	if len(rows) == 0 {
		fmt.Fprintf(buf, "No schedule (empty term or principal).\n")
		return buf.String()
	}
	last := rows[len(rows)-1]
	fmt.Fprintf(buf, "Monthly installment:   %s\n", Currency(rows[0].Installment))
	fmt.Fprintf(buf, "Total interest:        %s\n", Currency(last.CumInterest))
	fmt.Fprintf(buf, "Total insurance:       %s\n", Currency(last.CumInsurance))
	fmt.Fprintf(buf, "Total cost of credit:  %s\n", Currency(last.CumInterest+last.CumInsurance))

	return buf.String()
}

// Currency formats an amount with two decimals and a euro suffix.
// Non-finite values render as a placeholder instead of a number.
func Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return decimal.NewFromFloat(v).StringFixed(2) + " EUR"
}

// Percent formats a 0-100 percentage with two decimals.
func Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return decimal.NewFromFloat(v).StringFixed(2) + " %"
}

func modeLabel(m domain.SaleMode) string {
	switch m {
	case domain.SaleFree:
		return "viager libre"
	case domain.SaleTerm:
		return "vente a terme"
	default:
		return "viager occupe"
	}
}
