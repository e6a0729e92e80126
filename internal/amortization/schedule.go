// Package amortization generates constant-payment loan schedules.
package amortization

import (
	"math"

	"github.com/ogerard/immoval/internal/domain"
)

// InsuranceBasis selects how the monthly borrower-insurance premium is
// computed. The simple calculators charge a flat premium on the initial
// capital; the loan comparator recomputes it on the outstanding balance so
// the premium shrinks as the loan amortizes. Both behaviors are kept behind
// this explicit flag so they cannot silently diverge again.
type InsuranceBasis int

const (
	// BasisInitial charges principal * rate / 12 every month.
	BasisInitial InsuranceBasis = iota
	// BasisDeclining charges outstandingBalance * rate / 12 each month.
	BasisDeclining
)

// MonthlyPayment returns the constant monthly installment (excluding
// insurance) for a loan. A zero term or principal yields 0; a zero or
// negative rate falls back to straight-line repayment.
func MonthlyPayment(principal, annualRatePct, years float64) float64 {
	months := int(math.Round(years * 12))
	if months == 0 || principal == 0 {
		return 0
	}
	r := annualRatePct / 100 / 12
	if r <= 0 {
		return principal / float64(months)
	}
	return principal * r / (1 - math.Pow(1+r, -float64(months)))
}

// TotalMonthlyInstallment returns the monthly debt service including the
// flat initial-capital insurance premium. This is the figure the cashflow
// calculators multiply by 12 for annual debt service.
func TotalMonthlyInstallment(lp domain.LoanParameters) float64 {
	payment := MonthlyPayment(lp.Principal, lp.AnnualRatePct, lp.TermYears)
	if payment == 0 {
		return 0
	}
	return payment + lp.Principal*lp.InsuranceRatePct/100/12
}

// Schedule produces the full month-by-month amortization table for a loan.
// Interest for a row is computed on the balance entering that row; the final
// row's principal portion absorbs any floating-point residual so the
// schedule always terminates at exactly zero.
func Schedule(lp domain.LoanParameters, basis InsuranceBasis) []domain.AmortizationRow {
	months := lp.TermMonths()
	if months <= 0 || lp.Principal <= 0 {
		return nil
	}

	payment := MonthlyPayment(lp.Principal, lp.AnnualRatePct, lp.TermYears)
	rate := lp.MonthlyRate()
	if rate < 0 {
		rate = 0
	}
	insRate := lp.InsuranceRatePct / 100 / 12
	if insRate < 0 {
		insRate = 0
	}
	flatPremium := lp.Principal * insRate

	rows := make([]domain.AmortizationRow, 0, months)
	balance := lp.Principal
	var cumInterest, cumInsurance float64

	for month := 1; month <= months; month++ {
		interest := balance * rate
		principal := payment - interest
		if month == months {
			// Zero out floating-point drift on the last row.
			principal = balance
		}

		premium := flatPremium
		if basis == BasisDeclining {
			premium = balance * insRate
		}

		balance -= principal
		cumInterest += interest
		cumInsurance += premium

		rows = append(rows, domain.AmortizationRow{
			Month:        month,
			Installment:  interest + principal + premium,
			Interest:     interest,
			Insurance:    premium,
			Principal:    principal,
			Balance:      balance,
			CumInterest:  cumInterest,
			CumInsurance: cumInsurance,
		})
	}

	return rows
}
