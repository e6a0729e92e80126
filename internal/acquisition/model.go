// Package acquisition aggregates yield and cashflow figures for a classic
// rental purchase, reusing the amortization engine's debt-service output.
package acquisition

import (
	"github.com/ogerard/immoval/internal/amortization"
	"github.com/ogerard/immoval/internal/domain"
)

// notaryFeeRate is the flat legacy approximation of French acquisition
// costs for existing properties.
const notaryFeeRate = 0.075

// NotaryFees returns the flat 7.5% notary-fee approximation on a price,
// zero for non-positive prices.
func NotaryFees(price float64) float64 {
	if price <= 0 {
		return 0
	}
	return price * notaryFeeRate
}

// Evaluate computes gross/net yields and the after-tax monthly cashflow for
// a rental purchase. Tax is a flat blended rate (income tax plus social
// charges) applied to net revenue before debt service.
func Evaluate(in domain.RentalInput) domain.RentalResult {
	annualRent := in.MonthlyRent * 12
	netRevenue := annualRent - in.AnnualCharges - in.AnnualPropertyTax

	var grossYield, netYield float64
	if in.Price > 0 {
		grossYield = annualRent / in.Price * 100
		netYield = netRevenue / in.Price * 100
	}

	debtService := amortization.TotalMonthlyInstallment(in.Loan) * 12

	taxRate := (in.IncomeTaxRatePct + in.SocialChargesRatePct) / 100
	cashflow := (netRevenue*(1-taxRate) - debtService) / 12

	return domain.RentalResult{
		GrossYieldPct:           grossYield,
		NetYieldPct:             netYield,
		AfterTaxMonthlyCashflow: cashflow,
		AnnualDebtService:       debtService,
		NotaryFees:              NotaryFees(in.Price),
	}
}
