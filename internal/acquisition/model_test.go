package acquisition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ogerard/immoval/internal/amortization"
	"github.com/ogerard/immoval/internal/domain"
)

func TestNotaryFees(t *testing.T) {
	assert.InDelta(t, 22500, NotaryFees(300000), 1e-9)
	assert.Equal(t, 0.0, NotaryFees(0))
	assert.Equal(t, 0.0, NotaryFees(-1000))
}

func TestEvaluateUnleveraged(t *testing.T) {
	in := domain.RentalInput{
		Price:                300000,
		MonthlyRent:          1000,
		AnnualCharges:        1000,
		AnnualPropertyTax:    800,
		IncomeTaxRatePct:     30,
		SocialChargesRatePct: 17.2,
	}
	r := Evaluate(in)

	assert.InDelta(t, 4.0, r.GrossYieldPct, 1e-9)
	assert.InDelta(t, 10200.0/300000*100, r.NetYieldPct, 1e-9)
	assert.Equal(t, 0.0, r.AnnualDebtService)

	// 10200 net revenue taxed at a blended 47.2% leaves 448.80 a month.
	assert.InDelta(t, 10200*(1-0.472)/12, r.AfterTaxMonthlyCashflow, 1e-9)
	assert.InDelta(t, 22500, r.NotaryFees, 1e-9)
}

func TestEvaluateWithLoan(t *testing.T) {
	loan := domain.LoanParameters{Principal: 240000, AnnualRatePct: 3.5, InsuranceRatePct: 0.36, TermYears: 25}
	in := domain.RentalInput{
		Price:             300000,
		MonthlyRent:       1000,
		AnnualCharges:     1000,
		AnnualPropertyTax: 800,
		Loan:              loan,
	}
	r := Evaluate(in)

	expectedDebt := amortization.TotalMonthlyInstallment(loan) * 12
	assert.InDelta(t, expectedDebt, r.AnnualDebtService, 1e-9)
	assert.InDelta(t, (10200-expectedDebt)/12, r.AfterTaxMonthlyCashflow, 1e-9)

	// Debt service never touches the yields.
	assert.InDelta(t, 4.0, r.GrossYieldPct, 1e-9)
}

func TestEvaluateZeroPrice(t *testing.T) {
	r := Evaluate(domain.RentalInput{MonthlyRent: 1000})

	assert.Equal(t, 0.0, r.GrossYieldPct)
	assert.Equal(t, 0.0, r.NetYieldPct)
	assert.Equal(t, 0.0, r.NotaryFees)
	assert.InDelta(t, 1000, r.AfterTaxMonthlyCashflow, 1e-9)
}
