// Package viager values life-annuity and fixed-term property sales.
//
// The valuation decomposes the market value into the retained occupancy
// right (DUH), an upfront payment (bouquet) and a periodic payment (rente),
// then projects the resale value over the horizon and derives an annualized
// holding-period return for the buyer.
package viager

import (
	"math"

	"github.com/ogerard/immoval/internal/acquisition"
	"github.com/ogerard/immoval/internal/annuity"
	"github.com/ogerard/immoval/internal/domain"
	"github.com/ogerard/immoval/internal/lifetable"
)

// Value runs a complete valuation for a scenario. It is a pure function:
// invalid or negative inputs are normalized before use and every division
// is guarded, so the result is always finite and the call never fails.
func Value(s domain.ViagerScenario) domain.ValuationResult {
	s = normalize(s)

	horizon := s.TermYears
	if s.Mode != domain.SaleTerm {
		horizon = lifetable.Lookup(s.OccupantAge, s.OccupantSex)
	}
	if horizon < 1 {
		horizon = 1
	}

	var occupancy float64
	if s.Mode == domain.SaleOccupied {
		occupancy = annuity.PresentValueLevel(s.EstimatedRent, horizon, s.DiscountRatePct)
	}

	base := s.MarketValue
	if s.Mode == domain.SaleOccupied {
		base = s.MarketValue - occupancy
		if base < 0 {
			base = 0
		}
	}

	// The bouquet/rente split must be exactly zero-sum on the base value.
	upfront := s.UpfrontPct / 100 * base
	periodicCapital := base - upfront
	if periodicCapital < 0 {
		periodicCapital = 0
	}

	var monthly float64
	if s.Mode == domain.SaleTerm {
		if months := s.TermYears * 12; months > 0 {
			monthly = periodicCapital / months
		}
	} else {
		monthly = annuity.SolveMonthly(periodicCapital, horizon, s.DiscountRatePct, s.IndexationRatePct)
	}

	notary := acquisition.NotaryFees(base)

	// Deliberately undiscounted: the tool sums nominal outflows over the
	// horizon rather than computing a net present value.
	outlay := upfront + notary + monthly*horizon*12 + (s.AnnualCharges+s.AnnualPropertyTax)*horizon

	projected := s.MarketValue * math.Pow(1+s.AppreciationPct/100, horizon)
	proceeds := projected * (1 - s.SaleCostsPct/100)

	var annualized float64
	if outlay > 0 {
		annualized = (math.Pow(proceeds/outlay, 1/horizon) - 1) * 100
		if math.IsNaN(annualized) || math.IsInf(annualized, 0) {
			annualized = 0
		}
	}

	var discount float64
	if s.MarketValue > 0 {
		discount = occupancy / s.MarketValue * 100
	}

	return domain.ValuationResult{
		HorizonYears:        horizon,
		OccupancyValue:      occupancy,
		BaseValue:           base,
		UpfrontAmount:       upfront,
		MonthlyPayment:      monthly,
		NotaryFees:          notary,
		TotalOutlay:         outlay,
		ProjectedPrice:      projected,
		NetProceeds:         proceeds,
		AnnualizedReturnPct: annualized,
		DiscountPct:         discount,
	}
}

// normalize floors invalid scenario fields before they enter the pipeline.
func normalize(s domain.ViagerScenario) domain.ViagerScenario {
	clampZero(&s.MarketValue)
	clampZero(&s.OccupantAge)
	clampZero(&s.EstimatedRent)
	clampZero(&s.AnnualCharges)
	clampZero(&s.AnnualPropertyTax)
	clampZero(&s.TermYears)
	clampZero(&s.SaleCostsPct)
	clampFinite(&s.DiscountRatePct)
	clampFinite(&s.IndexationRatePct)
	clampFinite(&s.AppreciationPct)
	if s.UpfrontPct < 0 {
		s.UpfrontPct = 0
	} else if s.UpfrontPct > 100 {
		s.UpfrontPct = 100
	}
	return s
}

func clampZero(v *float64) {
	if *v < 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
		*v = 0
	}
}

// Rates may legitimately be negative (the formulas branch on that); only
// non-finite values are zeroed.
func clampFinite(v *float64) {
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		*v = 0
	}
}
