package viager

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogerard/immoval/internal/annuity"
	"github.com/ogerard/immoval/internal/domain"
	"github.com/ogerard/immoval/internal/lifetable"
)

func occupiedScenario() domain.ViagerScenario {
	return domain.ViagerScenario{
		MarketValue:       292000,
		OccupantAge:       71,
		OccupantSex:       "Femme",
		EstimatedRent:     740,
		DiscountRatePct:   2,
		UpfrontPct:        30,
		IndexationRatePct: 1.5,
		AnnualCharges:     1800,
		AnnualPropertyTax: 1200,
		AppreciationPct:   1,
		SaleCostsPct:      7,
		Mode:              domain.SaleOccupied,
	}
}

func TestValueOccupied(t *testing.T) {
	s := occupiedScenario()
	r := Value(s)

	horizon := lifetable.Lookup(71, "Femme")
	assert.Equal(t, horizon, r.HorizonYears)

	expectedDUH := annuity.PresentValueLevel(740, horizon, 2)
	assert.InDelta(t, expectedDUH, r.OccupancyValue, 1e-9)
	assert.InDelta(t, 292000-expectedDUH, r.BaseValue, 1e-9)

	assert.False(t, math.IsNaN(r.OccupancyValue))
	assert.False(t, math.IsNaN(r.BaseValue))
	assert.LessOrEqual(t, r.BaseValue, 292000.0)
	assert.Greater(t, r.BaseValue, 0.0)

	assert.InDelta(t, expectedDUH/292000*100, r.DiscountPct, 1e-9)
	assert.InDelta(t, r.BaseValue*0.075, r.NotaryFees, 1e-9)
	assert.Greater(t, r.MonthlyPayment, 0.0)
	assert.Greater(t, r.TotalOutlay, 0.0)
	assert.False(t, math.IsNaN(r.AnnualizedReturnPct))
}

func TestValueSplitInvariant(t *testing.T) {
	for _, pct := range []float64{0, 10, 33.3, 50, 75, 100} {
		s := occupiedScenario()
		s.UpfrontPct = pct
		r := Value(s)

		assert.InDelta(t, pct/100*r.BaseValue, r.UpfrontAmount, 1e-9, "upfront at %v%%", pct)
		periodicCapital := r.BaseValue - r.UpfrontAmount
		assert.GreaterOrEqual(t, periodicCapital, 0.0)
		assert.InDelta(t, r.BaseValue, r.UpfrontAmount+periodicCapital, 1e-9, "split must be zero-sum at %v%%", pct)
	}
}

func TestValueFreeSale(t *testing.T) {
	s := occupiedScenario()
	s.Mode = domain.SaleFree
	r := Value(s)

	assert.Equal(t, 0.0, r.OccupancyValue)
	assert.Equal(t, 292000.0, r.BaseValue)
	assert.Equal(t, 0.0, r.DiscountPct)
	// Horizon is still life-contingent for a free viager.
	assert.Equal(t, lifetable.Lookup(71, "Femme"), r.HorizonYears)
}

func TestValueTermSale(t *testing.T) {
	s := domain.ViagerScenario{
		MarketValue: 200000,
		UpfrontPct:  20,
		Mode:        domain.SaleTerm,
		TermYears:   10,
	}
	r := Value(s)

	assert.Equal(t, 10.0, r.HorizonYears)
	assert.Equal(t, 0.0, r.OccupancyValue)
	assert.Equal(t, 200000.0, r.BaseValue)
	assert.InDelta(t, 40000, r.UpfrontAmount, 1e-9)
	assert.InDelta(t, 160000.0/120, r.MonthlyPayment, 1e-9)
}

func TestValueTermSaleZeroTerm(t *testing.T) {
	s := domain.ViagerScenario{MarketValue: 200000, Mode: domain.SaleTerm, TermYears: 0}
	r := Value(s)

	// Horizon clamps to one year but the payment division is guarded.
	assert.Equal(t, 1.0, r.HorizonYears)
	assert.Equal(t, 0.0, r.MonthlyPayment)
}

func TestValueOccupancyExceedsMarketValue(t *testing.T) {
	s := occupiedScenario()
	s.MarketValue = 50000
	s.EstimatedRent = 2000
	r := Value(s)

	require.Greater(t, r.OccupancyValue, 50000.0)
	assert.Equal(t, 0.0, r.BaseValue)
	assert.Equal(t, 0.0, r.UpfrontAmount)
	assert.Equal(t, 0.0, r.MonthlyPayment)
	assert.Equal(t, 0.0, r.NotaryFees)
}

func TestValueZeroScenario(t *testing.T) {
	r := Value(domain.ViagerScenario{})

	assert.Equal(t, 0.0, r.BaseValue)
	assert.Equal(t, 0.0, r.AnnualizedReturnPct)
	assert.Equal(t, 0.0, r.DiscountPct)
	assert.False(t, math.IsNaN(r.TotalOutlay))
}

func TestValueNormalizesNegativeInputs(t *testing.T) {
	s := occupiedScenario()
	s.MarketValue = -100
	s.EstimatedRent = -50
	s.UpfrontPct = -10
	r := Value(s)

	assert.Equal(t, 0.0, r.BaseValue)
	assert.Equal(t, 0.0, r.UpfrontAmount)
	assert.False(t, math.IsNaN(r.AnnualizedReturnPct))
}

func TestValueResaleProjection(t *testing.T) {
	s := occupiedScenario()
	r := Value(s)

	horizon := r.HorizonYears
	expected := 292000 * math.Pow(1.01, horizon)
	assert.InDelta(t, expected, r.ProjectedPrice, 1e-6)
	assert.InDelta(t, expected*0.93, r.NetProceeds, 1e-6)
}

func TestValueAnnualizedReturnDefinition(t *testing.T) {
	s := occupiedScenario()
	r := Value(s)

	require.Greater(t, r.TotalOutlay, 0.0)
	expected := (math.Pow(r.NetProceeds/r.TotalOutlay, 1/r.HorizonYears) - 1) * 100
	assert.InDelta(t, expected, r.AnnualizedReturnPct, 1e-9)
}
