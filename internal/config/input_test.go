package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogerard/immoval/internal/amortization"
	"github.com/ogerard/immoval/internal/domain"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFileViager(t *testing.T) {
	path := writeScenario(t, `
viager:
  market_value: "292 000"
  occupant_age: 71
  occupant_sex: Femme
  estimated_rent: 740
  discount_rate_pct: 2
  upfront_pct: 30
  indexation_rate_pct: "1,5"
  annual_charges: "1 800"
  annual_property_tax: "1 200"
  appreciation_pct: 1
  sale_costs_pct: 7
  mode: occupied
`)

	parser := NewInputParser()
	f, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, f.Viager)

	s := f.Viager.ToDomain()
	assert.Equal(t, 292000.0, s.MarketValue)
	assert.Equal(t, 71.0, s.OccupantAge)
	assert.Equal(t, "Femme", s.OccupantSex)
	assert.Equal(t, 1.5, s.IndexationRatePct)
	assert.Equal(t, 1800.0, s.AnnualCharges)
	assert.Equal(t, domain.SaleOccupied, s.Mode)
}

func TestLoadFromFileLoan(t *testing.T) {
	path := writeScenario(t, `
loan:
  principal: "200 000"
  annual_rate_pct: "3,5"
  insurance_rate_pct: "0,36"
  term_years: 25
  insurance_basis: declining
`)

	f, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, f.Loan)

	lp := f.Loan.ToDomain()
	assert.Equal(t, 200000.0, lp.Principal)
	assert.Equal(t, 3.5, lp.AnnualRatePct)
	assert.Equal(t, 300, lp.TermMonths())
	assert.Equal(t, amortization.BasisDeclining, f.Loan.Basis())
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile("/nonexistent/scenario.yaml")
	assert.Error(t, err)
}

func TestLoadFromFileBadYAML(t *testing.T) {
	path := writeScenario(t, "viager: [not a mapping")
	_, err := NewInputParser().LoadFromFile(path)
	assert.ErrorContains(t, err, "failed to parse YAML")
}

func TestValidate(t *testing.T) {
	parser := NewInputParser()

	t.Run("empty file", func(t *testing.T) {
		err := parser.Validate(&File{})
		assert.ErrorContains(t, err, "no viager, rental or loan section")
	})

	t.Run("implausible age", func(t *testing.T) {
		err := parser.Validate(&File{Viager: &ViagerInput{OccupantAge: 130}})
		assert.ErrorContains(t, err, "not plausible")
	})

	t.Run("term sale without term", func(t *testing.T) {
		err := parser.Validate(&File{Viager: &ViagerInput{Mode: "term"}})
		assert.ErrorContains(t, err, "positive term_years")
	})

	t.Run("loan term too long", func(t *testing.T) {
		err := parser.Validate(&File{Loan: &LoanInput{TermYears: 70}})
		assert.ErrorContains(t, err, "exceeds the supported range")
	})

	t.Run("unknown insurance basis", func(t *testing.T) {
		err := parser.Validate(&File{Loan: &LoanInput{TermYears: 20, InsuranceBasis: "linear"}})
		assert.ErrorContains(t, err, "insurance_basis")
	})

	t.Run("rental loan is checked too", func(t *testing.T) {
		err := parser.Validate(&File{Rental: &RentalInput{Loan: LoanInput{TermYears: 70}}})
		assert.ErrorContains(t, err, "rental loan")
	})

	t.Run("valid viager", func(t *testing.T) {
		err := parser.Validate(&File{Viager: &ViagerInput{OccupantAge: 71}})
		assert.NoError(t, err)
	})
}

func TestLoanInputBasisDefault(t *testing.T) {
	l := &LoanInput{}
	assert.Equal(t, amortization.BasisInitial, l.Basis())

	l.InsuranceBasis = "initial"
	assert.Equal(t, amortization.BasisInitial, l.Basis())
}
