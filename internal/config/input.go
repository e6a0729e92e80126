// Package config loads and validates calculator scenario files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ogerard/immoval/internal/amortization"
	"github.com/ogerard/immoval/internal/domain"
)

// File is the top-level structure of a scenario YAML file. Each section is
// optional; a file usually describes a single calculation.
type File struct {
	Viager *ViagerInput `yaml:"viager,omitempty" json:"viager,omitempty"`
	Rental *RentalInput `yaml:"rental,omitempty" json:"rental,omitempty"`
	Loan   *LoanInput   `yaml:"loan,omitempty" json:"loan,omitempty"`
}

// ViagerInput mirrors domain.ViagerScenario with locale-tolerant fields.
type ViagerInput struct {
	MarketValue       Amount `yaml:"market_value" json:"market_value"`
	OccupantAge       Amount `yaml:"occupant_age" json:"occupant_age"`
	OccupantSex       string `yaml:"occupant_sex" json:"occupant_sex"`
	EstimatedRent     Amount `yaml:"estimated_rent" json:"estimated_rent"`
	DiscountRatePct   Amount `yaml:"discount_rate_pct" json:"discount_rate_pct"`
	UpfrontPct        Amount `yaml:"upfront_pct" json:"upfront_pct"`
	IndexationRatePct Amount `yaml:"indexation_rate_pct" json:"indexation_rate_pct"`
	AnnualCharges     Amount `yaml:"annual_charges" json:"annual_charges"`
	AnnualPropertyTax Amount `yaml:"annual_property_tax" json:"annual_property_tax"`
	AppreciationPct   Amount `yaml:"appreciation_pct" json:"appreciation_pct"`
	SaleCostsPct      Amount `yaml:"sale_costs_pct" json:"sale_costs_pct"`
	Mode              string `yaml:"mode" json:"mode"`
	TermYears         Amount `yaml:"term_years" json:"term_years"`
}

// ToDomain converts the parsed input to the engine's scenario struct.
func (v *ViagerInput) ToDomain() domain.ViagerScenario {
	return domain.ViagerScenario{
		MarketValue:       float64(v.MarketValue),
		OccupantAge:       float64(v.OccupantAge),
		OccupantSex:       v.OccupantSex,
		EstimatedRent:     float64(v.EstimatedRent),
		DiscountRatePct:   float64(v.DiscountRatePct),
		UpfrontPct:        float64(v.UpfrontPct),
		IndexationRatePct: float64(v.IndexationRatePct),
		AnnualCharges:     float64(v.AnnualCharges),
		AnnualPropertyTax: float64(v.AnnualPropertyTax),
		AppreciationPct:   float64(v.AppreciationPct),
		SaleCostsPct:      float64(v.SaleCostsPct),
		Mode:              domain.ParseSaleMode(v.Mode),
		TermYears:         float64(v.TermYears),
	}
}

// LoanInput mirrors domain.LoanParameters with locale-tolerant fields.
type LoanInput struct {
	Principal        Amount `yaml:"principal" json:"principal"`
	AnnualRatePct    Amount `yaml:"annual_rate_pct" json:"annual_rate_pct"`
	InsuranceRatePct Amount `yaml:"insurance_rate_pct" json:"insurance_rate_pct"`
	TermYears        Amount `yaml:"term_years" json:"term_years"`
	InsuranceBasis   string `yaml:"insurance_basis" json:"insurance_basis"` // "initial" or "declining"
}

// ToDomain converts the parsed input to the engine's loan struct.
func (l *LoanInput) ToDomain() domain.LoanParameters {
	return domain.LoanParameters{
		Principal:        float64(l.Principal),
		AnnualRatePct:    float64(l.AnnualRatePct),
		InsuranceRatePct: float64(l.InsuranceRatePct),
		TermYears:        float64(l.TermYears),
	}
}

// Basis returns the insurance basis selected by the input, defaulting to
// the flat initial-capital premium.
func (l *LoanInput) Basis() amortization.InsuranceBasis {
	if l.InsuranceBasis == "declining" {
		return amortization.BasisDeclining
	}
	return amortization.BasisInitial
}

// RentalInput mirrors domain.RentalInput with locale-tolerant fields.
type RentalInput struct {
	Price                Amount    `yaml:"price" json:"price"`
	MonthlyRent          Amount    `yaml:"monthly_rent" json:"monthly_rent"`
	AnnualCharges        Amount    `yaml:"annual_charges" json:"annual_charges"`
	AnnualPropertyTax    Amount    `yaml:"annual_property_tax" json:"annual_property_tax"`
	IncomeTaxRatePct     Amount    `yaml:"income_tax_rate_pct" json:"income_tax_rate_pct"`
	SocialChargesRatePct Amount    `yaml:"social_charges_rate_pct" json:"social_charges_rate_pct"`
	Loan                 LoanInput `yaml:"loan" json:"loan"`
}

// ToDomain converts the parsed input to the engine's rental struct.
func (r *RentalInput) ToDomain() domain.RentalInput {
	return domain.RentalInput{
		Price:                float64(r.Price),
		MonthlyRent:          float64(r.MonthlyRent),
		AnnualCharges:        float64(r.AnnualCharges),
		AnnualPropertyTax:    float64(r.AnnualPropertyTax),
		IncomeTaxRatePct:     float64(r.IncomeTaxRatePct),
		SocialChargesRatePct: float64(r.SocialChargesRatePct),
		Loan:                 r.Loan.ToDomain(),
	}
}

// InputParser handles loading of scenario files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario file from disk and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(&f); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &f, nil
}

// Validate checks that the file describes at least one calculation and that
// the fields the engine cannot normalize away are plausible. The engine
// itself clamps negatives and guards divisions, so validation only rejects
// inputs that would make the result meaningless rather than merely zero.
func (ip *InputParser) Validate(f *File) error {
	if f.Viager == nil && f.Rental == nil && f.Loan == nil {
		return fmt.Errorf("no viager, rental or loan section found")
	}
	if f.Viager != nil {
		if err := ip.validateViager(f.Viager); err != nil {
			return fmt.Errorf("viager: %w", err)
		}
	}
	if f.Loan != nil {
		if err := ip.validateLoan(f.Loan); err != nil {
			return fmt.Errorf("loan: %w", err)
		}
	}
	if f.Rental != nil {
		if err := ip.validateLoan(&f.Rental.Loan); err != nil {
			return fmt.Errorf("rental loan: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateViager(v *ViagerInput) error {
	if v.OccupantAge > 120 {
		return fmt.Errorf("occupant age %v is not plausible", float64(v.OccupantAge))
	}
	if domain.ParseSaleMode(v.Mode) == domain.SaleTerm && v.TermYears <= 0 {
		return fmt.Errorf("term sale requires a positive term_years")
	}
	return nil
}

func (ip *InputParser) validateLoan(l *LoanInput) error {
	if l.TermYears > 60 {
		return fmt.Errorf("loan term %v years exceeds the supported range", float64(l.TermYears))
	}
	switch l.InsuranceBasis {
	case "", "initial", "declining":
	default:
		return fmt.Errorf("insurance_basis must be 'initial' or 'declining', got %q", l.InsuranceBasis)
	}
	return nil
}
