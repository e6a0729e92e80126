package domain

import "math"

// SaleMode selects how a property sale is structured.
type SaleMode string

const (
	// SaleOccupied is a life-annuity sale where the seller keeps the right
	// to live in (or rent out) the property until death.
	SaleOccupied SaleMode = "occupied"
	// SaleFree is a life-annuity sale with the property handed over vacant.
	SaleFree SaleMode = "free"
	// SaleTerm is a fixed-duration installment sale with no life-contingent
	// horizon.
	SaleTerm SaleMode = "term"
)

// ParseSaleMode maps a config/user string to a SaleMode, defaulting to
// SaleOccupied for anything unrecognized.
func ParseSaleMode(s string) SaleMode {
	switch SaleMode(s) {
	case SaleFree:
		return SaleFree
	case SaleTerm:
		return SaleTerm
	default:
		return SaleOccupied
	}
}

// LoanParameters describe a constant-payment loan with optional borrower
// insurance.
type LoanParameters struct {
	Principal        float64 `yaml:"principal" json:"principal"`
	AnnualRatePct    float64 `yaml:"annual_rate_pct" json:"annual_rate_pct"`
	InsuranceRatePct float64 `yaml:"insurance_rate_pct" json:"insurance_rate_pct"`
	TermYears        float64 `yaml:"term_years" json:"term_years"`
}

// TermMonths returns the loan duration in whole months.
func (lp LoanParameters) TermMonths() int {
	return int(math.Round(lp.TermYears * 12))
}

// MonthlyRate returns the nominal monthly interest rate as a fraction.
func (lp LoanParameters) MonthlyRate() float64 {
	return lp.AnnualRatePct / 100 / 12
}

// ViagerScenario carries every input of a life-annuity (or term) sale
// valuation. It is a plain value struct built fresh from the caller's
// current inputs on each recompute; the engine never mutates it.
type ViagerScenario struct {
	MarketValue       float64  `yaml:"market_value" json:"market_value"`
	OccupantAge       float64  `yaml:"occupant_age" json:"occupant_age"`
	OccupantSex       string   `yaml:"occupant_sex" json:"occupant_sex"`
	EstimatedRent     float64  `yaml:"estimated_rent" json:"estimated_rent"` // monthly market rent
	DiscountRatePct   float64  `yaml:"discount_rate_pct" json:"discount_rate_pct"`
	UpfrontPct        float64  `yaml:"upfront_pct" json:"upfront_pct"` // bouquet, % of base value
	IndexationRatePct float64  `yaml:"indexation_rate_pct" json:"indexation_rate_pct"`
	AnnualCharges     float64  `yaml:"annual_charges" json:"annual_charges"`
	AnnualPropertyTax float64  `yaml:"annual_property_tax" json:"annual_property_tax"`
	AppreciationPct   float64  `yaml:"appreciation_pct" json:"appreciation_pct"` // annual property appreciation
	SaleCostsPct      float64  `yaml:"sale_costs_pct" json:"sale_costs_pct"`     // resale transaction costs
	Mode              SaleMode `yaml:"mode" json:"mode"`
	TermYears         float64  `yaml:"term_years" json:"term_years"` // only used when Mode is SaleTerm
}

// RentalInput carries the inputs of a classic buy-to-let evaluation.
type RentalInput struct {
	Price                float64        `yaml:"price" json:"price"`
	MonthlyRent          float64        `yaml:"monthly_rent" json:"monthly_rent"`
	AnnualCharges        float64        `yaml:"annual_charges" json:"annual_charges"`
	AnnualPropertyTax    float64        `yaml:"annual_property_tax" json:"annual_property_tax"`
	IncomeTaxRatePct     float64        `yaml:"income_tax_rate_pct" json:"income_tax_rate_pct"`
	SocialChargesRatePct float64        `yaml:"social_charges_rate_pct" json:"social_charges_rate_pct"`
	Loan                 LoanParameters `yaml:"loan" json:"loan"`
}
