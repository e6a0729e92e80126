package domain

// AmortizationRow is one month of a loan schedule. Interest is computed on
// the balance entering the month, before the payment is applied.
type AmortizationRow struct {
	Month        int     `json:"month"`
	Installment  float64 `json:"installment"`
	Interest     float64 `json:"interest"`
	Insurance    float64 `json:"insurance"`
	Principal    float64 `json:"principal"`
	Balance      float64 `json:"balance"` // outstanding capital after the payment
	CumInterest  float64 `json:"cum_interest"`
	CumInsurance float64 `json:"cum_insurance"`
}

// ValuationResult is the output of a viager valuation. All amounts are in
// the scenario's currency; percentages are expressed on a 0-100 scale.
type ValuationResult struct {
	HorizonYears        float64 `json:"horizon_years"`
	OccupancyValue      float64 `json:"occupancy_value"` // DUH: value of the retained occupancy right
	BaseValue           float64 `json:"base_value"`
	UpfrontAmount       float64 `json:"upfront_amount"`  // bouquet
	MonthlyPayment      float64 `json:"monthly_payment"` // rente
	NotaryFees          float64 `json:"notary_fees"`
	TotalOutlay         float64 `json:"total_outlay"`
	ProjectedPrice      float64 `json:"projected_price"`
	NetProceeds         float64 `json:"net_proceeds"`
	AnnualizedReturnPct float64 `json:"annualized_return_pct"`
	DiscountPct         float64 `json:"discount_pct"` // occupancy value as % of market value
}

// RentalResult is the output of a buy-to-let evaluation.
type RentalResult struct {
	GrossYieldPct           float64 `json:"gross_yield_pct"`
	NetYieldPct             float64 `json:"net_yield_pct"`
	AfterTaxMonthlyCashflow float64 `json:"after_tax_monthly_cashflow"`
	AnnualDebtService       float64 `json:"annual_debt_service"`
	NotaryFees              float64 `json:"notary_fees"`
}
