package output

import (
	"github.com/shopspring/decimal"

	"github.com/ogerard/immoval/internal/domain"
	"github.com/ogerard/immoval/internal/parse"
)

// Share-link keys: one key per scalar scenario field, decimal-string
// values. The transport (URL query, fragment, ...) is up to the caller;
// the calculator only fixes the key set.
const (
	keyMarketValue   = "mv"
	keyOccupantAge   = "age"
	keyOccupantSex   = "sexe"
	keyEstimatedRent = "loyer"
	keyDiscountRate  = "taux"
	keyUpfrontPct    = "bouquet"
	keyIndexation    = "idx"
	keyCharges       = "charges"
	keyPropertyTax   = "tf"
	keyAppreciation  = "revalo"
	keySaleCosts     = "frais"
	keyMode          = "mode"
	keyTermYears     = "duree"
)

// EncodeScenario flattens a scenario to key/value pairs suitable for
// embedding in a shareable link.
func EncodeScenario(s domain.ViagerScenario) map[string]string {
	return map[string]string{
		keyMarketValue:   decString(s.MarketValue),
		keyOccupantAge:   decString(s.OccupantAge),
		keyOccupantSex:   s.OccupantSex,
		keyEstimatedRent: decString(s.EstimatedRent),
		keyDiscountRate:  decString(s.DiscountRatePct),
		keyUpfrontPct:    decString(s.UpfrontPct),
		keyIndexation:    decString(s.IndexationRatePct),
		keyCharges:       decString(s.AnnualCharges),
		keyPropertyTax:   decString(s.AnnualPropertyTax),
		keyAppreciation:  decString(s.AppreciationPct),
		keySaleCosts:     decString(s.SaleCostsPct),
		keyMode:          string(s.Mode),
		keyTermYears:     decString(s.TermYears),
	}
}

// DecodeScenario rebuilds a scenario from flattened pairs. Missing or
// malformed values decode to 0 (or the default sale mode), consistent with
// the parser's no-error contract.
func DecodeScenario(values map[string]string) domain.ViagerScenario {
	return domain.ViagerScenario{
		MarketValue:       parse.Amount(values[keyMarketValue]),
		OccupantAge:       parse.Amount(values[keyOccupantAge]),
		OccupantSex:       values[keyOccupantSex],
		EstimatedRent:     parse.Amount(values[keyEstimatedRent]),
		DiscountRatePct:   parse.Amount(values[keyDiscountRate]),
		UpfrontPct:        parse.Amount(values[keyUpfrontPct]),
		IndexationRatePct: parse.Amount(values[keyIndexation]),
		AnnualCharges:     parse.Amount(values[keyCharges]),
		AnnualPropertyTax: parse.Amount(values[keyPropertyTax]),
		AppreciationPct:   parse.Amount(values[keyAppreciation]),
		SaleCostsPct:      parse.Amount(values[keySaleCosts]),
		Mode:              domain.ParseSaleMode(values[keyMode]),
		TermYears:         parse.Amount(values[keyTermYears]),
	}
}

func decString(v float64) string {
	return decimal.NewFromFloat(v).String()
}
