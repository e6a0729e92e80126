// Package annuity implements present-value formulas for level and
// growth-indexed monthly annuities, plus the inverse solver used to derive
// a periodic payment from a target capital.
package annuity

import "math"

// PresentValueLevel returns the present value of a level monthly annuity
// paid at the start of each period (annuity-due convention).
func PresentValueLevel(monthly, years, discountRatePct float64) float64 {
	months := int(math.Round(years * 12))
	if months == 0 || monthly == 0 {
		return 0
	}
	r := discountRatePct / 100 / 12
	if r == 0 {
		return monthly * float64(months)
	}
	return monthly * ((1 - math.Pow(1+r, -float64(months))) / r) * (1 + r)
}

// PresentValueIndexed returns the present value of a monthly annuity whose
// payment grows at growthRatePct per year while being discounted at
// discountRatePct. When the two monthly rates coincide the geometric series
// degenerates to monthly*months; that removable singularity is guarded
// explicitly.
func PresentValueIndexed(monthly, years, discountRatePct, growthRatePct float64) float64 {
	months := int(math.Round(years * 12))
	if months == 0 || monthly == 0 {
		return 0
	}
	g := growthRatePct / 100 / 12
	r := discountRatePct / 100 / 12
	if 1+r == 0 {
		return monthly * float64(months)
	}
	q := (1 + g) / (1 + r)
	if q == 1 {
		return monthly * float64(months)
	}
	return monthly * (1 - math.Pow(q, float64(months))) / (1 - q)
}

// SolveMonthly inverts PresentValueIndexed: it returns the monthly payment
// whose indexed present value equals targetPV. Present value is linear in
// the payment amount, so a reference payment of 100 is priced and scaled.
func SolveMonthly(targetPV, years, discountRatePct, growthRatePct float64) float64 {
	ref := PresentValueIndexed(100, years, discountRatePct, growthRatePct)
	if ref == 0 {
		return 0
	}
	return targetPV / ref * 100
}
