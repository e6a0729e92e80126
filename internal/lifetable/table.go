// Package lifetable provides an interpolated actuarial life-expectancy
// lookup by age and sex, based on INSEE-style period tables reduced to
// sparse five-year breakpoints.
package lifetable

// breakpoint pairs an exact tabulated age with the remaining life
// expectancy in years at that age.
type breakpoint struct {
	age   float64
	years float64
}

// The breakpoint ages must be strictly ascending. Lookups never
// extrapolate beyond the first and last entries.
var (
	female = []breakpoint{
		{50, 36.6}, {55, 32.0}, {60, 27.5}, {65, 23.2}, {70, 19.0},
		{75, 15.0}, {80, 11.3}, {85, 8.0}, {90, 5.4}, {95, 3.6}, {100, 2.4},
	}
	male = []breakpoint{
		{50, 31.5}, {55, 27.2}, {60, 23.1}, {65, 19.3}, {70, 15.6},
		{75, 12.2}, {80, 9.1}, {85, 6.5}, {90, 4.5}, {95, 3.1}, {100, 2.1},
	}
)

// Lookup returns the remaining life expectancy in years for the given age.
// The male curve is selected when the sex string starts with the male
// marker ("h" as in "homme", case-insensitive); anything else falls back to
// the female curve. Ages outside the tabulated range clamp to the nearest
// breakpoint; ages in between are linearly interpolated.
func Lookup(age float64, sex string) float64 {
	table := female
	if isMale(sex) {
		table = male
	}

	if age <= table[0].age {
		return table[0].years
	}
	last := table[len(table)-1]
	if age >= last.age {
		return last.years
	}

	for i := 1; i < len(table); i++ {
		if age <= table[i].age {
			lo, hi := table[i-1], table[i]
			return lo.years + (hi.years-lo.years)*(age-lo.age)/(hi.age-lo.age)
		}
	}
	return last.years
}

func isMale(sex string) bool {
	if sex == "" {
		return false
	}
	return sex[0] == 'h' || sex[0] == 'H'
}
