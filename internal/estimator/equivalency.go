package estimator

import "math"

// EquivalentsFor converts tons of CO2e into flights and trees, rounded to
// the nearest whole number. Negative tonnage is treated as zero.
func EquivalentsFor(tons float64) Equivalents {
	if tons <= 0 {
		return Equivalents{}
	}

	return Equivalents{
		FlightsToLondon: int64(math.Round(tons / FlightToLondonTons)),
		TreesPlanted:    int64(math.Round(tons * TreesPerTon)),
	}
}
