package estimator

import "math"

// Baseline compares a calculated scenario against a canteen's current
// footprint derived from its stored kg CO2e per kg food.
type Baseline struct {
	CurrentCo2PerKg float64     `json:"currentCo2PerKg"`
	BaselineTons    float64     `json:"baselineTons"`
	OptimizedTons   float64     `json:"optimizedTons"`
	SavingsTons     float64     `json:"savingsTons"`
	SavingsPercent  float64     `json:"savingsPercent"`
	Equivalents     Equivalents `json:"equivalents"`
}

// BaselineSavings builds the comparison. A scenario worse than the baseline
// reports zero savings, never a negative number.
func BaselineSavings(currentCo2PerKg, annualMeals, optimizedTons float64) Baseline {
	baseline := currentCo2PerKg * BaselineMealKg * annualMeals / 1000
	savings := math.Max(0, baseline-optimizedTons)

	var pct float64
	if baseline > 0 {
		pct = savings / baseline * 100
	}

	return Baseline{
		CurrentCo2PerKg: currentCo2PerKg,
		BaselineTons:    baseline,
		OptimizedTons:   optimizedTons,
		SavingsTons:     savings,
		SavingsPercent:  pct,
		Equivalents:     EquivalentsFor(savings),
	}
}
