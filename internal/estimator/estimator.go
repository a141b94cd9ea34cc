// Package estimator implements the canteen emissions model: CO2e per meal and
// per year from menu composition, waste and sourcing, plus ranked
// improvement recommendations.
//
// Estimate is a pure function. It assumes the input passed Validate; edge
// values such as an all-zero composition or zero employees produce zero
// contributions, never a panic.
package estimator

// Estimate runs the emissions model for one input.
func Estimate(in Input) Result {
	// 1. проценты в доли
	red := in.MeatDistribution.RedMeat / 100
	bright := in.MeatDistribution.BrightMeat / 100
	fish := in.MeatDistribution.Fish / 100
	veg := in.MeatDistribution.Vegetarian / 100
	seasonal := in.SeasonalProducePercent / 100

	// 2-3. белок + гарниры
	coPerProtein := red*RedMeatFactor*ProteinPortionKg +
		bright*BrightMeatFactor*ProteinPortionKg +
		fish*FishFactor*ProteinPortionKg +
		veg*VegetarianFactor*ProteinPortionKg

	sides := fixedSides()
	coPerMeal := coPerProtein + sides.Total()

	// 4-6. отходы и сезонность
	totalWaste := in.Waste.Total()
	wasteMultiplier := WasteMultiplier(totalWaste)
	seasonalReduction := 1 - seasonal*SeasonalBenefit
	finalCoPerMeal := coPerMeal * seasonalReduction * wasteMultiplier

	// 7-8.
	annualMeals := in.AnnualMeals()
	annualTons := finalCoPerMeal * annualMeals / 1000

	breakdown := Breakdown{
		RedMeat:    red * RedMeatFactor * ProteinPortionKg * wasteMultiplier,
		BrightMeat: bright * BrightMeatFactor * ProteinPortionKg * wasteMultiplier,
		Fish:       fish * FishFactor * ProteinPortionKg * wasteMultiplier,
		Vegetarian: veg * VegetarianFactor * ProteinPortionKg * wasteMultiplier,
		Waste:      coPerMeal * seasonalReduction * (wasteMultiplier - 1),
	}

	recs := GenerateRecommendations(in, finalCoPerMeal, annualMeals)

	return Result{
		PerMealKg:               finalCoPerMeal,
		AnnualTons:              annualTons,
		AnnualMeals:             annualMeals,
		TotalWastePercent:       totalWaste,
		WasteMultiplier:         wasteMultiplier,
		Breakdown:               breakdown,
		Sides:                   sides,
		SeasonalBenefitKg:       coPerMeal * seasonal * SeasonalBenefit,
		EstimatedCostSavingsDKK: CostSavingsDKK(in.MeatDistribution, annualMeals),
		Equivalents:             EquivalentsFor(annualTons),
		Recommendations:         recs,
	}
}

// WasteMultiplier maps total waste percent to its tier multiplier.
// Exactly 5 and exactly 15 both belong to the medium tier.
func WasteMultiplier(totalWastePercent float64) float64 {
	switch {
	case totalWastePercent < LowWasteLimit:
		return LowWasteMultiplier
	case totalWastePercent <= HighWasteLimit:
		return MediumWasteMultiplier
	default:
		return HighWasteMultiplier
	}
}

// CostSavingsDKK prices the saving of halving the red meat share.
func CostSavingsDKK(dist MeatDistribution, annualMeals float64) float64 {
	return redMeatHalvingSaving(dist, annualMeals) * CO2CostPerTonDKK
}

func redMeatHalvingSaving(dist MeatDistribution, annualMeals float64) float64 {
	perMeal := dist.RedMeat / 100 * 0.5 * RedMeatFactor * ProteinPortionKg
	return perMeal * annualMeals / 1000
}

func fixedSides() Sides {
	return Sides{
		Vegetables: VegetablesPortionKg * VegetablesFactor,
		Grains:     GrainsPortionKg * GrainsFactor,
		Dairy:      DairyPortionKg * DairyFactor,
	}
}
