package estimator

import (
	"fmt"
	"sort"
)

// Rule keys, stable across releases. Used as Recommendation.Category.
const (
	CategoryRedMeat     = "red_meat"
	CategoryVegetarian  = "vegetarian"
	CategoryWaste       = "waste"
	CategorySeasonal    = "seasonal"
	CategoryMeatFreeDay = "meat_free_day"
)

type rule func(in Input, perMealKg, annualMeals float64) (Recommendation, bool)

// rules are evaluated in this order, ties in saving keep it.
var rules = []rule{
	reduceRedMeat,
	raiseVegetarian,
	cutWaste,
	raiseSeasonal,
	meatFreeDay,
}

// GenerateRecommendations evaluates every rule against the input and the
// already computed per-meal emission, ranks the results by saving and keeps
// the top MaxRecommendations. Priority is renumbered 1..n by rank.
func GenerateRecommendations(in Input, perMealKg, annualMeals float64) []Recommendation {
	recs := make([]Recommendation, 0, len(rules))
	for _, r := range rules {
		if rec, ok := r(in, perMealKg, annualMeals); ok {
			recs = append(recs, rec)
		}
	}

	return rank(recs)
}

func rank(recs []Recommendation) []Recommendation {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].AnnualSavingTons > recs[j].AnnualSavingTons
	})

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}

	for i := range recs {
		recs[i].Priority = i + 1
	}

	return recs
}

func reduceRedMeat(in Input, _, annualMeals float64) (Recommendation, bool) {
	if in.MeatDistribution.RedMeat <= RedMeatThresholdPercent {
		return Recommendation{}, false
	}

	return Recommendation{
		Category: CategoryRedMeat,
		Title:    "Reduce red meat by 50%",
		Description: fmt.Sprintf(
			"Red meat is %.0f%% of the menu. Halving it with poultry, fish or legume dishes gives the single largest cut.",
			in.MeatDistribution.RedMeat),
		AnnualSavingTons:   redMeatHalvingSaving(in.MeatDistribution, annualMeals),
		ImplementationTime: "3-6 months",
		Difficulty:         DifficultyMedium,
	}, true
}

func raiseVegetarian(in Input, _, annualMeals float64) (Recommendation, bool) {
	dist := in.MeatDistribution
	if dist.Vegetarian >= VegetarianTargetPercent {
		return Recommendation{}, false
	}

	delta := (VegetarianTargetPercent - dist.Vegetarian) / 100

	// средний фактор мяса, взвешенный по долям красного и светлого
	weighted := BrightMeatFactor
	if meat := dist.RedMeat + dist.BrightMeat; meat > 0 {
		weighted = (dist.RedMeat*RedMeatFactor + dist.BrightMeat*BrightMeatFactor) / meat
	}

	saving := delta * (weighted - VegetarianFactor) * ProteinPortionKg * annualMeals / 1000

	return Recommendation{
		Category: CategoryVegetarian,
		Title:    fmt.Sprintf("Raise vegetarian share to %.0f%%", VegetarianTargetPercent),
		Description: fmt.Sprintf(
			"Vegetarian dishes are %.0f%% of the menu. Replacing meat dishes with legume based ones moves it to the target.",
			dist.Vegetarian),
		AnnualSavingTons:   saving,
		ImplementationTime: "1-4 months",
		Difficulty:         DifficultyEasy,
	}, true
}

func cutWaste(in Input, perMealKg, annualMeals float64) (Recommendation, bool) {
	total := in.Waste.Total()
	if total <= WasteThresholdPercent {
		return Recommendation{}, false
	}

	saving := perMealKg * ((total - WasteTargetPercent) / 100) * annualMeals / 1000

	return Recommendation{
		Category: CategoryWaste,
		Title:    fmt.Sprintf("Cut food waste below %.0f%%", WasteTargetPercent),
		Description: fmt.Sprintf(
			"Total waste is %.1f%%. Smaller buffet batches, plate waste tracking and reuse of leftovers bring it down.",
			total),
		AnnualSavingTons:   saving,
		ImplementationTime: "1-3 months",
		Difficulty:         DifficultyEasy,
	}, true
}

func raiseSeasonal(in Input, perMealKg, annualMeals float64) (Recommendation, bool) {
	s := in.SeasonalProducePercent
	if s >= SeasonalTargetPercent {
		return Recommendation{}, false
	}

	saving := perMealKg * ((SeasonalTargetPercent - s) / 100) * SeasonalBenefit * annualMeals / 1000

	return Recommendation{
		Category: CategorySeasonal,
		Title:    fmt.Sprintf("Raise seasonal sourcing to %.0f%%", SeasonalTargetPercent),
		Description: fmt.Sprintf(
			"Seasonal produce is %.0f%% of purchases. Plan menus around the Danish season calendar.",
			s),
		AnnualSavingTons:   saving,
		ImplementationTime: "1-6 months",
		Difficulty:         DifficultyMedium,
	}, true
}

func meatFreeDay(_ Input, perMealKg, annualMeals float64) (Recommendation, bool) {
	saving := perMealKg * MeatFreeDayEmissionShare * annualMeals * MeatFreeDaysPerServiceWeek / 1000

	return Recommendation{
		Category:           CategoryMeatFreeDay,
		Title:              "Introduce a meat-free Monday",
		Description:        "One fully plant based day per service week.",
		AnnualSavingTons:   saving,
		ImplementationTime: "1 month",
		Difficulty:         DifficultyEasy,
	}, true
}
