package canteen

import (
	"math"
	"math/rand/v2"

	"kantine-klima/internal/estimator"
	"kantine-klima/internal/storage"
)

const (
	defaultAttendanceRate = 0.85
	mealMassKg            = 0.5
)

type OrganicProfile struct {
	TotalPercent      float64 `json:"totalPercent"`
	MeatPercent       float64 `json:"meatPercent"`
	VegetablesPercent float64 `json:"vegetablesPercent"`
	DairyPercent      float64 `json:"dairyPercent"`
}

type Sourcing struct {
	LocalPercent    float64 `json:"localPercent"`
	SeasonalPercent float64 `json:"seasonalPercent"`
}

type Details struct {
	ID              int64                      `json:"id"`
	Name            string                     `json:"name"`
	Location        string                     `json:"location"`
	Employees       int                        `json:"employees"`
	MealsPerDay     int                        `json:"mealsPerDay"`
	OperatingDays   int                        `json:"operatingDays"`
	MenuComposition estimator.MeatDistribution `json:"menuComposition"`
	OrganicProfile  OrganicProfile             `json:"organicProfile"`
	Sourcing        Sourcing                   `json:"sourcing"`
	CurrentCo2PerKg float64                    `json:"currentCo2PerKg"`
}

type WasteMetrics struct {
	TotalWastePercent float64         `json:"totalWastePercent"`
	Breakdown         estimator.Waste `json:"breakdown"`
	DailyKgEstimate   float64         `json:"dailyKgEstimate"`
}

// Profile is a canteen as the calculator sees it: the stored record with
// derived composition and waste, plus the scenario it seeds.
type Profile struct {
	Details Details         `json:"details"`
	Waste   WasteMetrics    `json:"waste"`
	Input   estimator.Input `json:"input"`
}

// BuildProfile derives the calculator view of a stored canteen.
func BuildProfile(c *storage.Canteen, w *storage.CanteenWaste) *Profile {
	details := Details{
		ID:              c.ID,
		Name:            c.Name,
		Location:        c.Location,
		Employees:       c.Employees,
		MealsPerDay:     c.MealsPerDay,
		OperatingDays:   c.OperatingDays,
		MenuComposition: splitMeat(c.ID, c.MeatPercent, c.GreenPercent),
		OrganicProfile: OrganicProfile{
			TotalPercent:      c.OrganicPercent,
			MeatPercent:       math.Min(c.OrganicPercent*0.5, 100),
			VegetablesPercent: math.Min(c.OrganicPercent*1.2, 100),
			DairyPercent:      math.Min(c.OrganicPercent*1.1, 100),
		},
		Sourcing: Sourcing{
			LocalPercent: c.LocalSourcedPercent,
			// сезонность коррелирует с локальными закупками
			SeasonalPercent: c.LocalSourcedPercent * 0.9,
		},
		CurrentCo2PerKg: c.Co2PerKg,
	}

	waste := wasteMetrics(w)

	return &Profile{
		Details: details,
		Waste:   waste,
		Input:   inputFromDetails(details, waste),
	}
}

// splitMeat spreads the stored meat share over red, bright and fish with
// ratios drawn from a generator seeded by the canteen id, so one canteen
// always gets the same split. A stored green share overrides the implied
// vegetarian rest.
func splitMeat(id int64, meatPercent, greenPercent float64) estimator.MeatDistribution {
	r := rand.New(rand.NewPCG(uint64(id), 0))
	redRatio := 0.3 + r.Float64()*0.2
	brightRatio := 0.3 + r.Float64()*0.2

	if total := redRatio + brightRatio; total > 0.9 {
		redRatio *= 0.9 / total
		brightRatio *= 0.9 / total
	}

	red := meatPercent * redRatio
	bright := meatPercent * brightRatio
	fish := meatPercent * (1 - redRatio - brightRatio)

	veg := 100 - red - bright - fish
	if greenPercent > 0 {
		veg = greenPercent
	}

	return estimator.MeatDistribution{
		RedMeat:    round1(red),
		BrightMeat: round1(bright),
		Fish:       round1(fish),
		Vegetarian: round1(veg),
	}
}

// wasteMetrics splits the total 40% preparation, 40% buffet, 20% plate.
func wasteMetrics(w *storage.CanteenWaste) WasteMetrics {
	total := w.FoodWastePercent

	return WasteMetrics{
		TotalWastePercent: total,
		Breakdown: estimator.Waste{
			Preparation: round1(total * 0.4),
			Buffet:      round1(total * 0.4),
			Plate:       round1(total * 0.2),
		},
		DailyKgEstimate: float64(w.MealsPerDay) * mealMassKg * total / 100,
	}
}

// inputFromDetails builds the scenario a canteen starts from. Vegetarian is
// the remainder of the three meat shares, as the sliders would show it.
func inputFromDetails(d Details, w WasteMetrics) estimator.Input {
	menu := d.MenuComposition
	dist := estimator.ClampComposition(menu.RedMeat, menu.BrightMeat, menu.Fish, estimator.SliderNone)

	operatingDays := d.OperatingDays
	if operatingDays == 0 {
		operatingDays = estimator.DefaultInput().OperatingDays
	}

	return estimator.Input{
		Employees:              d.Employees,
		AttendanceRate:         defaultAttendanceRate,
		OperatingDays:          operatingDays,
		MeatDistribution:       dist,
		Waste:                  w.Breakdown,
		SeasonalProducePercent: math.Round(d.Sourcing.SeasonalPercent),
		OrganicPercent:         math.Round(d.OrganicProfile.TotalPercent),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
