package estimator

// Emission factors, kg CO2e per kg of food.
const (
	BeefFactor       = 60.0
	LambFactor       = 24.0
	PorkFactor       = 12.0
	ChickenFactor    = 6.9
	FishFactor       = 6.0
	DairyFactor      = 3.2
	LegumesFactor    = 2.0
	VegetablesFactor = 2.0
	GrainsFactor     = 1.4
)

// Факторы по категориям белка
const (
	RedMeatFactor    = (BeefFactor + LambFactor) / 2    // 42.0
	BrightMeatFactor = (PorkFactor + ChickenFactor) / 2 // 9.45
	VegetarianFactor = LegumesFactor
)

// Portion masses per meal, kg.
const (
	ProteinPortionKg    = 0.120
	VegetablesPortionKg = 0.200
	GrainsPortionKg     = 0.150
	DairyPortionKg      = 0.050
)

// Waste tiers on total waste percent: below LowWasteLimit is low,
// up to and including HighWasteLimit is medium, above is high.
const (
	LowWasteLimit  = 5.0
	HighWasteLimit = 15.0

	LowWasteMultiplier    = 1.05
	MediumWasteMultiplier = 1.15
	HighWasteMultiplier   = 1.30
)

const (
	// SeasonalBenefit is the reduction credited for a fully seasonal menu.
	SeasonalBenefit = 0.15

	// CO2CostPerTonDKK is the carbon tax estimate used for cost savings.
	CO2CostPerTonDKK = 1800.0

	// BaselineMealKg is the meal mass assumed when a baseline is derived
	// from a canteen's stored kg CO2e per kg food.
	BaselineMealKg = 0.5

	// FlightToLondonTons is CO2e of one return flight Copenhagen-London.
	FlightToLondonTons = 0.25

	// TreesPerTon is the number of tree seedlings absorbing one ton per year.
	TreesPerTon = 50.0
)

// Пороги и цели правил рекомендаций
const (
	RedMeatThresholdPercent    = 15.0
	VegetarianTargetPercent    = 30.0
	WasteThresholdPercent      = 10.0
	WasteTargetPercent         = 5.0
	SeasonalTargetPercent      = 70.0
	MeatFreeDayEmissionShare   = 0.6
	MeatFreeDaysPerServiceWeek = 1.0 / 5.0

	MaxRecommendations = 5
)
