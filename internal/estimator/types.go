package estimator

// MeatDistribution is the protein composition of the menu in percent.
// The four shares should add up to 100 but drift is tolerated.
type MeatDistribution struct {
	RedMeat    float64 `json:"redMeat" yaml:"redMeat"`
	BrightMeat float64 `json:"brightMeat" yaml:"brightMeat"`
	Fish       float64 `json:"fish" yaml:"fish"`
	Vegetarian float64 `json:"vegetarian" yaml:"vegetarian"`
}

// Waste holds food waste percentages by stage.
type Waste struct {
	Preparation float64 `json:"preparation" yaml:"preparation"`
	Buffet      float64 `json:"buffet" yaml:"buffet"`
	Plate       float64 `json:"plate" yaml:"plate"`
}

// Total returns the summed waste percent.
func (w Waste) Total() float64 {
	return w.Preparation + w.Buffet + w.Plate
}

// Input is the set of operational parameters of one canteen.
type Input struct {
	Employees              int              `json:"employees" yaml:"employees"`
	AttendanceRate         float64          `json:"attendanceRate" yaml:"attendanceRate"`
	OperatingDays          int              `json:"operatingDays" yaml:"operatingDays"`
	MeatDistribution       MeatDistribution `json:"meatDistribution" yaml:"meatDistribution"`
	Waste                  Waste            `json:"waste" yaml:"waste"`
	SeasonalProducePercent float64          `json:"seasonalProducePercent" yaml:"seasonalProducePercent"`
	// OrganicPercent is informational, the formula does not use it.
	OrganicPercent float64 `json:"organicPercent" yaml:"organicPercent"`
}

// DefaultInput returns the reference canteen. Requests are decoded on top of
// it so that absent fields keep these values.
func DefaultInput() Input {
	return Input{
		Employees:      150,
		AttendanceRate: 0.85,
		OperatingDays:  240,
		MeatDistribution: MeatDistribution{
			RedMeat:    30,
			BrightMeat: 40,
			Fish:       15,
			Vegetarian: 15,
		},
		Waste: Waste{
			Preparation: 8,
			Buffet:      5,
			Plate:       12,
		},
		SeasonalProducePercent: 50,
		OrganicPercent:         40,
	}
}

// AnnualMeals is employees * operating days * attendance rate.
func (in Input) AnnualMeals() float64 {
	return float64(in.Employees) * float64(in.OperatingDays) * in.AttendanceRate
}

// Breakdown is the kg CO2e contribution per meal of each category lever.
type Breakdown struct {
	RedMeat    float64 `json:"redMeat"`
	BrightMeat float64 `json:"brightMeat"`
	Fish       float64 `json:"fish"`
	Vegetarian float64 `json:"vegetarian"`
	Waste      float64 `json:"waste"`
}

// Total sums all categories.
func (b Breakdown) Total() float64 {
	return b.RedMeat + b.BrightMeat + b.Fish + b.Vegetarian + b.Waste
}

// Sides is the fixed side-dish contribution per meal, independent of input.
type Sides struct {
	Vegetables float64 `json:"vegetables"`
	Grains     float64 `json:"grains"`
	Dairy      float64 `json:"dairy"`
}

func (s Sides) Total() float64 {
	return s.Vegetables + s.Grains + s.Dairy
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type Recommendation struct {
	Priority           int        `json:"priority"`
	Category           string     `json:"category"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	AnnualSavingTons   float64    `json:"annualSavingTons"`
	ImplementationTime string     `json:"implementationTime"`
	Difficulty         Difficulty `json:"difficulty"`
}

// Equivalents expresses a tonnage in everyday terms.
type Equivalents struct {
	FlightsToLondon int64 `json:"flightsToLondon"`
	TreesPlanted    int64 `json:"treesPlanted"`
}

// Result is the outcome of one estimation.
type Result struct {
	PerMealKg               float64          `json:"perMealKg"`
	AnnualTons              float64          `json:"annualTons"`
	AnnualMeals             float64          `json:"annualMeals"`
	TotalWastePercent       float64          `json:"totalWastePercent"`
	WasteMultiplier         float64          `json:"wasteMultiplier"`
	Breakdown               Breakdown        `json:"breakdown"`
	Sides                   Sides            `json:"sides"`
	SeasonalBenefitKg       float64          `json:"seasonalBenefitKg"`
	EstimatedCostSavingsDKK float64          `json:"estimatedCostSavingsDkk"`
	Equivalents             Equivalents      `json:"equivalents"`
	Recommendations         []Recommendation `json:"recommendations"`
}
