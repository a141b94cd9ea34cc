package storage

// Canteen is one row of the canteen portfolio. Percentages are 0..100,
// Co2PerKg is the measured kg CO2e per kg food served.
type Canteen struct {
	ID                  int64   `json:"id" yaml:"id"`
	Name                string  `json:"name" yaml:"name"`
	Location            string  `json:"location" yaml:"location"`
	Address             string  `json:"address" yaml:"address"`
	Co2PerKg            float64 `json:"co2PerKg" yaml:"co2_per_kg"`
	GreenPercent        float64 `json:"greenPercent" yaml:"green_percent"`
	MeatPercent         float64 `json:"meatPercent" yaml:"meat_percent"`
	OrganicPercent      float64 `json:"organicPercent" yaml:"organic_percent"`
	FoodWastePercent    float64 `json:"foodWastePercent" yaml:"food_waste_percent"`
	LocalSourcedPercent float64 `json:"localSourcedPercent" yaml:"local_sourced"`
	Employees           int     `json:"employees" yaml:"employees"`
	MealsPerDay         int     `json:"mealsPerDay" yaml:"meals_per_day"`
	OperatingDays       int     `json:"operatingDays" yaml:"operating_days"`
}

type CanteenSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// CanteenWaste is the slice of a canteen row the waste metrics are built from.
type CanteenWaste struct {
	CanteenID        int64   `json:"canteenId"`
	FoodWastePercent float64 `json:"foodWastePercent"`
	MealsPerDay      int     `json:"mealsPerDay"`
}

// CanteenUpdate carries the editable fields of a canteen. Nil means keep.
type CanteenUpdate struct {
	Co2PerKg            *float64 `json:"co2PerKg"`
	GreenPercent        *float64 `json:"greenPercent"`
	MeatPercent         *float64 `json:"meatPercent"`
	OrganicPercent      *float64 `json:"organicPercent"`
	FoodWastePercent    *float64 `json:"foodWastePercent"`
	LocalSourcedPercent *float64 `json:"localSourcedPercent"`
	Employees           *int     `json:"employees"`
	MealsPerDay         *int     `json:"mealsPerDay"`
	OperatingDays       *int     `json:"operatingDays"`
}

// Apply copies the set fields onto c.
func (u CanteenUpdate) Apply(c *Canteen) {
	if u.Co2PerKg != nil {
		c.Co2PerKg = *u.Co2PerKg
	}
	if u.GreenPercent != nil {
		c.GreenPercent = *u.GreenPercent
	}
	if u.MeatPercent != nil {
		c.MeatPercent = *u.MeatPercent
	}
	if u.OrganicPercent != nil {
		c.OrganicPercent = *u.OrganicPercent
	}
	if u.FoodWastePercent != nil {
		c.FoodWastePercent = *u.FoodWastePercent
	}
	if u.LocalSourcedPercent != nil {
		c.LocalSourcedPercent = *u.LocalSourcedPercent
	}
	if u.Employees != nil {
		c.Employees = *u.Employees
	}
	if u.MealsPerDay != nil {
		c.MealsPerDay = *u.MealsPerDay
	}
	if u.OperatingDays != nil {
		c.OperatingDays = *u.OperatingDays
	}
}

// Validate checks the ranges of the set fields.
func (u CanteenUpdate) Validate() error {
	percents := map[string]*float64{
		"greenPercent":        u.GreenPercent,
		"meatPercent":         u.MeatPercent,
		"organicPercent":      u.OrganicPercent,
		"foodWastePercent":    u.FoodWastePercent,
		"localSourcedPercent": u.LocalSourcedPercent,
	}
	for name, v := range percents {
		if v != nil && (*v < 0 || *v > 100) {
			return &FieldError{Field: name, Msg: "must be between 0 and 100"}
		}
	}

	if u.Co2PerKg != nil && *u.Co2PerKg < 0 {
		return &FieldError{Field: "co2PerKg", Msg: "must not be negative"}
	}

	ints := map[string]*int{
		"employees":     u.Employees,
		"mealsPerDay":   u.MealsPerDay,
		"operatingDays": u.OperatingDays,
	}
	for name, v := range ints {
		if v != nil && *v < 0 {
			return &FieldError{Field: name, Msg: "must not be negative"}
		}
	}

	if u.OperatingDays != nil && *u.OperatingDays > 366 {
		return &FieldError{Field: "operatingDays", Msg: "must not exceed 366"}
	}

	return nil
}
