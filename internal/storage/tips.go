package storage

// WasteTip is a food waste reduction measure.
type WasteTip struct {
	ID                        int64   `json:"id" yaml:"id"`
	Category                  string  `json:"category" yaml:"category"`
	Title                     string  `json:"title" yaml:"title"`
	Description               string  `json:"description" yaml:"description"`
	PotentialReductionPercent float64 `json:"potentialReductionPercent" yaml:"potential_reduction_percent"`
	Difficulty                string  `json:"difficulty" yaml:"difficulty"`
	ImplementationTime        string  `json:"implementationTime" yaml:"implementation_time"`
	CostImpact                string  `json:"costImpact" yaml:"cost_impact"`
}

// PlantAlternative is a plant based replacement for a meat product.
type PlantAlternative struct {
	ID               int64   `json:"id" yaml:"id"`
	MeatProduct      string  `json:"meatProduct" yaml:"meat_product"`
	Alternative      string  `json:"alternative" yaml:"alternative"`
	Category         string  `json:"category" yaml:"category"`
	Co2SavingPercent float64 `json:"co2SavingPercent" yaml:"co2_saving_percent"`
	ProteinPer100g   float64 `json:"proteinPer100g" yaml:"protein_per_100g"`
	TasteSimilarity  string  `json:"tasteSimilarity" yaml:"taste_similarity"`
	CookingMethod    string  `json:"cookingMethod" yaml:"cooking_method"`
	CostComparison   string  `json:"costComparison" yaml:"cost_comparison"`
}
