package estimator

import (
	"fmt"
	"math"
)

// Slider names one of the three meat sliders. The vegetarian share has no
// slider of its own, it is implied by the other three.
type Slider string

const (
	SliderNone       Slider = ""
	SliderRedMeat    Slider = "redMeat"
	SliderBrightMeat Slider = "brightMeat"
	SliderFish       Slider = "fish"
)

// ParseSlider accepts the JSON names of the sliders and the empty string.
func ParseSlider(s string) (Slider, error) {
	switch v := Slider(s); v {
	case SliderNone, SliderRedMeat, SliderBrightMeat, SliderFish:
		return v, nil
	default:
		return SliderNone, fmt.Errorf("%w: unknown slider %q", ErrInvalidInput, s)
	}
}

// ClampComposition normalizes the three slider values. Each value is first
// limited to [0,100]. When the sum exceeds 100 the changed slider is
// recomputed as 100 minus the other two, floored at 0. Vegetarian is the
// remainder, never negative.
func ClampComposition(red, bright, fish float64, changed Slider) MeatDistribution {
	red = clampPercent(red)
	bright = clampPercent(bright)
	fish = clampPercent(fish)

	if red+bright+fish > 100 {
		switch changed {
		case SliderRedMeat:
			red = math.Max(0, 100-bright-fish)
		case SliderBrightMeat:
			bright = math.Max(0, 100-red-fish)
		case SliderFish:
			fish = math.Max(0, 100-red-bright)
		}
	}

	return MeatDistribution{
		RedMeat:    red,
		BrightMeat: bright,
		Fish:       fish,
		Vegetarian: math.Max(0, 100-red-bright-fish),
	}
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(100, math.Max(0, v))
}
